package main

import "github.com/frahmantamala/crowdfunding-admin/cmd"

func main() {
	cmd.Execute()
}
