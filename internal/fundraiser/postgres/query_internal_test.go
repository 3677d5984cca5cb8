package postgres

import (
	"github.com/frahmantamala/crowdfunding-admin/internal/fundraiser"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("searchQuery", func() {
	It("should always restrict to active fundraisers", func() {
		query, args, err := searchQuery(fundraiser.SearchFilter{}).ToSql()
		Expect(err).NotTo(HaveOccurred())
		Expect(query).To(ContainSubstring("WHERE (f.active = ?)"))
		Expect(args).To(Equal([]interface{}{true}))
	})

	It("should use a case-sensitive LIKE for the organizer", func() {
		query, args, err := searchQuery(fundraiser.SearchFilter{Organizer: "Ali"}).ToSql()
		Expect(err).NotTo(HaveOccurred())
		Expect(query).To(ContainSubstring("f.organizer LIKE ?"))
		Expect(query).NotTo(ContainSubstring("ILIKE"))
		Expect(args).To(Equal([]interface{}{true, "%Ali%"}))
	})

	It("should add city and category as equality predicates", func() {
		category := int64(2)
		query, args, err := searchQuery(fundraiser.SearchFilter{City: "Sydney", CategoryID: &category}).ToSql()
		Expect(err).NotTo(HaveOccurred())
		Expect(query).To(ContainSubstring("f.city = ?"))
		Expect(query).To(ContainSubstring("f.category_id = ?"))
		Expect(args).To(Equal([]interface{}{true, "Sydney", int64(2)}))
	})
})
