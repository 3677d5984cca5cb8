package category

type CategoryResponse struct {
	ID   int64  `json:"category_id"`
	Name string `json:"name"`
}
