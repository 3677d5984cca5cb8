package category

import (
	categoryDatamodel "github.com/frahmantamala/crowdfunding-admin/internal/core/datamodel/category"
)

// Category is reference data: fundraisers point at it, the API never edits it.
type Category struct {
	ID   int64  `json:"category_id"`
	Name string `json:"name"`
}

func (c *Category) ToResponse() CategoryResponse {
	return CategoryResponse{
		ID:   c.ID,
		Name: c.Name,
	}
}

func NewCategory(name string) *Category {
	return &Category{Name: name}
}

func ToDataModel(c *Category) *categoryDatamodel.Category {
	return &categoryDatamodel.Category{
		ID:   c.ID,
		Name: c.Name,
	}
}

func FromDataModel(c *categoryDatamodel.Category) *Category {
	return &Category{
		ID:   c.ID,
		Name: c.Name,
	}
}
