package fundraiser

import (
	categoryDatamodel "github.com/frahmantamala/crowdfunding-admin/internal/core/datamodel/category"
)

// Fundraiser maps the fundraiser table. Active has no column default so an
// explicit false from the caller is persisted as-is.
type Fundraiser struct {
	ID             int64                       `gorm:"column:fundraiser_id;primaryKey"`
	Organizer      string                      `gorm:"column:organizer;not null"`
	Caption        string                      `gorm:"column:caption;not null"`
	TargetFunding  float64                     `gorm:"column:target_funding;type:decimal(12,2);not null"`
	CurrentFunding float64                     `gorm:"column:current_funding;type:decimal(12,2);not null"`
	City           string                      `gorm:"column:city;not null;index"`
	Active         bool                        `gorm:"column:active;not null"`
	CategoryID     int64                       `gorm:"column:category_id;not null;index"`
	Category       *categoryDatamodel.Category `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Fundraiser) TableName() string {
	return "fundraiser"
}
