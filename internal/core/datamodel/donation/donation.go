package donation

import (
	"time"

	fundraiserDatamodel "github.com/frahmantamala/crowdfunding-admin/internal/core/datamodel/fundraiser"
)

type Donation struct {
	ID           int64                           `gorm:"column:donation_id;primaryKey"`
	Date         time.Time                       `gorm:"column:date;not null"`
	Amount       float64                         `gorm:"column:amount;type:decimal(12,2);not null"`
	Giver        string                          `gorm:"column:giver;not null"`
	FundraiserID int64                           `gorm:"column:fundraiser_id;not null;index"`
	Fundraiser   *fundraiserDatamodel.Fundraiser `gorm:"foreignKey:FundraiserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Donation) TableName() string {
	return "donation"
}
