package donation

import (
	"time"

	donationDatamodel "github.com/frahmantamala/crowdfunding-admin/internal/core/datamodel/donation"
)

// Donation is a contribution made to one fundraiser. Donations are only ever
// created.
type Donation struct {
	ID           int64     `json:"donation_id"`
	Date         time.Time `json:"date"`
	Amount       float64   `json:"amount"`
	Giver        string    `json:"giver"`
	FundraiserID int64     `json:"fundraiser_id"`
}

func ToDataModel(d *Donation) *donationDatamodel.Donation {
	return &donationDatamodel.Donation{
		ID:           d.ID,
		Date:         d.Date,
		Amount:       d.Amount,
		Giver:        d.Giver,
		FundraiserID: d.FundraiserID,
	}
}

func FromDataModel(d *donationDatamodel.Donation) *Donation {
	return &Donation{
		ID:           d.ID,
		Date:         d.Date,
		Amount:       d.Amount,
		Giver:        d.Giver,
		FundraiserID: d.FundraiserID,
	}
}
