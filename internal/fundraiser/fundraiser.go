package fundraiser

import (
	"time"

	fundraiserDatamodel "github.com/frahmantamala/crowdfunding-admin/internal/core/datamodel/fundraiser"
)

// Fundraiser is a crowdfunding campaign as written by the command API.
type Fundraiser struct {
	ID             int64   `json:"fundraiser_id"`
	Organizer      string  `json:"organizer"`
	Caption        string  `json:"caption"`
	TargetFunding  float64 `json:"target_funding"`
	CurrentFunding float64 `json:"current_funding"`
	City           string  `json:"city"`
	Active         bool    `json:"active"`
	CategoryID     int64   `json:"category_id"`
}

// FundraiserView is a fundraiser row joined with its category name.
type FundraiserView struct {
	ID             int64   `db:"fundraiser_id" json:"fundraiser_id"`
	Organizer      string  `db:"organizer" json:"organizer"`
	Caption        string  `db:"caption" json:"caption"`
	TargetFunding  float64 `db:"target_funding" json:"target_funding"`
	CurrentFunding float64 `db:"current_funding" json:"current_funding"`
	City           string  `db:"city" json:"city"`
	Active         bool    `db:"active" json:"active"`
	CategoryID     int64   `db:"category_id" json:"category_id"`
	CategoryName   string  `db:"category_name" json:"category_name"`
}

// FundraiserDonationRow is one row of the fundraiser/donation left join. The
// donation fields are nil when the fundraiser has no donations.
type FundraiserDonationRow struct {
	FundraiserView
	DonationID *int64     `db:"donation_id" json:"donation_id"`
	Date       *time.Time `db:"date" json:"date"`
	Amount     *float64   `db:"amount" json:"amount"`
	Giver      *string    `db:"giver" json:"giver"`
}

// HasDonation reports whether the row carries a donation.
func (r FundraiserDonationRow) HasDonation() bool {
	return r.DonationID != nil
}

// NewFundraiser builds a fundraiser from a validated payload. Active is kept
// exactly as the caller sent it.
func NewFundraiser(dto FundraiserDTO) *Fundraiser {
	return &Fundraiser{
		Organizer:      dto.Organizer,
		Caption:        dto.Caption,
		TargetFunding:  *dto.TargetFunding,
		CurrentFunding: *dto.CurrentFunding,
		City:           dto.City,
		Active:         *dto.Active,
		CategoryID:     dto.CategoryID,
	}
}

func ToDataModel(f *Fundraiser) *fundraiserDatamodel.Fundraiser {
	return &fundraiserDatamodel.Fundraiser{
		ID:             f.ID,
		Organizer:      f.Organizer,
		Caption:        f.Caption,
		TargetFunding:  f.TargetFunding,
		CurrentFunding: f.CurrentFunding,
		City:           f.City,
		Active:         f.Active,
		CategoryID:     f.CategoryID,
	}
}

func FromDataModel(f *fundraiserDatamodel.Fundraiser) *Fundraiser {
	return &Fundraiser{
		ID:             f.ID,
		Organizer:      f.Organizer,
		Caption:        f.Caption,
		TargetFunding:  f.TargetFunding,
		CurrentFunding: f.CurrentFunding,
		City:           f.City,
		Active:         f.Active,
		CategoryID:     f.CategoryID,
	}
}
