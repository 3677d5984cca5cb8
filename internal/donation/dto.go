package donation

import (
	"github.com/frahmantamala/crowdfunding-admin/internal/core/common/validation"
)

// DonationDTO is the body of POST /donation.
type DonationDTO struct {
	Date         string   `json:"date" validate:"required,dateish"`
	Amount       *float64 `json:"amount" validate:"required"`
	Giver        string   `json:"giver" validate:"required"`
	FundraiserID int64    `json:"fundraiser_id" validate:"required"`
}

// ToDonation validates the payload and converts it.
func (dto DonationDTO) ToDonation() (*Donation, error) {
	if appErr := validation.Struct(dto); appErr != nil {
		return nil, appErr
	}

	date, err := validation.ParseDate(dto.Date)
	if err != nil {
		return nil, err
	}

	return &Donation{
		Date:         date,
		Amount:       *dto.Amount,
		Giver:        dto.Giver,
		FundraiserID: dto.FundraiserID,
	}, nil
}
