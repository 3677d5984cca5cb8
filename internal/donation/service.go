package donation

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/crowdfunding-admin/internal/core/common/storeerr"
	donationDatamodel "github.com/frahmantamala/crowdfunding-admin/internal/core/datamodel/donation"
)

type RepositoryAPI interface {
	Create(ctx context.Context, d *donationDatamodel.Donation) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create records a donation. The fundraiser reference is checked by the
// store's foreign key only.
func (s *Service) Create(ctx context.Context, dto DonationDTO) (*Donation, error) {
	d, err := dto.ToDonation()
	if err != nil {
		return nil, err
	}

	model := ToDataModel(d)
	if err := s.repo.Create(ctx, model); err != nil {
		s.logger.Error("failed to create donation", "fundraiser_id", dto.FundraiserID, "error", err)
		return nil, storeerr.Handle(err, "fundraiser")
	}

	s.logger.Info("donation created", "donation_id", model.ID, "fundraiser_id", model.FundraiserID)
	return FromDataModel(model), nil
}
