package fundraiser

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/crowdfunding-admin/internal"
	"github.com/frahmantamala/crowdfunding-admin/internal/core/common/storeerr"
	fundraiserDatamodel "github.com/frahmantamala/crowdfunding-admin/internal/core/datamodel/fundraiser"
)

// RepositoryAPI is split the same way the store is: reads go through joined
// views, writes through the data model.
type RepositoryAPI interface {
	ListActive(ctx context.Context) ([]FundraiserView, error)
	Search(ctx context.Context, filter SearchFilter) ([]FundraiserView, error)
	GetByID(ctx context.Context, id int64) ([]FundraiserView, error)
	GetWithDonations(ctx context.Context, id int64) ([]FundraiserDonationRow, error)

	Create(ctx context.Context, f *fundraiserDatamodel.Fundraiser) error
	Update(ctx context.Context, f *fundraiserDatamodel.Fundraiser) error
	// Delete returns internal.ErrFundraiserNotFound or
	// internal.ErrFundraiserHasDonations when the row cannot be removed.
	Delete(ctx context.Context, id int64) error
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

func (s *Service) ListActive(ctx context.Context) ([]FundraiserView, error) {
	views, err := s.repo.ListActive(ctx)
	if err != nil {
		s.logger.Error("failed to list active fundraisers", "error", err)
		return nil, storeerr.Handle(err, "fundraiser")
	}
	return views, nil
}

// Search returns active fundraisers matching every criterion set in filter.
func (s *Service) Search(ctx context.Context, filter SearchFilter) ([]FundraiserView, error) {
	views, err := s.repo.Search(ctx, filter)
	if err != nil {
		s.logger.Error("failed to search fundraisers", "organizer", filter.Organizer, "city", filter.City, "error", err)
		return nil, storeerr.Handle(err, "fundraiser")
	}
	s.logger.Debug("searched fundraisers", "count", len(views))
	return views, nil
}

// GetByID returns the matching rows regardless of the active flag.
func (s *Service) GetByID(ctx context.Context, id int64) ([]FundraiserView, error) {
	views, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get fundraiser", "fundraiser_id", id, "error", err)
		return nil, storeerr.Handle(err, "fundraiser")
	}
	if len(views) == 0 {
		return nil, internal.ErrFundraiserNotFound
	}
	return views, nil
}

// GetWithDonations returns one row per donation, or a single row with empty
// donation fields when nobody has donated yet.
func (s *Service) GetWithDonations(ctx context.Context, id int64) ([]FundraiserDonationRow, error) {
	rows, err := s.repo.GetWithDonations(ctx, id)
	if err != nil {
		s.logger.Error("failed to get fundraiser details", "fundraiser_id", id, "error", err)
		return nil, storeerr.Handle(err, "fundraiser")
	}
	if len(rows) == 0 {
		return nil, internal.ErrFundraiserNotFound
	}
	return rows, nil
}

func (s *Service) Create(ctx context.Context, dto FundraiserDTO) (*Fundraiser, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	model := ToDataModel(NewFundraiser(dto))
	if err := s.repo.Create(ctx, model); err != nil {
		s.logger.Error("failed to create fundraiser", "category_id", dto.CategoryID, "error", err)
		return nil, storeerr.Handle(err, "category")
	}

	s.logger.Info("fundraiser created", "fundraiser_id", model.ID)
	return FromDataModel(model), nil
}

// Update replaces every mutable field of fundraiser id.
func (s *Service) Update(ctx context.Context, id int64, dto FundraiserDTO) (*Fundraiser, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	f := NewFundraiser(dto)
	f.ID = id
	if err := s.repo.Update(ctx, ToDataModel(f)); err != nil {
		s.logger.Error("failed to update fundraiser", "fundraiser_id", id, "error", err)
		return nil, storeerr.Handle(err, "category")
	}

	s.logger.Info("fundraiser updated", "fundraiser_id", id)
	return f, nil
}

// Delete removes a fundraiser that has no donations.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if _, ok := internal.IsAppError(err); !ok {
			s.logger.Error("failed to delete fundraiser", "fundraiser_id", id, "error", err)
		}
		return storeerr.Handle(err, "fundraiser")
	}

	s.logger.Info("fundraiser deleted", "fundraiser_id", id)
	return nil
}
