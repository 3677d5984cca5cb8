package category

import (
	"context"
	"log/slog"

	categoryDatamodel "github.com/frahmantamala/crowdfunding-admin/internal/core/datamodel/category"
)

type RepositoryAPI interface {
	GetAll(ctx context.Context) ([]*categoryDatamodel.Category, error)
	GetByName(ctx context.Context, name string) (*categoryDatamodel.Category, error)
	Create(ctx context.Context, category *categoryDatamodel.Category) error
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

// GetAllCategories returns every category, unfiltered. The result is never
// nil so it encodes as [] rather than null.
func (s *Service) GetAllCategories(ctx context.Context) ([]CategoryResponse, error) {
	dataCategories, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to get categories from repository", "error", err)
		return nil, err
	}

	responses := make([]CategoryResponse, 0, len(dataCategories))
	for _, dataCategory := range dataCategories {
		responses = append(responses, FromDataModel(dataCategory).ToResponse())
	}

	s.logger.Debug("retrieved categories", "count", len(responses))
	return responses, nil
}

// EnsureCategory returns the category called name, creating it when missing.
func (s *Service) EnsureCategory(ctx context.Context, name string) (*Category, error) {
	existing, err := s.repo.GetByName(ctx, name)
	if err != nil {
		s.logger.Error("failed to look up category", "name", name, "error", err)
		return nil, err
	}
	if existing != nil {
		return FromDataModel(existing), nil
	}

	dataCategory := ToDataModel(NewCategory(name))
	if err := s.repo.Create(ctx, dataCategory); err != nil {
		s.logger.Error("failed to create category", "name", name, "error", err)
		return nil, err
	}

	s.logger.Info("created category", "category_id", dataCategory.ID, "name", name)
	return FromDataModel(dataCategory), nil
}
