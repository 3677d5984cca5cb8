package postgres

import (
	"context"

	donationDatamodel "github.com/frahmantamala/crowdfunding-admin/internal/core/datamodel/donation"
	"github.com/frahmantamala/crowdfunding-admin/internal/donation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DonationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) donation.RepositoryAPI {
	return &DonationRepository{db: db}
}

func (r *DonationRepository) Create(ctx context.Context, d *donationDatamodel.Donation) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(d).Error
}
