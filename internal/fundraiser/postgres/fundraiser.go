package postgres

import (
	"context"
	"errors"

	"github.com/frahmantamala/crowdfunding-admin/internal"
	"github.com/frahmantamala/crowdfunding-admin/internal/core/common/storeerr"
	donationDatamodel "github.com/frahmantamala/crowdfunding-admin/internal/core/datamodel/donation"
	fundraiserDatamodel "github.com/frahmantamala/crowdfunding-admin/internal/core/datamodel/fundraiser"
	"github.com/frahmantamala/crowdfunding-admin/internal/fundraiser"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FundraiserRepository writes through gorm and reads through sqlx. Both
// handles share one connection pool.
type FundraiserRepository struct {
	db   *gorm.DB
	sqlx *sqlx.DB
}

func NewFundraiserRepository(db *gorm.DB, sqlxDB *sqlx.DB) fundraiser.RepositoryAPI {
	return &FundraiserRepository{db: db, sqlx: sqlxDB}
}

func (r *FundraiserRepository) Create(ctx context.Context, f *fundraiserDatamodel.Fundraiser) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(f).Error
}

// Update overwrites every column. A map is used so false and zero values are
// written too.
func (r *FundraiserRepository) Update(ctx context.Context, f *fundraiserDatamodel.Fundraiser) error {
	result := r.db.WithContext(ctx).
		Model(&fundraiserDatamodel.Fundraiser{}).
		Where("fundraiser_id = ?", f.ID).
		Updates(map[string]interface{}{
			"organizer":       f.Organizer,
			"caption":         f.Caption,
			"target_funding":  f.TargetFunding,
			"current_funding": f.CurrentFunding,
			"city":            f.City,
			"active":          f.Active,
			"category_id":     f.CategoryID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return internal.ErrFundraiserNotFound
	}
	return nil
}

// Delete locks the fundraiser row, refuses when donations reference it and
// removes it otherwise, all in one transaction.
func (r *FundraiserRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var f fundraiserDatamodel.Fundraiser
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("fundraiser_id = ?", id).
			First(&f).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return internal.ErrFundraiserNotFound
			}
			return err
		}

		var donations int64
		if err := tx.Model(&donationDatamodel.Donation{}).
			Where("fundraiser_id = ?", id).
			Count(&donations).Error; err != nil {
			return err
		}
		if donations > 0 {
			return internal.ErrFundraiserHasDonations
		}

		return tx.Delete(&fundraiserDatamodel.Fundraiser{}, "fundraiser_id = ?", id).Error
	})

	// A donation committed between the count and the delete still trips
	// the RESTRICT constraint.
	if storeerr.IsForeignKeyViolation(err) {
		return internal.ErrFundraiserHasDonations
	}
	return err
}
