package cmd

import (
	"context"
	"fmt"

	"github.com/frahmantamala/crowdfunding-admin/internal/category"
	categoryPostgres "github.com/frahmantamala/crowdfunding-admin/internal/category/postgres"
	categoryDatamodel "github.com/frahmantamala/crowdfunding-admin/internal/core/datamodel/category"
	donationDatamodel "github.com/frahmantamala/crowdfunding-admin/internal/core/datamodel/donation"
	fundraiserDatamodel "github.com/frahmantamala/crowdfunding-admin/internal/core/datamodel/fundraiser"
	"github.com/frahmantamala/crowdfunding-admin/internal/donation"
	donationPostgres "github.com/frahmantamala/crowdfunding-admin/internal/donation/postgres"
	"github.com/frahmantamala/crowdfunding-admin/internal/fundraiser"
	fundraiserPostgres "github.com/frahmantamala/crowdfunding-admin/internal/fundraiser/postgres"
	"github.com/frahmantamala/crowdfunding-admin/pkg/logger"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample categories, fundraisers and donations for development and testing purposes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		db, gormDB, err := initDB(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to init db: %w", err)
		}
		defer db.Close()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return seed(ctx, gormDB, db, clearData)
	},
}

type sampleFundraiser struct {
	category string
	dto      fundraiser.FundraiserDTO
	gifts    []donation.DonationDTO
}

var sampleCategories = []string{"Medical", "Education", "Animals", "Community", "Disaster Relief"}

func sampleFundraisers() []sampleFundraiser {
	money := func(v float64) *float64 { return &v }
	flag := func(v bool) *bool { return &v }

	return []sampleFundraiser{
		{
			category: "Medical",
			dto: fundraiser.FundraiserDTO{
				Organizer: "Alice Wong", Caption: "Help Mia beat leukaemia",
				TargetFunding: money(20000), CurrentFunding: money(150), City: "Sydney", Active: flag(true),
			},
			gifts: []donation.DonationDTO{
				{Date: "2024-09-01", Amount: money(100), Giver: "Carol"},
				{Date: "2024-09-02", Amount: money(50), Giver: "Dave"},
			},
		},
		{
			category: "Education",
			dto: fundraiser.FundraiserDTO{
				Organizer: "Bob Smith", Caption: "Library books for Riverside Primary",
				TargetFunding: money(3000), CurrentFunding: money(0), City: "Melbourne", Active: flag(true),
			},
		},
		{
			category: "Animals",
			dto: fundraiser.FundraiserDTO{
				Organizer: "Priya Nair", Caption: "New kennels for the shelter",
				TargetFunding: money(8000), CurrentFunding: money(0), City: "Brisbane", Active: flag(false),
			},
		},
		{
			category: "Disaster Relief",
			dto: fundraiser.FundraiserDTO{
				Organizer: "Tom Baker", Caption: "Flood recovery for Lismore families",
				TargetFunding: money(50000), CurrentFunding: money(500), City: "Lismore", Active: flag(true),
			},
			gifts: []donation.DonationDTO{
				{Date: "2024-10-11T09:30:00+10:00", Amount: money(500), Giver: "Anonymous"},
			},
		},
	}
}

// seed inserts reference categories and, unless fundraisers already exist,
// the sample fundraisers with their donations. wipe empties all three tables
// first, children before parents.
func seed(ctx context.Context, db *gorm.DB, sqlxDB *sqlx.DB, wipe bool) error {
	lg := logger.LoggerWrapper()

	if wipe {
		if err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, model := range []interface{}{
				&donationDatamodel.Donation{},
				&fundraiserDatamodel.Fundraiser{},
				&categoryDatamodel.Category{},
			} {
				if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			return fmt.Errorf("failed to clear data: %w", err)
		}
		lg.Info("cleared existing data")
	}

	categoryService := category.NewService(categoryPostgres.NewCategoryRepository(db), lg)
	categoryIDs := make(map[string]int64, len(sampleCategories))
	for _, name := range sampleCategories {
		cat, err := categoryService.EnsureCategory(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to seed category %q: %w", name, err)
		}
		categoryIDs[name] = cat.ID
	}

	var existing int64
	if err := db.WithContext(ctx).Model(&fundraiserDatamodel.Fundraiser{}).Count(&existing).Error; err != nil {
		return fmt.Errorf("failed to count fundraisers: %w", err)
	}
	if existing > 0 {
		lg.Info("fundraisers already present; skipping samples", "count", existing)
		return nil
	}

	fundraiserService := fundraiser.NewService(fundraiserPostgres.NewFundraiserRepository(db, sqlxDB), lg)
	donationService := donation.NewService(donationPostgres.NewDonationRepository(db), lg)

	for _, sample := range sampleFundraisers() {
		sample.dto.CategoryID = categoryIDs[sample.category]
		created, err := fundraiserService.Create(ctx, sample.dto)
		if err != nil {
			return fmt.Errorf("failed to seed fundraiser %q: %w", sample.dto.Caption, err)
		}

		for _, gift := range sample.gifts {
			gift.FundraiserID = created.ID
			if _, err := donationService.Create(ctx, gift); err != nil {
				return fmt.Errorf("failed to seed donation for %q: %w", sample.dto.Caption, err)
			}
		}
	}

	lg.Info("seeding completed", "categories", len(sampleCategories), "fundraisers", len(sampleFundraisers()))
	return nil
}
