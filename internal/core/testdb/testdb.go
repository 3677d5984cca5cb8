// Package testdb opens in-memory SQLite databases carrying the production
// schema, for repository and handler tests.
package testdb

import (
	"fmt"
	"time"

	categoryDatamodel "github.com/frahmantamala/crowdfunding-admin/internal/core/datamodel/category"
	donationDatamodel "github.com/frahmantamala/crowdfunding-admin/internal/core/datamodel/donation"
	fundraiserDatamodel "github.com/frahmantamala/crowdfunding-admin/internal/core/datamodel/fundraiser"
	"github.com/jmoiron/sqlx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DriverName is the database/sql driver registered by gorm's sqlite dialector.
const DriverName = "sqlite3"

// Open returns a fresh in-memory database with foreign keys enforced and LIKE
// matching case the way Postgres does. The pool is pinned to one connection
// because every :memory: connection is a separate database.
func Open() (*gorm.DB, *sqlx.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on&_case_sensitive_like=1"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("sqlite handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&categoryDatamodel.Category{},
		&fundraiserDatamodel.Fundraiser{},
		&donationDatamodel.Donation{},
	); err != nil {
		return nil, nil, fmt.Errorf("migrate sqlite: %w", err)
	}

	return db, sqlx.NewDb(sqlDB, DriverName), nil
}

// OpenSeeded is Open followed by Seed.
func OpenSeeded() (*gorm.DB, *sqlx.DB, error) {
	db, sqlxDB, err := Open()
	if err != nil {
		return nil, nil, err
	}
	if err := Seed(db); err != nil {
		Close(db)
		return nil, nil, fmt.Errorf("seed sqlite: %w", err)
	}
	return db, sqlxDB, nil
}

// Close releases the underlying connection.
func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// Fixture ids created by Seed.
const (
	MedicalID   int64 = 1
	EducationID int64 = 2

	// ClinicID is active, in Sydney, with two donations.
	ClinicID int64 = 1
	// SchoolID is active, in Melbourne, without donations.
	SchoolID int64 = 2
	// ShelterID is inactive, in Sydney.
	ShelterID int64 = 3
)

// Seed inserts two categories, three fundraisers and two donations.
func Seed(db *gorm.DB) error {
	categories := []*categoryDatamodel.Category{
		{ID: MedicalID, Name: "Medical"},
		{ID: EducationID, Name: "Education"},
	}
	fundraisers := []*fundraiserDatamodel.Fundraiser{
		{ID: ClinicID, Organizer: "Alice Wong", Caption: "Rebuild the clinic", TargetFunding: 5000, CurrentFunding: 150, City: "Sydney", Active: true, CategoryID: MedicalID},
		{ID: SchoolID, Organizer: "Bob Smith", Caption: "School books", TargetFunding: 2000, CurrentFunding: 0, City: "Melbourne", Active: true, CategoryID: EducationID},
		{ID: ShelterID, Organizer: "Alice Cooper", Caption: "Animal shelter", TargetFunding: 8000, CurrentFunding: 0, City: "Sydney", Active: false, CategoryID: MedicalID},
	}
	donations := []*donationDatamodel.Donation{
		{ID: 1, Date: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), Amount: 100, Giver: "Carol", FundraiserID: ClinicID},
		{ID: 2, Date: time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC), Amount: 50, Giver: "Dave", FundraiserID: ClinicID},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(categories).Error; err != nil {
			return err
		}
		if err := tx.Omit("Category").Create(fundraisers).Error; err != nil {
			return err
		}
		return tx.Omit("Fundraiser").Create(donations).Error
	})
}
