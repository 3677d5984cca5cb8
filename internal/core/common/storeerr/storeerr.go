// Package storeerr turns relational store errors into application errors.
//
// Foreign-key violations become 400s naming the missing entity; every other
// driver error is hidden behind a generic 500.
package storeerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/frahmantamala/crowdfunding-admin/internal"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	foreignKeyViolation = "23503"
	notNullViolation    = "23502"
)

// IsForeignKeyViolation reports whether err is a foreign-key violation, either
// translated by gorm or raw from the driver.
func IsForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == foreignKeyViolation
	}
	// sqlite reports constraint failures only through the message
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// Handle converts err into an *internal.AppError. entity names the referenced
// table when the driver does not report the offending column.
func Handle(err error, entity string) error {
	if err == nil {
		return nil
	}
	if _, ok := internal.IsAppError(err); ok {
		return err
	}

	if IsForeignKeyViolation(err) {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ColumnName != "" {
			entity = entityFromColumn(pgErr.ColumnName)
		}
		msg := fmt.Sprintf("The referenced %s does not exist.", humanize(entity))
		return internal.NewValidationError(msg).WithCause(err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == notNullViolation {
		msg := fmt.Sprintf("The %s is required.", humanize(pgErr.ColumnName))
		return internal.NewValidationError(msg).WithCause(err)
	}

	return internal.NewInternalError("An error occurred while processing your request.", err)
}

func entityFromColumn(column string) string {
	return strings.TrimSuffix(strings.ToLower(column), "_id")
}

func humanize(text string) string {
	if text == "" {
		return "record"
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}
