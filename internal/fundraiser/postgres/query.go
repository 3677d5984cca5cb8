package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/frahmantamala/crowdfunding-admin/internal/fundraiser"
)

var viewColumns = []string{
	"f.fundraiser_id",
	"f.organizer",
	"f.caption",
	"f.target_funding",
	"f.current_funding",
	"f.city",
	"f.active",
	"f.category_id",
	"c.name AS category_name",
}

var donationColumns = []string{
	"d.donation_id",
	"d.date",
	"d.amount",
	"d.giver",
}

// selectViews is the fundraiser/category inner join every read starts from.
func selectViews() sq.SelectBuilder {
	return sq.Select(viewColumns...).
		From("fundraiser f").
		Join("category c ON f.category_id = c.category_id")
}

func activeQuery() sq.SelectBuilder {
	return selectViews().
		Where(sq.Eq{"f.active": true}).
		OrderBy("f.fundraiser_id")
}

// searchQuery adds one predicate per criterion present in filter. The active
// predicate is always there.
func searchQuery(filter fundraiser.SearchFilter) sq.SelectBuilder {
	and := sq.And{sq.Eq{"f.active": true}}
	if filter.Organizer != "" {
		and = append(and, sq.Like{"f.organizer": "%" + filter.Organizer + "%"})
	}
	if filter.City != "" {
		and = append(and, sq.Eq{"f.city": filter.City})
	}
	if filter.CategoryID != nil {
		and = append(and, sq.Eq{"f.category_id": *filter.CategoryID})
	}

	return selectViews().Where(and).OrderBy("f.fundraiser_id")
}

func byIDQuery(id int64) sq.SelectBuilder {
	return selectViews().Where(sq.Eq{"f.fundraiser_id": id})
}

func withDonationsQuery(id int64) sq.SelectBuilder {
	columns := make([]string, 0, len(viewColumns)+len(donationColumns))
	columns = append(columns, viewColumns...)
	columns = append(columns, donationColumns...)

	return sq.Select(columns...).
		From("fundraiser f").
		Join("category c ON f.category_id = c.category_id").
		LeftJoin("donation d ON f.fundraiser_id = d.fundraiser_id").
		Where(sq.Eq{"f.fundraiser_id": id}).
		OrderBy("d.donation_id")
}

// selectInto renders b with ? placeholders and rebinds them for the
// connected driver, so the same builders serve Postgres and SQLite.
func (r *FundraiserRepository) selectInto(ctx context.Context, dest interface{}, b sq.SelectBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build fundraiser query: %w", err)
	}
	return r.sqlx.SelectContext(ctx, dest, r.sqlx.Rebind(query), args...)
}

func (r *FundraiserRepository) ListActive(ctx context.Context) ([]fundraiser.FundraiserView, error) {
	views := make([]fundraiser.FundraiserView, 0)
	if err := r.selectInto(ctx, &views, activeQuery()); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *FundraiserRepository) Search(ctx context.Context, filter fundraiser.SearchFilter) ([]fundraiser.FundraiserView, error) {
	views := make([]fundraiser.FundraiserView, 0)
	if err := r.selectInto(ctx, &views, searchQuery(filter)); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *FundraiserRepository) GetByID(ctx context.Context, id int64) ([]fundraiser.FundraiserView, error) {
	views := make([]fundraiser.FundraiserView, 0)
	if err := r.selectInto(ctx, &views, byIDQuery(id)); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *FundraiserRepository) GetWithDonations(ctx context.Context, id int64) ([]fundraiser.FundraiserDonationRow, error) {
	rows := make([]fundraiser.FundraiserDonationRow, 0)
	if err := r.selectInto(ctx, &rows, withDonationsQuery(id)); err != nil {
		return nil, err
	}
	return rows, nil
}
