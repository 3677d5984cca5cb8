package fundraiser

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/frahmantamala/crowdfunding-admin/internal"
	"github.com/frahmantamala/crowdfunding-admin/internal/core/common/validation"
)

// FundraiserDTO is the body of POST /fundraiser and PUT /fundraiser/{id}.
// Numbers and the active flag are pointers so an explicit zero or false
// counts as present.
type FundraiserDTO struct {
	Organizer      string   `json:"organizer" validate:"required"`
	Caption        string   `json:"caption" validate:"required"`
	TargetFunding  *float64 `json:"target_funding" validate:"required"`
	CurrentFunding *float64 `json:"current_funding" validate:"required"`
	City           string   `json:"city" validate:"required"`
	Active         *bool    `json:"active" validate:"required"`
	CategoryID     int64    `json:"category_id" validate:"required"`
}

// Validate checks that every field is present.
func (dto FundraiserDTO) Validate() error {
	if appErr := validation.Struct(dto); appErr != nil {
		return appErr
	}
	return nil
}

// SearchFilter holds the optional search criteria. Zero values mean the
// clause is omitted.
type SearchFilter struct {
	Organizer  string
	City       string
	CategoryID *int64
}

// IsEmpty reports whether no criterion is set.
func (f SearchFilter) IsEmpty() bool {
	return f.Organizer == "" && f.City == "" && f.CategoryID == nil
}

// ParseSearchFilter reads organizer, city and category from the query string.
// Empty parameters are treated as absent.
func ParseSearchFilter(q url.Values) (SearchFilter, error) {
	filter := SearchFilter{
		Organizer: q.Get("organizer"),
		City:      q.Get("city"),
	}

	if raw := strings.TrimSpace(q.Get("category")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return SearchFilter{}, internal.NewValidationError("category must be a numeric identifier")
		}
		filter.CategoryID = &id
	}

	return filter, nil
}
