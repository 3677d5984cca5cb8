package fundraiser

import (
	"context"
	"net/http"

	"github.com/frahmantamala/crowdfunding-admin/internal"
	"github.com/frahmantamala/crowdfunding-admin/internal/transport"
)

type ServiceAPI interface {
	ListActive(ctx context.Context) ([]FundraiserView, error)
	Search(ctx context.Context, filter SearchFilter) ([]FundraiserView, error)
	GetByID(ctx context.Context, id int64) ([]FundraiserView, error)
	GetWithDonations(ctx context.Context, id int64) ([]FundraiserDonationRow, error)
	Create(ctx context.Context, dto FundraiserDTO) (*Fundraiser, error)
	Update(ctx context.Context, id int64, dto FundraiserDTO) (*Fundraiser, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

// DeleteResponse is the body of a successful DELETE /fundraiser/{id}.
type DeleteResponse struct {
	Status string `json:"status"`
}

// ListActive handles GET /active.
func (h *Handler) ListActive(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := internal.WithTimeout(r.Context(), h.RequestTimeout)
	defer cancel()

	views, err := h.Service.ListActive(ctx)
	if err != nil {
		h.HandleServiceError(w, err, "Error retrieving active fundraisers.")
		return
	}

	h.WriteJSON(w, http.StatusOK, views)
}

// Search handles GET /search?organizer=&city=&category=.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	filter, err := ParseSearchFilter(r.URL.Query())
	if err != nil {
		h.HandleServiceError(w, err, "Error searching fundraisers.")
		return
	}

	ctx, cancel := internal.WithTimeout(r.Context(), h.RequestTimeout)
	defer cancel()

	views, err := h.Service.Search(ctx, filter)
	if err != nil {
		h.HandleServiceError(w, err, "Error searching fundraisers.")
		return
	}

	h.WriteJSON(w, http.StatusOK, views)
}

// GetFundraiser handles GET /{id}.
func (h *Handler) GetFundraiser(w http.ResponseWriter, r *http.Request) {
	id, err := h.ParseIDParam(r, "id")
	if err != nil {
		h.HandleServiceError(w, err, "Error retrieving fundraiser.")
		return
	}

	ctx, cancel := internal.WithTimeout(r.Context(), h.RequestTimeout)
	defer cancel()

	views, err := h.Service.GetByID(ctx, id)
	if err != nil {
		h.HandleServiceError(w, err, "Error retrieving fundraiser.")
		return
	}

	h.WriteJSON(w, http.StatusOK, views)
}

// GetFundraiserDetails handles GET /fundraiser/{id}.
func (h *Handler) GetFundraiserDetails(w http.ResponseWriter, r *http.Request) {
	id, err := h.ParseIDParam(r, "id")
	if err != nil {
		h.HandleServiceError(w, err, "Error retrieving fundraiser details.")
		return
	}

	ctx, cancel := internal.WithTimeout(r.Context(), h.RequestTimeout)
	defer cancel()

	rows, err := h.Service.GetWithDonations(ctx, id)
	if err != nil {
		h.HandleServiceError(w, err, "Error retrieving fundraiser details.")
		return
	}

	h.WriteJSON(w, http.StatusOK, rows)
}

// CreateFundraiser handles POST /fundraiser.
func (h *Handler) CreateFundraiser(w http.ResponseWriter, r *http.Request) {
	var dto FundraiserDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err, "Error creating fundraiser.")
		return
	}

	ctx, cancel := internal.WithTimeout(r.Context(), h.RequestTimeout)
	defer cancel()

	created, err := h.Service.Create(ctx, dto)
	if err != nil {
		h.HandleServiceError(w, err, "Error creating fundraiser.")
		return
	}

	h.WriteJSON(w, http.StatusCreated, created)
}

// UpdateFundraiser handles PUT /fundraiser/{id}.
func (h *Handler) UpdateFundraiser(w http.ResponseWriter, r *http.Request) {
	id, err := h.ParseIDParam(r, "id")
	if err != nil {
		h.HandleServiceError(w, err, "Error updating fundraiser.")
		return
	}

	var dto FundraiserDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err, "Error updating fundraiser.")
		return
	}

	ctx, cancel := internal.WithTimeout(r.Context(), h.RequestTimeout)
	defer cancel()

	updated, err := h.Service.Update(ctx, id, dto)
	if err != nil {
		h.HandleServiceError(w, err, "Error updating fundraiser.")
		return
	}

	h.WriteJSON(w, http.StatusOK, updated)
}

// DeleteFundraiser handles DELETE /fundraiser/{id}.
func (h *Handler) DeleteFundraiser(w http.ResponseWriter, r *http.Request) {
	id, err := h.ParseIDParam(r, "id")
	if err != nil {
		h.HandleServiceError(w, err, "Error deleting fundraiser.")
		return
	}

	ctx, cancel := internal.WithTimeout(r.Context(), h.RequestTimeout)
	defer cancel()

	if err := h.Service.Delete(ctx, id); err != nil {
		h.HandleServiceError(w, err, "Error deleting fundraiser.")
		return
	}

	h.WriteJSON(w, http.StatusOK, DeleteResponse{Status: "deleted"})
}
