package donation

import (
	"context"
	"net/http"

	"github.com/frahmantamala/crowdfunding-admin/internal"
	"github.com/frahmantamala/crowdfunding-admin/internal/transport"
)

type ServiceAPI interface {
	Create(ctx context.Context, dto DonationDTO) (*Donation, error)
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

// CreateDonation handles POST /donation.
func (h *Handler) CreateDonation(w http.ResponseWriter, r *http.Request) {
	var dto DonationDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err, "Error creating donation.")
		return
	}

	ctx, cancel := internal.WithTimeout(r.Context(), h.RequestTimeout)
	defer cancel()

	created, err := h.Service.Create(ctx, dto)
	if err != nil {
		h.HandleServiceError(w, err, "Error creating donation.")
		return
	}

	h.WriteJSON(w, http.StatusCreated, created)
}
