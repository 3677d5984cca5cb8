package category

import (
	"context"
	"net/http"

	"github.com/frahmantamala/crowdfunding-admin/internal"
	"github.com/frahmantamala/crowdfunding-admin/internal/transport"
)

type ServiceAPI interface {
	GetAllCategories(ctx context.Context) ([]CategoryResponse, error)
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

// GetCategories handles GET /categories.
func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := internal.WithTimeout(r.Context(), h.RequestTimeout)
	defer cancel()

	categories, err := h.Service.GetAllCategories(ctx)
	if err != nil {
		h.Logger.Error("GetCategories: failed to get categories", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "Error retrieving categories.")
		return
	}

	h.WriteJSON(w, http.StatusOK, categories)
}
