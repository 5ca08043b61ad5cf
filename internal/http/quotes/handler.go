package quotes

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/dailyhub/internal/quotes"
)

type Handler struct {
	client *quotes.Client
}

func NewHandler(client *quotes.Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/indices", h.indices)
}

func (h *Handler) indices(w http.ResponseWriter, r *http.Request) {
	qs, err := h.client.Fetch(r.Context(), quotes.DefaultIndices())
	if err != nil {
		if errors.Is(err, quotes.ErrUnavailable) {
			http.Error(w, "quote providers unavailable", http.StatusBadGateway)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(qs); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
