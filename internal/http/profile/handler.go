package profile

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/dailyhub/internal/profile"
)

// WipeFunc clears every feature list and preference slot. The caller
// wires it so the in-memory stores are emptied along with the
// database, not just the rows underneath them.
type WipeFunc func(ctx context.Context) error

type Handler struct {
	svc  *profile.Service
	wipe WipeFunc
}

func NewHandler(svc *profile.Service, wipe WipeFunc) *Handler {
	return &Handler{svc: svc, wipe: wipe}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Put("/", h.update)
	r.Delete("/", h.reset)
	r.Delete("/data", h.resetAll)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(p); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateProfileRequest struct {
	DisplayName *string        `json:"displayName,omitempty"`
	Theme       *profile.Theme `json:"theme,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.DisplayName != nil {
		if err := h.svc.SetDisplayName(r.Context(), *req.DisplayName); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
	}

	if req.Theme != nil {
		if err := h.svc.SetTheme(r.Context(), *req.Theme); err != nil {
			if errors.Is(err, profile.ErrInvalidTheme) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}

			http.Error(w, "internal error", http.StatusInternalServerError)

			return
		}
	}

	h.get(w, r)
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reset(r.Context()); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// resetAll wipes the whole database, every feature list included.
func (h *Handler) resetAll(w http.ResponseWriter, r *http.Request) {
	if err := h.wipe(r.Context()); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
