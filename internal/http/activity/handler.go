package activity

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/dailyhub/internal/activity"
)

const defaultLimit = 20

type Handler struct {
	feed *activity.Feed
}

func NewHandler(feed *activity.Feed) *Handler {
	return &Handler{feed: feed}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.recent)
}

func (h *Handler) recent(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}

		limit = n
	}

	events := h.feed.Recent(limit)
	if events == nil {
		events = []activity.Event{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(events); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
