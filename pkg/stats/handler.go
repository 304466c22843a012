package stats

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

type Handler struct {
	service  Service
	renderer *CsvRendererImpl
}

func NewHandler(service Service, renderer *CsvRendererImpl) *Handler {
	return &Handler{service: service, renderer: renderer}
}

func (h *Handler) GetMonthly(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	summary, err := h.service.Monthly(r.Context(), month)
	if err != nil {
		if errors.Is(err, ErrInvalidMonth) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "text/csv") {
		rendered, err := h.renderer.RenderMonthly(summary)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(rendered)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
