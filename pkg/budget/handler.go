package budget

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
)

type SetLimitDTO struct {
	Month      string  `json:"month"`
	CategoryID string  `json:"categoryId"`
	Amount     float64 `json:"amount"`
	IsDefault  bool    `json:"isDefault"`
}

type EffectiveLimitDTO struct {
	Month      string   `json:"month"`
	CategoryID string   `json:"categoryId"`
	Limit      *float64 `json:"limit"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	doc, err := h.service.Get(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) SetLimit(w http.ResponseWriter, r *http.Request) {
	log.Debug("Setting budget limit")
	w.Header().Set("Content-Type", "application/json")

	var dto SetLimitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc, err := h.service.SetLimit(r.Context(), dto.Month, Limit{CategoryID: dto.CategoryID, Amount: dto.Amount}, dto.IsDefault)
	if err != nil {
		if errors.Is(err, ErrInvalid) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) EffectiveLimit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	month := r.URL.Query().Get("month")
	categoryId := r.URL.Query().Get("categoryId")
	if month == "" || categoryId == "" {
		http.Error(w, "month and categoryId are required", http.StatusBadRequest)
		return
	}

	amount, ok, err := h.service.EffectiveLimit(r.Context(), month, categoryId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dto := EffectiveLimitDTO{Month: month, CategoryID: categoryId}
	if ok {
		dto.Limit = &amount
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearAll(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
