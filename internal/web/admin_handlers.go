package web

import (
	"net/http"
	"strconv"

	"gym-ledger/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type createClassRequest struct {
	Name      string          `json:"name" validate:"required"`
	StartDate string          `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string          `json:"end_date" validate:"required,datetime=2006-01-02"`
	Price     decimal.Decimal `json:"price"`
}

func (h *Handler) CreateClass(w http.ResponseWriter, r *http.Request) {
	var req createClassRequest
	if !h.decode(w, r, &req) {
		return
	}
	start, _ := parseDate(req.StartDate)
	end, _ := parseDate(req.EndDate)

	class, err := h.classService.CreateClass(r.Context(), models.NewClass{
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
		Price:     req.Price,
	})
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, class)
}

func (h *Handler) ListAllClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.classService.ListAll(r.Context())
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, classes)
}

func (h *Handler) GetEnrolledMembers(w http.ResponseWriter, r *http.Request) {
	classID, err := strconv.ParseInt(chi.URLParam(r, "classID"), 10, 64)
	if err != nil || classID <= 0 {
		respondWithError(w, http.StatusBadRequest, "invalid class id")
		return
	}

	members, err := h.classService.GetEnrolledMembers(r.Context(), classID)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, members)
}

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.statsService.ListMembers(r.Context())
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, members)
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.statsService.ListTransactions(r.Context())
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, transactions)
}

func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.GetStatistics(r.Context(), h.today())
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}
