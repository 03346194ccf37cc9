package web

import (
	"net/http"

	"gym-ledger/internal/models"
	"gym-ledger/internal/service"

	"github.com/shopspring/decimal"
)

type subscriptionRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type enrollRequest struct {
	ClassID int64 `json:"class_id" validate:"required,gt=0"`
}

type paymentRequest struct {
	ClassID int64            `json:"class_id" validate:"required,gt=0"`
	Amount  *decimal.Decimal `json:"amount,omitempty"`
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.memberService.GetProfile(r.Context(), claimsFrom(r.Context()).AccountID)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}

func (h *Handler) QuoteSubscription(w http.ResponseWriter, r *http.Request) {
	start, errStart := parseDate(r.URL.Query().Get("start"))
	end, errEnd := parseDate(r.URL.Query().Get("end"))
	if errStart != nil || errEnd != nil {
		respondWithError(w, http.StatusBadRequest, "start and end must be YYYY-MM-DD")
		return
	}

	quote, err := h.subscriptionService.Quote(start, end)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, quote)
}

func (h *Handler) PurchaseSubscription(w http.ResponseWriter, r *http.Request) {
	var req subscriptionRequest
	if !h.decode(w, r, &req) {
		return
	}
	start, _ := parseDate(req.StartDate)
	end, _ := parseDate(req.EndDate)

	subscription, err := h.subscriptionService.Purchase(r.Context(), claimsFrom(r.Context()).AccountID, start, end)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, messageResponse{
		Message: "Subscription purchased successfully!",
		Data:    subscription,
	})
}

func (h *Handler) GetSubscriptionHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.subscriptionService.GetHistory(r.Context(), claimsFrom(r.Context()).AccountID)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, history)
}

func (h *Handler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.MarkAttendance(r.Context(), claimsFrom(r.Context()).AccountID, h.today())
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	if result.AlreadyMarked {
		respondWithJSON(w, http.StatusOK, messageResponse{Message: "Attendance already marked for today", Data: result})
		return
	}
	respondWithJSON(w, http.StatusCreated, messageResponse{Message: "Attendance marked successfully!", Data: result})
}

func (h *Handler) GetAttendanceHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.attendanceService.GetHistory(r.Context(), claimsFrom(r.Context()).AccountID)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, history)
}

func (h *Handler) GetMemberTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.memberService.GetTransactions(r.Context(), claimsFrom(r.Context()).AccountID)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, transactions)
}

func (h *Handler) ListActiveClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.classService.ListActive(r.Context())
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, classes)
}

func (h *Handler) Enroll(w http.ResponseWriter, r *http.Request) {
	var req enrollRequest
	if !h.decode(w, r, &req) {
		return
	}

	receipt, err := h.enrollmentService.Enroll(r.Context(), claimsFrom(r.Context()).AccountID, req.ClassID)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, messageResponse{
		Message: "Successfully enrolled in class! Payment is pending.",
		Data:    receipt,
	})
}

func (h *Handler) GetEnrolledClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.enrollmentService.GetEnrolledClasses(r.Context(), claimsFrom(r.Context()).AccountID)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, classes)
}

func (h *Handler) SettlePayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if !h.decode(w, r, &req) {
		return
	}

	settlement := models.SettlementRequest{
		MemberID: claimsFrom(r.Context()).AccountID,
		ClassID:  req.ClassID,
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			h.respondWithServiceError(w, r, service.ErrInvalidInput)
			return
		}
		settlement.Amount = decimal.NewNullDecimal(*req.Amount)
	}

	receipt, err := h.enrollmentService.SettlePayment(r.Context(), settlement)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, messageResponse{Message: "Payment completed", Data: receipt})
}
