package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"gym-ledger/internal/models"
	"gym-ledger/internal/models/config"
	"gym-ledger/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type Handler struct {
	authService         service.AuthService
	memberService       service.MemberService
	subscriptionService service.SubscriptionService
	attendanceService   service.AttendanceService
	classService        service.ClassService
	enrollmentService   service.EnrollmentService
	statsService        service.StatsService

	validate *validator.Validate
	logger   *zap.Logger
	location *time.Location
	now      func() time.Time
}

func NewHandler(
	authService service.AuthService,
	memberService service.MemberService,
	subscriptionService service.SubscriptionService,
	attendanceService service.AttendanceService,
	classService service.ClassService,
	enrollmentService service.EnrollmentService,
	statsService service.StatsService,
	cfg *config.Config,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		authService:         authService,
		memberService:       memberService,
		subscriptionService: subscriptionService,
		attendanceService:   attendanceService,
		classService:        classService,
		enrollmentService:   enrollmentService,
		statsService:        statsService,
		validate:            validator.New(),
		logger:              logger.Named("http"),
		location:            cfg.Ledger.Location,
		now:                 time.Now,
	}
}

// today - дата "сегодня" в часовом поясе зала
func (h *Handler) today() time.Time {
	loc := h.location
	if loc == nil {
		loc = time.UTC
	}
	return models.DateOnly(h.now().In(loc))
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(observeMetrics)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", h.Register)
		r.Post("/auth/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate(models.RoleMember))

			r.Get("/classes", h.ListActiveClasses)
			r.Get("/subscriptions/quote", h.QuoteSubscription)

			r.Route("/me", func(r chi.Router) {
				r.Get("/", h.GetProfile)
				r.Get("/subscriptions", h.GetSubscriptionHistory)
				r.Post("/subscriptions", h.PurchaseSubscription)
				r.Get("/attendance", h.GetAttendanceHistory)
				r.Post("/attendance", h.MarkAttendance)
				r.Get("/transactions", h.GetMemberTransactions)
				r.Get("/enrollments", h.GetEnrolledClasses)
				r.Post("/enrollments", h.Enroll)
				r.Post("/payments", h.SettlePayment)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.authenticate(models.RoleAdmin))

			r.Get("/classes", h.ListAllClasses)
			r.Post("/classes", h.CreateClass)
			r.Get("/classes/{classID}/members", h.GetEnrolledMembers)
			r.Get("/members", h.ListMembers)
			r.Get("/transactions", h.ListTransactions)
			r.Get("/statistics", h.GetStatistics)
		})
	})

	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, status int, message string) {
	respondWithJSON(w, status, errorResponse{Error: message})
}

// respondWithServiceError переводит ошибку сервиса в HTTP-статус.
// Текст внутренних ошибок наружу не отдаётся.
func (h *Handler) respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch service.KindOf(err) {
	case service.KindValidation:
		respondWithError(w, http.StatusBadRequest, err.Error())
	case service.KindPrecondition:
		status := http.StatusConflict
		if errors.Is(err, service.ErrInsufficientFunds) || errors.Is(err, service.ErrAmountMismatch) {
			status = http.StatusUnprocessableEntity
		}
		respondWithError(w, status, err.Error())
	case service.KindNotFound:
		respondWithError(w, http.StatusNotFound, notFoundMessage(err))
	case service.KindUnauthorized:
		respondWithError(w, http.StatusUnauthorized, err.Error())
	default:
		h.logger.Error("request failed",
			zap.String("request_id", requestIDFrom(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

func notFoundMessage(err error) string {
	if errors.Is(err, service.ErrMemberNotFound) || errors.Is(err, service.ErrClassNotFound) {
		return err.Error()
	}
	return "not found"
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return "invalid field: " + verrs[0].Field()
	}
	return "invalid request"
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
