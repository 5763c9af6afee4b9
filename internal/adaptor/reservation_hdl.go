package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"pokerroom-booking/internal/dto/request"
	"pokerroom-booking/internal/usecase"
	"pokerroom-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// CreateReservation handles POST /api/reservations (optional auth,
// guests book with contact details in the body)
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	// User ID kosong = guest booking
	userID := ""
	if id, ok := utils.GetUserIDFromContext(r.Context()); ok {
		userID = id.String()
	}

	var req request.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	reservation, err := h.service.CreateReservation(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, "success", reservation)
}

// ListMyReservations handles GET /api/reservations (protected)
func (h *ReservationHandler) ListMyReservations(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req := &request.PaginatedRequest{
		Page:    1,
		PerPage: 10,
	}

	// Parse query parameters
	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)
	status := query.Get("status")

	reservations, err := h.service.ListUserReservations(r.Context(), userID.String(), status, req)
	if err != nil {
		h.handleServiceError(w, err, "list reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}

// GetReservation handles GET /api/reservations/{id} (protected)
func (h *ReservationHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	reservation, err := h.service.GetReservation(r.Context(), userID.String(), reservationID)
	if err != nil {
		h.handleServiceError(w, err, "get reservation")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// CancelReservation handles POST /api/reservations/{id}/cancel (optional
// auth). Guests kirim {code, email} di body sebagai bukti kepemilikan.
func (h *ReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	userID := ""
	if id, ok := utils.GetUserIDFromContext(r.Context()); ok {
		userID = id.String()
	}

	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	// Body opsional. Decode error diabaikan, user login nggak butuh body.
	var req request.CancelReservationRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if err := h.service.CancelReservation(r.Context(), userID, reservationID, &req); err != nil {
		h.handleServiceError(w, err, "cancel reservation")
		return
	}

	utils.ResponseSuccess(w, "Reservation cancelled", nil)
}

// CheckReservation handles POST /api/reservations/check (public, guest
// lookup pakai kode + email)
func (h *ReservationHandler) CheckReservation(w http.ResponseWriter, r *http.Request) {
	var req request.CheckReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	reservation, err := h.service.CheckReservation(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "check reservation")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// ==================== ADMIN METHODS ====================

// GetReservationByID handles GET /api/admin/reservations/{id} (admin only)
func (h *ReservationHandler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	reservation, err := h.service.GetReservationByID(r.Context(), reservationID)
	if err != nil {
		h.handleServiceError(w, err, "get reservation by ID")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// ConfirmReservation handles PUT /api/admin/reservations/{id}/confirm (admin only)
func (h *ReservationHandler) ConfirmReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	if err := h.service.ConfirmReservation(r.Context(), reservationID); err != nil {
		h.handleServiceError(w, err, "confirm reservation")
		return
	}

	utils.ResponseSuccess(w, "Reservation confirmed", nil)
}

// PurgeReservation handles DELETE /api/admin/reservations/{id} (admin only)
func (h *ReservationHandler) PurgeReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	if err := h.service.PurgeReservation(r.Context(), reservationID); err != nil {
		h.handleServiceError(w, err, "purge reservation")
		return
	}

	utils.ResponseSuccess(w, "Reservation deleted", nil)
}

// handleServiceError handles errors untuk reservation operations
func (h *ReservationHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already booked"):
		h.log.Warn(operation+" failed - slot conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "unauthorized"):
		h.log.Warn(operation+" failed - unauthorized",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "cannot"):
		h.log.Warn(operation+" failed - invalid state",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
