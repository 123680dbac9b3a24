package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tripai/tripai-go/internal/genai"
	"github.com/tripai/tripai-go/internal/itinerary"
	"github.com/tripai/tripai-go/internal/middleware"
	"github.com/tripai/tripai-go/internal/model"
	"github.com/tripai/tripai-go/internal/service"
)

// TripHandler handles HTTP requests for itinerary generation and saved trips.
type TripHandler struct {
	generator *service.GeneratorService
	trips     *service.TripService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(generator *service.GeneratorService, trips *service.TripService) *TripHandler {
	return &TripHandler{generator: generator, trips: trips}
}

// HandleGenerate handles POST /api/v1/trips/generate requests. Generation
// never persists anything — the result is disposable until saved.
func (h *TripHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.generator.Generate(r.Context(), userID, req)
	if err != nil {
		writeJSON(w, generateErrorStatus(err), errorResponse(err.Error()))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleSaveTrip handles POST /api/v1/trips requests.
func (h *TripHandler) HandleSaveTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 5<<20) // 5MB, itineraries included

	var req model.SaveTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	trip, err := h.trips.Save(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDestinationRequired),
			errors.Is(err, service.ErrDaysInvalid),
			errors.Is(err, service.ErrItineraryRequired),
			errors.Is(err, service.ErrBudgetRange):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(trip))
}

// HandleListTrips handles GET /api/v1/trips requests.
func (h *TripHandler) HandleListTrips(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	trips, err := h.trips.List(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	resp := make([]model.TripResponse, len(trips))
	for i := range trips {
		resp[i] = tripToResponse(&trips[i])
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGetTrip handles GET /api/v1/trips/{trip_id} requests.
func (h *TripHandler) HandleGetTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	tripID, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	trip, err := h.trips.Get(r.Context(), userID, tripID)
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// HandleDeleteTrip handles DELETE /api/v1/trips/{trip_id} requests.
func (h *TripHandler) HandleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	tripID, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	if err := h.trips.Delete(r.Context(), userID, tripID); err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleActivateTrip handles PATCH /api/v1/trips/{trip_id}/activate requests.
func (h *TripHandler) HandleActivateTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	tripID, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	trip, err := h.trips.Activate(r.Context(), userID, tripID)
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// tripIDParam parses the {trip_id} path parameter, writing a 400 on failure.
func tripIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "trip_id"), 10, 64)
	if err != nil || id < 1 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid trip id"))
		return 0, false
	}
	return id, true
}

// generateErrorStatus maps generation-path failures to HTTP statuses:
// caller mistakes are 4xx, provider unavailability 503, provider quota 429,
// and everything the provider got wrong (including contract violations in its
// output) 502.
func generateErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrDestinationRequired),
		errors.Is(err, service.ErrDaysInvalid),
		errors.Is(err, service.ErrBudgetRange):
		return http.StatusBadRequest
	case errors.Is(err, genai.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, genai.ErrQuotaExceeded):
		return http.StatusTooManyRequests
	case errors.Is(err, itinerary.ErrMalformed),
		errors.Is(err, itinerary.ErrSchema),
		errors.Is(err, itinerary.ErrInvalid),
		errors.Is(err, genai.ErrGenerationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// tripToResponse converts a model.Trip into its API shape.
func tripToResponse(t *model.Trip) model.TripResponse {
	return model.TripResponse{
		ID:          t.ID,
		Destination: t.Destination,
		Days:        t.Days,
		BudgetMin:   t.BudgetMin,
		BudgetMax:   t.BudgetMax,
		BudgetLabel: t.BudgetLabel,
		Itinerary:   t.Itinerary,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
	}
}
