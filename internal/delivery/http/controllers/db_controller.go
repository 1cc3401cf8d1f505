package controllers

import (
	"log/slog"
	"net/http"

	h "eventease/internal/delivery/http/helpers"
	"eventease/internal/delivery/http/middleware"
	"eventease/internal/domain"
)

// SyncRequest is the request body for POST /db. Only the collections
// present in the body are written; an absent field leaves that
// collection as stored.
type SyncRequest struct {
	UserID       string               `json:"userId"`
	Events       []domain.Event       `json:"events"`
	Participants []domain.Participant `json:"participants"`
}

// SuccessResponse is the body for writes that have nothing to return.
type SuccessResponse struct {
	Success bool `json:"success"`
}

type DBController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewDBController(logger *slog.Logger, svc domain.EventService) *DBController {
	return &DBController{
		Logger:  logger,
		Service: svc,
	}
}

// callerID resolves the acting user: a verified bearer token wins,
// otherwise the explicit userId the dashboard passes.
func callerID(r *http.Request, explicit string) string {
	if id, ok := middleware.UserIDFromContext(r.Context()); ok && id != "" {
		return id
	}
	return explicit
}

// Load godoc
// @Summary Load events and participants
// @Description Returns the caller's collections. Without a userId (query param or bearer token) both arrays are empty.
// @Tags db
// @Produce json
// @Param userId query string false "User ID"
// @Success 200 {object} domain.Collections
// @Failure 500 {object} helpers.ErrorResponse
// @Router /db [get]
func (c *DBController) Load(w http.ResponseWriter, r *http.Request) {
	userID := callerID(r, r.URL.Query().Get("userId"))
	if userID == "" {
		h.WriteJSON(w, http.StatusOK, domain.Collections{
			Events:       []domain.Event{},
			Participants: []domain.Participant{},
		})
		return
	}

	cols, err := c.Service.Load(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "load failed", "userId", userID, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, "failed to load data")
		return
	}
	h.WriteJSON(w, http.StatusOK, cols)
}

// Sync godoc
// @Summary Persist events and participants
// @Description Writes the provided collections for the caller. Only fields present in the body are written.
// @Tags db
// @Accept json
// @Produce json
// @Param body body SyncRequest true "Collections to store"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /db [post]
func (c *DBController) Sync(w http.ResponseWriter, r *http.Request) {
	var req SyncRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	userID := callerID(r, req.UserID)
	if userID == "" {
		h.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := c.Service.Sync(r.Context(), userID, req.Events, req.Participants); err != nil {
		h.WriteJSONError(w, http.StatusInternalServerError, "failed to store data")
		return
	}
	h.WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
