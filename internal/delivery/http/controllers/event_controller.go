package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "eventease/internal/delivery/http/helpers"
	"eventease/internal/delivery/http/middleware"
	"eventease/internal/domain"
)

// Per-row routes for the dashboard. They are bearer-authenticated and
// operate on the caller's own collections; under the hood each one is
// still a load-mutate-store cycle over the same blobs /db uses.

// EventRequest is the request body for POST /events and PUT /events/{id}.
type EventRequest struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Location string `json:"location"`
	Capacity string `json:"capacity"`
}

// Validate implements Validator.
func (e EventRequest) Validate() []string {
	if e.Title == "" {
		return []string{"title is required"}
	}
	return nil
}

// ParticipantRequest is the request body for POST /participants.
type ParticipantRequest struct {
	ID      string `json:"id"`
	EventID string `json:"eventId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Dept    string `json:"dept"`
}

// Validate implements Validator.
func (p ParticipantRequest) Validate() []string {
	var errs []string
	if p.EventID == "" {
		errs = append(errs, "eventId is required")
	}
	if p.Name == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// EventResponse wraps a stored event.
type EventResponse struct {
	Success bool          `json:"success"`
	Event   *domain.Event `json:"event"`
}

// ParticipantResponse wraps a stored participant.
type ParticipantResponse struct {
	Success     bool                `json:"success"`
	Participant *domain.Participant `json:"participant"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *EventController) mustUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok || userID == "" {
		h.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	return userID, true
}

// Create godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body EventRequest true "Event"
// @Success 201 {object} EventResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Router /events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := c.mustUserID(w, r)
	if !ok {
		return
	}
	var req EventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	event := &domain.Event{
		ID:       req.ID,
		Title:    req.Title,
		Date:     req.Date,
		Location: req.Location,
		Capacity: req.Capacity,
	}
	if err := c.Service.CreateEvent(r.Context(), userID, event); err != nil {
		c.Logger.ErrorContext(r.Context(), "create event failed", "userId", userID, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, "failed to store event")
		return
	}
	h.WriteJSON(w, http.StatusCreated, EventResponse{Success: true, Event: event})
}

// Update godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param body body EventRequest true "Event"
// @Success 200 {object} EventResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Router /events/{id} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := c.mustUserID(w, r)
	if !ok {
		return
	}
	var req EventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	event := &domain.Event{
		ID:       r.PathValue("id"),
		Title:    req.Title,
		Date:     req.Date,
		Location: req.Location,
		Capacity: req.Capacity,
	}
	if err := c.Service.UpdateEvent(r.Context(), userID, event); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "update event failed", "userId", userID, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, "failed to store event")
		return
	}
	h.WriteJSON(w, http.StatusOK, EventResponse{Success: true, Event: event})
}

// Delete godoc
// @Summary Delete an event
// @Description Removes the event. Its participants are left in place.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Router /events/{id} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := c.mustUserID(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), userID, r.PathValue("id")); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "delete event failed", "userId", userID, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, "failed to store events")
		return
	}
	h.WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// Register godoc
// @Summary Register a participant
// @Description Stores the participant with status REGISTERED and sends a confirmation email when an address is given.
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ParticipantRequest true "Participant"
// @Success 201 {object} ParticipantResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Router /participants [post]
func (c *EventController) Register(w http.ResponseWriter, r *http.Request) {
	userID, ok := c.mustUserID(w, r)
	if !ok {
		return
	}
	var req ParticipantRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	p := &domain.Participant{
		ID:      req.ID,
		EventID: req.EventID,
		Name:    req.Name,
		Email:   req.Email,
		Dept:    req.Dept,
	}
	if err := c.Service.RegisterParticipant(r.Context(), userID, p); err != nil {
		c.Logger.ErrorContext(r.Context(), "register participant failed", "userId", userID, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, "failed to store participant")
		return
	}
	h.WriteJSON(w, http.StatusCreated, ParticipantResponse{Success: true, Participant: p})
}

// CheckIn godoc
// @Summary Check a participant in
// @Description Transitions status to CHECKED_IN. Repeating the call is a no-op.
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param id path string true "Participant ID"
// @Success 200 {object} ParticipantResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Router /participants/{id}/checkin [post]
func (c *EventController) CheckIn(w http.ResponseWriter, r *http.Request) {
	userID, ok := c.mustUserID(w, r)
	if !ok {
		return
	}
	p, err := c.Service.CheckIn(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrParticipantNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, "participant not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "check-in failed", "userId", userID, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, "failed to store participant")
		return
	}
	h.WriteJSON(w, http.StatusOK, ParticipantResponse{Success: true, Participant: p})
}
