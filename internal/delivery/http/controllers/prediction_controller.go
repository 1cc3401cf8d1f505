package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "eventease/internal/delivery/http/helpers"
	"eventease/internal/domain"
)

// PredictionRequest is the request body for POST /prediction.
type PredictionRequest struct {
	PromptText string `json:"promptText"`
}

// Validate implements Validator.
func (p PredictionRequest) Validate() []string {
	if p.PromptText == "" {
		return []string{"promptText is required"}
	}
	return nil
}

type PredictionController struct {
	Logger *slog.Logger
	Client domain.PredictionClient
}

func NewPredictionController(logger *slog.Logger, client domain.PredictionClient) *PredictionController {
	return &PredictionController{
		Logger: logger,
		Client: client,
	}
}

// Predict godoc
// @Summary Attendance prediction
// @Description Forwards the prompt to the generative-language API and returns the JSON object extracted from its answer verbatim.
// @Tags prediction
// @Accept json
// @Produce json
// @Param body body PredictionRequest true "Prompt"
// @Success 200 {object} object
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /prediction [post]
func (c *PredictionController) Predict(w http.ResponseWriter, r *http.Request) {
	var req PredictionRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}

	result, err := c.Client.Predict(r.Context(), req.PromptText)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoJSONFound):
			h.WriteJSONError(w, http.StatusInternalServerError, "AI did not return valid JSON")
		case errors.Is(err, domain.ErrUpstream):
			c.Logger.ErrorContext(r.Context(), "prediction upstream failed", "err", err)
			h.WriteJSONError(w, http.StatusInternalServerError, "prediction request failed")
		default:
			c.Logger.ErrorContext(r.Context(), "prediction failed", "err", err)
			h.WriteJSONError(w, http.StatusInternalServerError, "prediction request failed")
		}
		return
	}
	h.WriteRawJSON(w, http.StatusOK, result)
}
