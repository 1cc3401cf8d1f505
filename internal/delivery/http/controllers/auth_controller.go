package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "eventease/internal/delivery/http/helpers"
	"eventease/internal/domain"
	"eventease/internal/services"
)

// AuthRequest is the request body for POST /auth. Action selects
// between "signup" and "login"; anything else is treated as login,
// which is what the dashboard sends.
type AuthRequest struct {
	Action   string `json:"action"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Validate implements Validator.
func (a AuthRequest) Validate() []string {
	var errs []string
	if a.Email == "" {
		errs = append(errs, "email is required")
	}
	if a.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// AuthResponse is the response body for POST /auth.
type AuthResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
	Token   string       `json:"token,omitempty"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Handle godoc
// @Summary Sign up or log in
// @Description Action "signup" creates an account; any other action logs in. Login returns a bearer token alongside the public user record.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body AuthRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /auth [post]
func (c *AuthController) Handle(w http.ResponseWriter, r *http.Request) {
	var req AuthRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}

	if req.Action == "signup" {
		user, err := c.Service.SignUp(r.Context(), req.Email, req.Password, req.Name)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrDuplicateEmail):
				h.WriteJSONError(w, http.StatusBadRequest, "Account already exists")
			case errors.Is(err, services.ErrValidation):
				h.WriteJSONError(w, http.StatusBadRequest, err.Error())
			default:
				c.Logger.ErrorContext(r.Context(), "signup failed", "err", err)
				h.WriteJSONError(w, http.StatusInternalServerError, "signup failed")
			}
			return
		}
		h.WriteJSON(w, http.StatusOK, AuthResponse{Success: true, User: user})
		return
	}

	user, token, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrInvalidCredentials):
			h.WriteJSONError(w, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, services.ErrValidation):
			h.WriteJSONError(w, http.StatusBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "login failed", "err", err)
			h.WriteJSONError(w, http.StatusInternalServerError, "login failed")
		}
		return
	}
	h.WriteJSON(w, http.StatusOK, AuthResponse{Success: true, User: user, Token: token})
}
