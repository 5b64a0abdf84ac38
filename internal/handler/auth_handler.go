package handler

import (
	"net/http"
	"time"

	"github.com/Nathal25/LUMIX-BACKEND/internal/models"
	"github.com/Nathal25/LUMIX-BACKEND/internal/service"
)

// CookieOptions holds the attributes shared by cookie issuance and clearing.
// Logout must use the exact attributes of login or some user agents keep the
// stale cookie.
type CookieOptions struct {
	Secure   bool
	SameSite http.SameSite
}

type AuthHandler struct {
	svc    *service.AuthService
	cookie CookieOptions
}

func NewAuthHandler(svc *service.AuthService, cookie CookieOptions) *AuthHandler {
	return &AuthHandler{svc: svc, cookie: cookie}
}

type userResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:        u.ID.Hex(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Age:       u.Age,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

type registerRequest struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Age             int    `json:"age" validate:"required,gte=13"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param body body registerRequest true "profile and credentials"
// @Success 201 {object} userResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /users/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.svc.Register(r.Context(), service.RegisterUserData{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Age:             req.Age,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(u))
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// @Summary Login
// @Description Verifies credentials and sets the http-only session cookie.
// @Tags users
// @Accept json
// @Produce json
// @Param body body loginRequest true "credentials"
// @Success 200 {object} userResponse
// @Failure 401 {object} map[string]string
// @Router /users/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(token, int(service.TokenTTL.Seconds())))
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// @Summary Logout
// @Description Clears the session cookie with the same attributes it was set with.
// @Tags users
// @Success 200 {object} map[string]string
// @Router /users/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// @Summary Request a password reset
// @Description Always acknowledges, whether or not the email is registered.
// @Tags users
// @Accept json
// @Produce json
// @Param body body forgotPasswordRequest true "account email"
// @Success 202 {object} map[string]string
// @Router /users/forgot-password [post]
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.RequestPasswordReset(r.Context(), req.Email); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{
		"message": "if the email is registered, a reset link is on its way",
	})
}

type resetPasswordRequest struct {
	Email              string `json:"email" validate:"required,email"`
	Token              string `json:"token" validate:"required"`
	NewPassword        string `json:"newPassword" validate:"required"`
	ConfirmNewPassword string `json:"confirmNewPassword" validate:"required"`
}

// @Summary Reset the password with a token from the reset email
// @Tags users
// @Accept json
// @Produce json
// @Param body body resetPasswordRequest true "token and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /users/reset-password [post]
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	err := h.svc.ResetPassword(r.Context(), req.Email, req.Token, req.NewPassword, req.ConfirmNewPassword)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

// @Summary Current user profile
// @Tags users
// @Produce json
// @Success 200 {object} userResponse
// @Router /users/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetUser(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

type updateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Age       *int    `json:"age"`
}

// @Summary Update current user profile
// @Tags users
// @Accept json
// @Produce json
// @Param body body updateProfileRequest true "fields to update"
// @Success 200 {object} userResponse
// @Router /users/me [patch]
func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), UserIDFromContext(r.Context()), service.UpdateProfileData{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// @Summary Delete current user account
// @Tags users
// @Produce json
// @Success 200 {object} map[string]string
// @Router /users/me [delete]
func (h *AuthHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteUser(r.Context(), UserIDFromContext(r.Context())); err != nil {
		writeError(w, r, err)
		return
	}
	http.SetCookie(w, h.sessionCookie("", -1))
	writeJSON(w, http.StatusOK, map[string]string{"message": "account deleted"})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: h.cookie.SameSite,
	}
}
