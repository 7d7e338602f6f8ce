package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/nhea/awards-api/internal/application"
	"github.com/nhea/awards-api/pkg/response"
	"github.com/nhea/awards-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *app.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *app.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type verifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

type resendCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type signinRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Signup(c.Request.Context(), req.Name, req.Email, req.Password, clientIP(c))
	if err != nil {
		if errors.Is(err, app.ErrEmailTaken) {
			response.Error[any](c, http.StatusBadRequest, "email already registered", nil)
			return
		}
		h.Logger.WithError(err).Error("signup failed")
		response.Error[any](c, http.StatusInternalServerError, "server error during signup", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"user_id": u.ID,
		"email":   u.Email,
	}, "user created, check your email for the verification code", nil)
}

// VerifyEmail POST /api/auth/verify-email
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req verifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, token, err := h.Svc.VerifyEmail(c.Request.Context(), req.Email, req.Code, clientIP(c))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUserNotFound):
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
		case errors.Is(err, app.ErrAlreadyVerified):
			response.Error[any](c, http.StatusBadRequest, "email already verified", nil)
		case errors.Is(err, app.ErrInvalidCode):
			response.Error[any](c, http.StatusBadRequest, "invalid or expired verification code", nil)
		default:
			h.Logger.WithError(err).Error("verify email failed")
			response.Error[any](c, http.StatusInternalServerError, "server error during verification", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"user":  userView(u),
	}, "email verified", nil)
}

// ResendCode POST /api/auth/resend-code
func (h *AuthHandler) ResendCode(c *gin.Context) {
	var req resendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ResendCode(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, app.ErrUserNotFound):
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
		case errors.Is(err, app.ErrAlreadyVerified):
			response.Error[any](c, http.StatusBadRequest, "email already verified", nil)
		default:
			h.Logger.WithError(err).Error("resend code failed")
			response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		}
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"resent": true}, "verification code resent", nil)
}

// Signin POST /api/auth/signin
func (h *AuthHandler) Signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, token, err := h.Svc.Signin(c.Request.Context(), req.Email, req.Password, clientIP(c))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidCredentials):
			response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
		case errors.Is(err, app.ErrEmailNotVerified):
			response.Error[any](c, http.StatusForbidden, "please verify your email first", nil)
		default:
			h.Logger.WithError(err).Error("signin failed")
			response.Error[any](c, http.StatusInternalServerError, "server error during signin", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"user":  userView(u),
	}, "signed in", nil)
}
