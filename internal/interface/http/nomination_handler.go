package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	app "github.com/nhea/awards-api/internal/application"
	repo "github.com/nhea/awards-api/internal/domain/repository"
	"github.com/nhea/awards-api/internal/interface/middleware"
	"github.com/nhea/awards-api/pkg/response"
	"github.com/nhea/awards-api/pkg/validation"
)

type NominationHandler struct {
	Svc    *app.NominationService
	Logger *logrus.Logger
}

func NewNominationHandler(svc *app.NominationService, logger *logrus.Logger) *NominationHandler {
	return &NominationHandler{Svc: svc, Logger: logger}
}

type submitNominationRequest struct {
	CategoryID   string `json:"category_id" binding:"required,uuid"`
	NomineeName  string `json:"nominee_name" binding:"required,max=150"`
	NomineeEmail string `json:"nominee_email" binding:"required,email"`
	Organization string `json:"organization" binding:"max=200"`
	Reason       string `json:"reason" binding:"required,reason"`
}

type reviewNominationRequest struct {
	Status string `json:"status" binding:"required"`
}

// Submit POST /api/nominations (verified users)
func (h *NominationHandler) Submit(c *gin.Context) {
	var req submitNominationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)

	n, err := h.Svc.Submit(c.Request.Context(), uid, app.SubmitNominationInput{
		CategoryID:   req.CategoryID,
		NomineeName:  req.NomineeName,
		NomineeEmail: req.NomineeEmail,
		Organization: req.Organization,
		Reason:       req.Reason,
	}, clientIP(c))
	if err != nil {
		if errors.Is(err, app.ErrCategoryNotFound) {
			response.Error[any](c, http.StatusNotFound, "category not found", nil)
			return
		}
		h.Logger.WithError(err).Error("submit nomination failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusCreated, nominationView(n), "nomination submitted", nil)
}

// List GET /api/nominations?status=&category_id= (authenticated)
func (h *NominationHandler) List(c *gin.Context) {
	u := middleware.UserFrom(c)
	if u == nil {
		response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	f := repo.NominationFilter{
		Status:     strings.ToUpper(c.Query("status")),
		CategoryID: c.Query("category_id"),
	}
	noms, err := h.Svc.List(c.Request.Context(), u, f)
	if err != nil {
		h.Logger.WithError(err).Error("list nominations failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	views := make([]gin.H, 0, len(noms))
	for i := range noms {
		views = append(views, nominationView(&noms[i]))
	}
	response.Success(c, http.StatusOK, views, "nominations", nil)
}

// Review PATCH /api/nominations/:id/review (admin)
func (h *NominationHandler) Review(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid nomination id", nil)
		return
	}
	var req reviewNominationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)

	n, err := h.Svc.Review(c.Request.Context(), uid, id, strings.ToUpper(req.Status), clientIP(c))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidStatus):
			response.Error[any](c, http.StatusBadRequest, "invalid status", nil)
		case errors.Is(err, repo.ErrNotFound):
			response.Error[any](c, http.StatusNotFound, "nomination not found", nil)
		default:
			h.Logger.WithError(err).Error("review nomination failed")
			response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, nominationView(n), "nomination reviewed", nil)
}
