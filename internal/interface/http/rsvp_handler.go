package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nhea/awards-api/internal/domain/entity"
	"github.com/nhea/awards-api/internal/domain/repository"
	"github.com/nhea/awards-api/internal/interface/middleware"
	"github.com/nhea/awards-api/pkg/response"
	"github.com/nhea/awards-api/pkg/validation"
)

type RSVPHandler struct {
	RSVPs  repository.RSVPRepository
	Audit  repository.AuditRepository
	Logger *logrus.Logger
}

func NewRSVPHandler(rsvps repository.RSVPRepository, audit repository.AuditRepository, logger *logrus.Logger) *RSVPHandler {
	return &RSVPHandler{RSVPs: rsvps, Audit: audit, Logger: logger}
}

type rsvpRequest struct {
	Attending      *bool `json:"attending" binding:"required"`
	NumberOfGuests int   `json:"number_of_guests" binding:"gte=0,lte=10"`
}

// Upsert POST /api/rsvp (verified users). Creates or updates in place.
func (h *RSVPHandler) Upsert(c *gin.Context) {
	var req rsvpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)

	rv := &entity.RSVP{
		UserID:         uid,
		Attending:      *req.Attending,
		NumberOfGuests: req.NumberOfGuests,
	}
	if err := h.RSVPs.Upsert(c.Request.Context(), rv); err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("rsvp upsert failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	h.audit(c, "RSVP_SUBMITTED", map[string]any{"attending": rv.Attending, "guests": rv.NumberOfGuests})
	response.Success(c, http.StatusOK, rv, "rsvp recorded", nil)
}

// Me GET /api/rsvp/me (verified users)
func (h *RSVPHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	rv, err := h.RSVPs.GetByUser(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Success[any](c, http.StatusOK, nil, "no rsvp yet", nil)
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("get rsvp failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusOK, rv, "rsvp", nil)
}

// Stats GET /api/rsvp/stats (admin)
func (h *RSVPHandler) Stats(c *gin.Context) {
	st, err := h.RSVPs.Stats(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("rsvp stats failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusOK, st, "rsvp stats", nil)
}

func (h *RSVPHandler) audit(c *gin.Context, action string, details map[string]any) {
	if h.Audit == nil {
		return
	}
	err := h.Audit.Insert(c.Request.Context(), &entity.AuditEntry{
		UserID:    c.GetString(middleware.CtxUserIDKey),
		Action:    action,
		Details:   details,
		IPAddress: clientIP(c),
	})
	if err != nil && h.Logger != nil {
		h.Logger.WithError(err).WithField("action", action).Warn("audit insert failed")
	}
}
