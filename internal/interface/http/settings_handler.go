package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nhea/awards-api/internal/domain/entity"
	"github.com/nhea/awards-api/internal/domain/repository"
	"github.com/nhea/awards-api/internal/interface/middleware"
	"github.com/nhea/awards-api/pkg/response"
	"github.com/nhea/awards-api/pkg/validation"
)

type SettingsHandler struct {
	Settings repository.SettingsRepository
	Audit    repository.AuditRepository
	Logger   *logrus.Logger
}

func NewSettingsHandler(settings repository.SettingsRepository, audit repository.AuditRepository, logger *logrus.Logger) *SettingsHandler {
	return &SettingsHandler{Settings: settings, Audit: audit, Logger: logger}
}

type updateSettingsRequest struct {
	VotingEnabled    *bool      `json:"voting_enabled"`
	VotingStartDate  *time.Time `json:"voting_start_date"`
	VotingEndDate    *time.Time `json:"voting_end_date"`
	ResultsAnnounced *bool      `json:"results_announced"`
}

// Get GET /api/settings (public; creates the default row lazily)
func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.Settings.GetOrCreate(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("get settings failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusOK, settingsView(s), "event settings", nil)
}

// Update PUT /api/settings (admin)
func (h *SettingsHandler) Update(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	s, err := h.Settings.Update(c.Request.Context(), repository.SettingsUpdate{
		VotingEnabled:    req.VotingEnabled,
		VotingStartDate:  req.VotingStartDate,
		VotingEndDate:    req.VotingEndDate,
		ResultsAnnounced: req.ResultsAnnounced,
	})
	if err != nil {
		h.Logger.WithError(err).Error("update settings failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	h.audit(c, "SETTINGS_UPDATED", map[string]any{
		"voting_enabled":    s.VotingEnabled,
		"results_announced": s.ResultsAnnounced,
	})
	response.Success(c, http.StatusOK, settingsView(s), "settings updated", nil)
}

// RevealWinners POST /api/settings/reveal-winners (admin)
func (h *SettingsHandler) RevealWinners(c *gin.Context) {
	announced := true
	s, err := h.Settings.Update(c.Request.Context(), repository.SettingsUpdate{ResultsAnnounced: &announced})
	if err != nil {
		h.Logger.WithError(err).Error("reveal winners failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	h.audit(c, "WINNERS_REVEALED", nil)
	response.Success(c, http.StatusOK, settingsView(s), "winners revealed successfully", nil)
}

func (h *SettingsHandler) audit(c *gin.Context, action string, details map[string]any) {
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
