package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nhea/awards-api/internal/container"
	"github.com/nhea/awards-api/internal/domain/repository"
	handlers "github.com/nhea/awards-api/internal/interface/http"
	"github.com/nhea/awards-api/internal/interface/middleware"
)

// EventModule wires event settings, RSVP, and the admin dashboard.
type EventModule struct {
	Settings *handlers.SettingsHandler
	RSVP     *handlers.RSVPHandler
	Admin    *handlers.AdminHandler
	Users    repository.UserRepository
}

func NewEventModule(settings *handlers.SettingsHandler, rsvp *handlers.RSVPHandler,
	admin *handlers.AdminHandler, users repository.UserRepository) *EventModule {
	return &EventModule{Settings: settings, RSVP: rsvp, Admin: admin, Users: users}
}

func (m *EventModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()
	publicLimiter := middleware.RateLimit(rdb, 120, time.Minute, middleware.KeyByIP(), nil)

	rg.GET("/settings", publicLimiter, m.Settings.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users, container.GetJWT()))
	auth.Use(middleware.RateLimit(rdb, 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/rsvp", middleware.RequireVerified(), m.RSVP.Upsert)
		auth.GET("/rsvp/me", middleware.RequireVerified(), m.RSVP.Me)

		admin := auth.Group("/")
		admin.Use(middleware.RequireAdmin())
		{
			admin.PUT("/settings", m.Settings.Update)
			admin.POST("/settings/reveal-winners", m.Settings.RevealWinners)
			admin.GET("/rsvp/stats", m.RSVP.Stats)
			admin.GET("/admin/dashboard-stats", m.Admin.DashboardStats)
		}
	}
}
