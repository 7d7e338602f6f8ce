package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nhea/awards-api/internal/container"
	"github.com/nhea/awards-api/internal/domain/repository"
	handlers "github.com/nhea/awards-api/internal/interface/http"
	"github.com/nhea/awards-api/internal/interface/middleware"
)

// VoteModule wires the cast path and the read side. Casting requires a
// verified email; analytics is admin-only.
type VoteModule struct {
	Handler *handlers.VoteHandler
	Users   repository.UserRepository
}

func NewVoteModule(h *handlers.VoteHandler, users repository.UserRepository) *VoteModule {
	return &VoteModule{Handler: h, Users: users}
}

func (m *VoteModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users, container.GetJWT()))
	auth.Use(middleware.RateLimit(rdb, 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/votes", middleware.RequireVerified(), m.Handler.Cast)
		auth.GET("/votes/me", middleware.RequireVerified(), m.Handler.MyVotes)
		auth.GET("/votes/analytics", middleware.RequireAdmin(), m.Handler.Analytics)
	}
}
