package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nhea/awards-api/internal/container"
	"github.com/nhea/awards-api/internal/domain/repository"
	handlers "github.com/nhea/awards-api/internal/interface/http"
	"github.com/nhea/awards-api/internal/interface/middleware"
)

// AwardsModule wires categories and nominations.
// Public: GET /api/categories
// Authenticated: GET /api/nominations; POST requires a verified email.
// Admin: category mutations and nomination review.
type AwardsModule struct {
	Categories  *handlers.CategoryHandler
	Nominations *handlers.NominationHandler
	Users       repository.UserRepository
}

func NewAwardsModule(cats *handlers.CategoryHandler, noms *handlers.NominationHandler, users repository.UserRepository) *AwardsModule {
	return &AwardsModule{Categories: cats, Nominations: noms, Users: users}
}

func (m *AwardsModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()
	publicLimiter := middleware.RateLimit(rdb, 120, time.Minute, middleware.KeyByIP(), nil)

	rg.GET("/categories", publicLimiter, m.Categories.List)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users, container.GetJWT()))
	auth.Use(middleware.RateLimit(rdb, 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/nominations", m.Nominations.List)
		auth.POST("/nominations", middleware.RequireVerified(), m.Nominations.Submit)

		admin := auth.Group("/")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/categories", m.Categories.Create)
			admin.PUT("/categories/:id", m.Categories.Update)
			admin.PATCH("/nominations/:id/review", m.Nominations.Review)
		}
	}
}
