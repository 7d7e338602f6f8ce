package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nhea/awards-api/internal/container"
	handlers "github.com/nhea/awards-api/internal/interface/http"
	"github.com/nhea/awards-api/internal/interface/middleware"
)

// AuthModule wires the public signup/verify/signin endpoints. All are
// rate-limited per IP; signup and resend get the tightest budget since each
// can trigger an outbound email.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()
	signupLimiter := middleware.RateLimit(rdb, 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	verifyLimiter := middleware.RateLimit(rdb, 30, time.Minute, middleware.KeyByIPAndPath(), nil)
	signinLimiter := middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.POST("/auth/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/auth/verify-email", verifyLimiter, m.Handler.VerifyEmail)
	rg.POST("/auth/resend-code", signupLimiter, m.Handler.ResendCode)
	rg.POST("/auth/signin", signinLimiter, m.Handler.Signin)
}
