package router

import (
	app "github.com/nhea/awards-api/internal/application"
	"github.com/nhea/awards-api/internal/container"
	pginfra "github.com/nhea/awards-api/internal/infrastructure/postgres"
	handlers "github.com/nhea/awards-api/internal/interface/http"
	"github.com/nhea/awards-api/internal/router/modules"
)

// InitModules builds every feature module from container singletons and adds
// it to the registry. Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	users := pginfra.NewUserRepository(pool)
	categories := pginfra.NewCategoryRepository(pool)
	nominations := pginfra.NewNominationRepository(pool)
	votes := pginfra.NewVoteRepository(pool)
	settings := pginfra.NewSettingsRepository(pool)
	rsvps := pginfra.NewRSVPRepository(pool)
	audit := pginfra.NewAuditRepository(pool)

	authSvc := app.NewAuthService(users, audit, container.GetRedis(), container.GetJWT(),
		container.GetRabbitPub(), logger, cfg.VerifyCodeTTL, cfg.MailSendEnabled)
	voteSvc := app.NewVoteService(votes, nominations, categories, settings, audit, logger)
	nomSvc := app.NewNominationService(nominations, categories, audit, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewAwardsModule(
		handlers.NewCategoryHandler(categories, audit, logger),
		handlers.NewNominationHandler(nomSvc, logger),
		users,
	))
	r.Add(modules.NewVoteModule(handlers.NewVoteHandler(voteSvc, logger), users))
	r.Add(modules.NewEventModule(
		handlers.NewSettingsHandler(settings, audit, logger),
		handlers.NewRSVPHandler(rsvps, audit, logger),
		handlers.NewAdminHandler(users, categories, nominations, votes, logger),
		users,
	))
}
