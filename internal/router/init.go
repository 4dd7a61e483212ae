package router

import (
	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/sharely/sharely/config"
	"github.com/sharely/sharely/internal/application"
	"github.com/sharely/sharely/internal/infrastructure/email"
	"github.com/sharely/sharely/internal/infrastructure/postgres"
	handlers "github.com/sharely/sharely/internal/interface/http"
	"github.com/sharely/sharely/internal/router/modules"
	"github.com/sharely/sharely/pkg/helpers"
)

// Deps collects the process-wide clients the modules are built from.
// Everything is constructed explicitly here so the dependency graph is
// readable top to bottom.
type Deps struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	Pool   *pgxpool.Pool
	RDB    *redis.Client
	Auth   application.AuthService
	Pub    *helpers.RabbitPublisher
	ES     *elasticsearch.Client
	GCS    *storage.Client
}

// InitModules builds repositories, services and handlers, then registers
// every feature module on the registry.
func InitModules(r *Registry, d Deps) {
	userRepo := postgres.NewUserRepository(d.Pool)
	shareRepo := postgres.NewShareRepository(d.Pool)

	verifier := email.NewVerificationService(userRepo, d.Pub, d.Cfg.AppBaseURL, d.Cfg.MailSendEnabled, d.Logger)

	userSvc := application.NewUserService(userRepo, d.Auth, verifier, d.Logger)
	shareSvc := application.NewShareService(shareRepo, d.Logger, d.ES, d.Cfg.ESSharesIndex, d.GCS, d.Cfg.GCSBucket)

	authHandler := handlers.NewAuthHandler(userSvc, userRepo, d.Auth, d.Logger)
	passwordHandler := handlers.NewPasswordHandler(userSvc, userRepo, d.RDB, d.Pub, d.Cfg, d.Logger)
	userHandler := handlers.NewUserHandler(userSvc, d.Logger)
	shareHandler := handlers.NewShareHandler(shareSvc, d.Logger)
	emailHandler := handlers.NewEmailHandler(userRepo, verifier, d.Logger)

	r.Add(modules.NewAuthModule(authHandler, passwordHandler, d.Auth, d.RDB))
	r.Add(modules.NewUserModule(userHandler, d.Auth, d.RDB))
	r.Add(modules.NewShareModule(shareHandler, d.Auth, d.RDB))
	r.Add(modules.NewEmailModule(emailHandler, d.RDB))

	r.RegisterAll()
}
