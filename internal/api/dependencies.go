package api

import (
	"crypto/rand"
	"fmt"
	"time"

	"campushub/internal/auth"
	"campushub/internal/common"
	"campushub/internal/config"
	"campushub/internal/db"
	"campushub/internal/db/repositories"
	"campushub/internal/logging"
	"campushub/internal/metrics"
	"campushub/internal/services"
	"campushub/internal/store"
	"campushub/internal/store/memory"

	"github.com/jmoiron/sqlx"
)

type Stores struct {
	Users         store.UserStore
	Clubs         store.ClubStore
	Events        store.EventStore
	Registrations store.RegistrationStore
}

type Services struct {
	Auth          *services.AuthService
	Directory     *services.DirectoryService
	Export        *services.ExportService
	Notifications *services.NotificationService
	Sessions      *common.SessionService
	Cache         common.CacheInterface
}

type Dependencies struct {
	Cfg      *config.Config
	Stores   *Stores
	Services *Services
	Tokens   *auth.TokenIssuer
	Metrics  *metrics.MetricsRegistry

	// SqlxDB is nil in fallback mode; the health check pings it when set.
	SqlxDB *sqlx.DB
}

// InitDependencies wires the whole object graph once at startup: store
// selection (Postgres vs in-memory fallback), cache selection (Redis vs
// process memory), then services on top. No per-call mode branching
// exists anywhere below this point.
func InitDependencies(cfg *config.Config, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	deps := &Dependencies{Cfg: cfg, Metrics: metricsReg}

	var cache common.CacheInterface
	if cfg.RedisConfigured() {
		cache = common.NewRedisCacheService(common.NewRedisClient(cfg))
		logging.Info("Cache backend selected", "backend", "redis")
	} else {
		cache = common.NewCacheService(5*time.Minute, 10*time.Minute)
		logging.Info("Cache backend selected", "backend", "memory")
	}

	stores, err := initStores(cfg, deps)
	if err != nil {
		return nil, err
	}
	deps.Stores = stores

	secret := []byte(cfg.SessionSecret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generate session secret: %w", err)
		}
		logging.Warn("SESSION_SECRET not set; sessions will not survive a restart")
	}
	deps.Tokens = auth.NewTokenIssuer(secret, cfg.SessionTTL)

	sessions := common.NewSessionService(cache, cfg.SessionTTL)
	directory := services.NewDirectoryService(
		stores.Clubs, stores.Events, stores.Registrations, stores.Users,
		cache, cfg.SnapshotTTL, metricsReg,
	)

	deps.Services = &Services{
		Auth:          services.NewAuthService(stores.Users, sessions, deps.Tokens, metricsReg),
		Directory:     directory,
		Export:        services.NewExportService(directory, metricsReg),
		Notifications: services.NewNotificationService(directory),
		Sessions:      sessions,
		Cache:         cache,
	}

	return deps, nil
}

func initStores(cfg *config.Config, deps *Dependencies) (*Stores, error) {
	if !cfg.DatabaseConfigured() {
		logging.Warn("PG_HOST not set; running in fallback mode with seeded in-memory data")
		mem := memory.NewSeededStore()
		return &Stores{
			Users:         mem,
			Clubs:         mem,
			Events:        mem,
			Registrations: mem,
		}, nil
	}

	dsn := cfg.DSN()

	sqlxDB, err := db.InitPostgres(dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres (sqlx): %w", err)
	}
	deps.SqlxDB = sqlxDB

	gormDB, err := db.InitPostgresORM(dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres (gorm): %w", err)
	}

	logging.Info("Connected to Postgres", "host", cfg.PGHost, "database", cfg.PGDatabase)
	return &Stores{
		Users:         repositories.NewUserRepository(sqlxDB),
		Clubs:         repositories.NewClubRepository(gormDB),
		Events:        repositories.NewEventRepository(gormDB),
		Registrations: repositories.NewRegistrationRepository(gormDB),
	}, nil
}
