// internal/app/server.go
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"bankops-service/internal/config"
	"bankops-service/internal/db"
	accountHandler "bankops-service/internal/handlers/account"
	cardHandler "bankops-service/internal/handlers/card"
	customerHandler "bankops-service/internal/handlers/customer"
	supportHandler "bankops-service/internal/handlers/support"
	"bankops-service/internal/middleware"
	"bankops-service/internal/pkg/logger"
	"bankops-service/internal/pkg/password"
	"bankops-service/internal/pkg/ratelimit"
	"bankops-service/internal/repository"
	"bankops-service/internal/repository/memory"
	"bankops-service/internal/repository/postgres"
	accountsvc "bankops-service/internal/service/account"
	cardsvc "bankops-service/internal/service/card"
	customersvc "bankops-service/internal/service/customer"
	supportsvc "bankops-service/internal/service/support"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	http   *http.Server

	pool  *pgxpool.Pool
	redis *redis.Client
}

func NewServer(cfg config.AppConfig, logger *zap.Logger) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	return &Server{cfg: cfg, engine: gin.New(), logger: logger}
}

func NewLogger(cfg config.AppConfig) (*zap.Logger, error) {
	log, err := logger.New(logger.Options{
		Production: cfg.IsProduction(),
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
	})
	if err != nil {
		return nil, err
	}
	return log.With(logger.Hostname(), zap.String("env", cfg.Env)), nil
}

// storage bundles the repositories behind one unit-of-work provider.
type storage struct {
	tx        repository.Transactor
	customers customersvc.Repository
	accounts  accountsvc.Repository
	cards     cardsvc.Repository
	tickets   supportsvc.Repository
}

func (s *Server) openStorage(ctx context.Context) (*storage, error) {
	switch s.cfg.StorageDriver {
	case "memory":
		s.logger.Warn("using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		return &storage{
			tx:        store,
			customers: store.Customers(),
			accounts:  store.Accounts(),
			cards:     store.Cards(),
			tickets:   store.Tickets(),
		}, nil

	case "postgres":
		pool, err := db.ConnectDB(ctx, db.PostgresConfig{URL: s.cfg.DatabaseURL, MaxConns: s.cfg.DBMaxConns})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		s.pool = pool
		s.logger.Info("connected to PostgreSQL")

		if s.cfg.DBAutoMigrate {
			if err := db.Migrate(ctx, pool); err != nil {
				return nil, err
			}
			s.logger.Info("database schema applied")
		}

		pg := postgres.NewDB(pool)
		return &storage{
			tx:        pg,
			customers: postgres.NewCustomerRepository(pg),
			accounts:  postgres.NewDepositAccountRepository(pg),
			cards:     postgres.NewCardRepository(pg),
			tickets:   postgres.NewSupportTicketRepository(pg),
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", s.cfg.StorageDriver)
	}
}

func (s *Server) openLimiter(ctx context.Context) ratelimit.Limiter {
	if !s.cfg.RedisEnabled {
		return nil
	}

	client, err := db.NewRedisClient(ctx, db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       s.cfg.RedisDB,
		PoolSize: 10,
	})
	if err != nil {
		// Lockout is optional; logins still work without it.
		s.logger.Warn("redis unavailable, failed-login lockout disabled", zap.Error(err))
		return nil
	}
	s.redis = client
	s.logger.Info("connected to Redis", zap.String("addr", s.cfg.RedisAddr))

	return ratelimit.NewRedisLimiter(client, s.cfg.LoginMaxAttempts, s.cfg.LoginLockWindow)
}

// Setup opens storage and wires services, handlers and routes.
func (s *Server) Setup(ctx context.Context) error {
	store, err := s.openStorage(ctx)
	if err != nil {
		return err
	}
	limiter := s.openLimiter(ctx)

	// ----- Services -----
	customerService := customersvc.NewCustomerService(
		store.customers,
		store.tx,
		password.NewBcryptHasher(s.cfg.BcryptCost),
		limiter,
		s.logger,
	)
	accountService := accountsvc.NewAccountService(store.accounts, customerService, store.tx, s.logger)
	cardService := cardsvc.NewCardService(store.cards, customerService, accountService, store.tx, s.logger)
	supportService := supportsvc.NewSupportService(store.tickets, customerService, store.tx, s.logger)

	// ----- Middlewares -----
	s.engine.Use(
		middleware.LoggingMiddleware(s.logger),
		middleware.RecoveryMiddleware(s.logger),
		middleware.CORSMiddleware(s.cfg.AllowedOrigins),
	)

	// ----- Router -----
	SetupRouter(s.engine, s.logger, &Handlers{
		CustomerHandler: customerHandler.NewCustomerHandler(customerService),
		AccountHandler:  accountHandler.NewAccountHandler(accountService),
		CardHandler:     cardHandler.NewCardHandler(cardService),
		SupportHandler:  supportHandler.NewSupportHandler(supportService),
	})

	s.http = &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}
	return nil
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	if s.http == nil {
		return errors.New("server not set up")
	}
	s.logger.Info("server running", zap.String("addr", s.cfg.HTTPAddr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests, then releases Redis and the pool.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	if s.http != nil {
		err = s.http.Shutdown(ctx)
	}
	if s.redis != nil {
		if cerr := s.redis.Close(); cerr != nil {
			s.logger.Warn("failed to close redis client", zap.Error(cerr))
		}
	}
	if s.pool != nil {
		s.pool.Close()
	}
	return err
}

// Engine exposes the router, for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
