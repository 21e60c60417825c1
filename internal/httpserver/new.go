package httpserver

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/text/language"

	"challenge-admin/internal/errorhandler"
	"challenge-admin/pkg/encrypter"
	"challenge-admin/pkg/log"
	"challenge-admin/pkg/ratelimit"
	"challenge-admin/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Infrastructure
	db       *sql.DB
	registry *prometheus.Registry

	// Cross-cutting
	errHandler errorhandler.Handler
	jwtManager scope.Manager
	encrypter  encrypter.Encrypter

	// Auth domain
	loginLimiter *ratelimit.Limiter
	secureCookie bool
	admin        AdminAccount
}

// AdminAccount is the bootstrap ADMIN created on startup when Email is set.
type AdminAccount struct {
	Username string
	Email    string
	Password string
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	// TrustedProxies feed gin's ClientIP. Nil or empty trusts no proxy.
	TrustedProxies []string

	DB            *sql.DB
	JWTManager    scope.Manager
	Encrypter     encrypter.Encrypter
	DefaultLocale language.Tag

	LoginRateLimitPerMin int
	SecureCookie         bool
	Admin                AdminAccount
}

// New creates a new HTTPServer instance with its own metrics registry.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: shutdownTimeout,
		db:              cfg.DB,
		registry:        registry,
		jwtManager:      cfg.JWTManager,
		encrypter:       cfg.Encrypter,
		loginLimiter:    ratelimit.New(cfg.LoginRateLimitPerMin),
		secureCookie:    cfg.SecureCookie,
		admin:           cfg.Admin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	srv.errHandler = errorhandler.New(logger, errorhandler.Options{
		DefaultLocale: cfg.DefaultLocale,
		Registerer:    registry,
	})

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("db is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}
	return nil
}
