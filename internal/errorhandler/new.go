package errorhandler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/language"

	"challenge-admin/pkg/i18n"
	"challenge-admin/pkg/log"
)

// Handler converts errors into JSON error responses.
type Handler interface {
	// Handle renders err on c unless a response was already written.
	Handle(c *gin.Context, err error)
	// Resolve maps err to its response without touching a request.
	Resolve(err error, tag language.Tag) Problem
	// Middleware renders the last error attached with c.Error after the chain ran.
	Middleware() gin.HandlerFunc
	// Recovery turns panics into the internal-error response.
	Recovery() gin.HandlerFunc
	NoRoute(c *gin.Context)
	NoMethod(c *gin.Context)
}

// Options configures New.
type Options struct {
	// DefaultLocale is used when the request names no supported locale.
	DefaultLocale language.Tag
	// Registerer receives the error counter. Nil means the default registry.
	Registerer prometheus.Registerer
}

type handler struct {
	l             log.Logger
	defaultLocale language.Tag
	metrics       *metrics
}

// New creates a Handler.
func New(l log.Logger, opt Options) Handler {
	if opt.DefaultLocale == language.Und {
		opt.DefaultLocale = i18n.Korean
	}
	if opt.Registerer == nil {
		opt.Registerer = prometheus.DefaultRegisterer
	}
	return &handler{
		l:             l,
		defaultLocale: opt.DefaultLocale,
		metrics:       newMetrics(opt.Registerer),
	}
}
