package inspect

import (
	"time"

	"github.com/danmuck/wiregen/internal/schema"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Config carries everything the inspector needs to come up.
type Config struct {
	Name        string
	Addr        string
	CorsOrigins []string
}

// Server serves read-only views over a set of loaded protocol documents.
type Server struct {
	cfg      Config
	router   *gin.Engine
	appeared time.Time

	protocols []*schema.Protocol
	index     map[string]*schema.Protocol
}

// New builds an inspector over the given protocols and registers its routes.
func New(cfg Config, protocols []*schema.Protocol) *Server {
	RegisterMetrics()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log.Logger))
	r.Use(RequestMetrics(cfg.Name))
	r.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(cfg.CorsOrigins),
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	index := make(map[string]*schema.Protocol, len(protocols))
	for _, p := range protocols {
		index[p.Name] = p
	}

	s := &Server{
		cfg:       cfg,
		router:    r,
		appeared:  time.Now(),
		protocols: protocols,
		index:     index,
	}
	s.registerRoutes()
	protocolsServed.Set(float64(len(protocols)))
	return s
}

// Router exposes the underlying engine for tests and embedding.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Serve blocks on the configured listen address.
func (s *Server) Serve() error {
	log.Info().
		Str("server", s.cfg.Name).
		Str("addr", s.cfg.Addr).
		Int("protocols", len(s.protocols)).
		Msg("inspector serving")
	return s.router.Run(s.cfg.Addr)
}

func normalizeOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}
