// Package api assembles the HTTP server: infrastructure clients, middleware
// chain and routes.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ticketfoot/internal/cache"
	"ticketfoot/internal/config"
	"ticketfoot/internal/database"
	"ticketfoot/internal/handlers"
	"ticketfoot/internal/logger"
	"ticketfoot/internal/messaging"
	"ticketfoot/internal/middleware"
	"ticketfoot/internal/repository"
	"ticketfoot/internal/search"
	"ticketfoot/internal/service"
)

type Server struct {
	config   *config.Config
	router   *gin.Engine
	db       *database.DB
	nats     *messaging.NATSClient
	es       *search.ElasticsearchClient
	valkey   *cache.ValkeyClient
	handlers *handlers.Handlers
}

// NewServer connects the infrastructure and wires routes. Postgres is
// required; NATS, Elasticsearch and Valkey are optional and their features
// degrade when absent.
func NewServer(cfg *config.Config) (*Server, error) {
	gin.SetMode(cfg.GinMode)
	gin.EnableJsonDecoderDisallowUnknownFields()

	log := logger.Get()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, err
	}

	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		log.Warn("NATS unavailable, confirmation emails disabled", "error", err)
		natsClient = nil
	}

	var esClient *search.ElasticsearchClient
	if cfg.Search.Enabled {
		esClient, err = search.NewElasticsearchClient(cfg.Search)
		if err != nil {
			log.Warn("Elasticsearch unavailable, search falls back to SQL", "error", err)
			esClient = nil
		}
	}

	var valkeyClient *cache.ValkeyClient
	if cfg.Valkey.Enabled {
		valkeyClient, err = cache.NewValkeyClient(cfg.Valkey)
		if err != nil {
			log.Warn("Valkey unavailable, caching and logout disabled", "error", err)
			valkeyClient = nil
		}
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(cfg, repos, natsClient, esClient, valkeyClient)

	s := &Server{
		config:   cfg,
		db:       db,
		nats:     natsClient,
		es:       esClient,
		valkey:   valkeyClient,
		handlers: handlers.New(services, valkeyClient),
	}
	s.setupRouter()

	return s, nil
}

func (s *Server) setupRouter() {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(s.config.CORSOrigin))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())

	router.GET("/health", s.healthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/matches", s.handlers.ListMatches)
		api.GET("/sections", s.handlers.ListSections)

		api.POST("/login", s.handlers.Login)
		api.POST("/session", s.handlers.Session)
		api.POST("/logout", s.handlers.Logout)
		api.GET("/user", s.handlers.Profile)

		api.GET("/reservations", s.handlers.ListReservations)
		api.POST("/reservation", s.handlers.CreateReservation)
		api.PUT("/reservation", s.handlers.UpdateReservation)

		api.POST("/payments/notifications", s.handlers.PaymentNotification)

		api.POST("/migrate", s.handlers.Migrate)
	}

	s.router = router
}

func (s *Server) healthCheck(c *gin.Context) {
	status := gin.H{
		"status":   "healthy",
		"database": "up",
	}

	if err := s.db.Ping(); err != nil {
		status["status"] = "unhealthy"
		status["database"] = "down"
		c.JSON(503, status)
		return
	}

	dbStats := s.db.Stats()
	status["db_open_conns"] = dbStats.OpenConnections
	status["db_in_use"] = dbStats.InUse

	c.JSON(200, status)
}

func (s *Server) Run() error {
	logger.Get().Info("Starting HTTP server", "port", s.config.Port)
	return s.router.Run(":" + s.config.Port)
}

// GetRouter exposes the router for handler tests.
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Cleanup closes infrastructure connections on shutdown.
func (s *Server) Cleanup() {
	log := logger.Get()

	if s.nats != nil {
		if err := s.nats.Close(); err != nil {
			log.Error("Failed to close NATS connection", "error", err)
		}
	}
	if s.valkey != nil {
		if err := s.valkey.Close(); err != nil {
			log.Error("Failed to close Valkey connection", "error", err)
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			log.Error("Failed to close database connection", "error", err)
		}
	}
}
