package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"weather-backend/config"
	"weather-backend/db"
	"weather-backend/weather"
)

// WeatherService is the query surface the handlers expose over HTTP.
type WeatherService interface {
	Stations(ctx context.Context) ([]db.StationInfo, error)
	StationData(ctx context.Context, stationID string, days int) (weather.StationData, error)
	AllStationsData(ctx context.Context, days int) (map[string]weather.StationData, error)
	Latest(ctx context.Context) ([]db.Measurement, error)
	CurrentConditions(ctx context.Context, stationID string) (*weather.CurrentConditions, error)
	Statistics(ctx context.Context, stationID string, days int) (*weather.StationStatistics, error)
	DefaultDays() int
}

// Server bundles router and dependencies for the REST API.
type Server struct {
	cfg    config.Config
	svc    WeatherService
	engine *gin.Engine
}

// New constructs a server with routes and middleware.
func New(cfg config.Config, svc WeatherService) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(gin.Logger())
	engine.Use(corsMiddleware())

	server := &Server{cfg: cfg, svc: svc, engine: engine}
	server.registerRoutes()
	return server
}

// Engine exposes the underlying gin engine (for tests).
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts the HTTP server and blocks until shutdown.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.ListenAddr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) registerRoutes() {
	w := s.engine.Group("/weather")

	w.GET("/health", s.handleHealth)
	w.GET("/stations", s.handleListStations)
	w.GET("/stations/data/all", s.handleAllStationsData)
	w.GET("/stations/:station_id", s.handleStationData)
	w.GET("/stations/:station_id/simple", s.handleCurrentConditions)
	w.GET("/stations/:station_id/statistics", s.handleStationStatistics)
	w.GET("/latest", s.handleLatest)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
