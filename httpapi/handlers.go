package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// parseDays resolves the optional days query parameter. Absence means the
// configured default; an unparseable or non-positive value is a caller
// error surfaced as "no data", not as a transport failure.
func (s *Server) parseDays(c *gin.Context) (int, bool) {
	raw := c.Query("days")
	if raw == "" {
		return s.svc.DefaultDays(), true
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return 0, false
	}
	return days, true
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "UP",
		"service": "weather-backend",
	})
}

// handleListStations returns all active stations with basic info.
// GET /weather/stations
func (s *Server) handleListStations(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	stations, err := s.svc.Stations(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stations)
}

// handleStationData returns one station's measurement history.
// GET /weather/stations/:station_id?days=N
func (s *Server) handleStationData(c *gin.Context) {
	stationID := c.Param("station_id")
	days, ok := s.parseDays(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no data for requested window"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	data, err := s.svc.StationData(ctx, stationID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if data.TotalMeasurements == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no data for station " + stationID})
		return
	}

	c.JSON(http.StatusOK, data)
}

// handleAllStationsData returns every station's history keyed by station.
// GET /weather/stations/data/all?days=N
func (s *Server) handleAllStationsData(c *gin.Context) {
	days, ok := s.parseDays(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no data for requested window"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	data, err := s.svc.AllStationsData(ctx, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, data)
}

// handleLatest returns the most recent measurement per station.
// GET /weather/latest
func (s *Server) handleLatest(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	measurements, err := s.svc.Latest(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, measurements)
}

// handleCurrentConditions returns the simplified snapshot for one station.
// GET /weather/stations/:station_id/simple
func (s *Server) handleCurrentConditions(c *gin.Context) {
	stationID := c.Param("station_id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	conditions, err := s.svc.CurrentConditions(ctx, stationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if conditions == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no data for station " + stationID})
		return
	}

	c.JSON(http.StatusOK, conditions)
}

// handleStationStatistics returns per-field summary statistics.
// GET /weather/stations/:station_id/statistics?days=N
func (s *Server) handleStationStatistics(c *gin.Context) {
	stationID := c.Param("station_id")
	days, ok := s.parseDays(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no data for requested window"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	stats, err := s.svc.Statistics(ctx, stationID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if stats == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no data for station " + stationID})
		return
	}

	c.JSON(http.StatusOK, stats)
}
