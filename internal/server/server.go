package server

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/gbmviz/gbm-visualizer/internal/config"
	"github.com/gbmviz/gbm-visualizer/internal/domain"
	"github.com/gbmviz/gbm-visualizer/internal/output"
	"github.com/gbmviz/gbm-visualizer/internal/simulation"
	"github.com/gbmviz/gbm-visualizer/pkg/logger"
)

// Server is the web-dashboard front end over the pure simulation engine.
// It owns the seed lifecycle: the active seed lives in session state here
// and is passed explicitly into every simulation, keeping the engine pure.
type Server struct {
	sim *simulation.Simulator
	log *logger.Logger

	mu   sync.Mutex
	seed int64
}

// New creates a server with a fresh session seed. A nil logger defaults to
// a no-op logger.
func New(log *logger.Logger) *Server {
	if log == nil {
		log = logger.NewNop()
	}
	return &Server{
		sim:  simulation.NewSimulator(log),
		log:  log,
		seed: simulation.NewSeed(),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.health)
	r.GET("/", s.dashboard)

	api := r.Group("/api")
	{
		api.GET("/simulate", s.simulate)
		api.GET("/field", s.field)
		api.POST("/seed", s.regenerateSeed)
	}

	return r
}

// Run starts the HTTP server on addr, blocking until it exits.
func (s *Server) Run(addr string) error {
	s.log.Info("starting dashboard", logger.Field{Key: "addr", Value: addr})
	return s.Router().Run(addr)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// currentSeed returns the active session seed.
func (s *Server) currentSeed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seed
}

// regenerateSeed replaces the session seed, backing the dashboard's
// "Generate New Paths" action.
func (s *Server) regenerateSeed(c *gin.Context) {
	s.mu.Lock()
	s.seed = simulation.NewSeed()
	seed := s.seed
	s.mu.Unlock()

	s.log.Info("session seed regenerated", logger.Field{Key: "seed", Value: seed})
	c.JSON(http.StatusOK, gin.H{"seed": seed})
}

// simulate runs the engine with the session seed and the slider values
// from the query string, validated against the slider bounds.
func (s *Server) simulate(c *gin.Context) {
	drift, err := queryFloat(c, "drift", domain.DefaultDrift)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid drift"})
		return
	}
	volatility, err := queryFloat(c, "volatility", domain.DefaultVolatility)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid volatility"})
		return
	}
	paths, err := strconv.Atoi(c.DefaultQuery("paths", strconv.Itoa(domain.DefaultPathCount)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid paths"})
		return
	}

	if drift < config.MinDrift || drift > config.MaxDrift {
		c.JSON(http.StatusBadRequest, gin.H{"error": "drift out of range"})
		return
	}
	if volatility < config.MinVolatility || volatility > config.MaxVolatility {
		c.JSON(http.StatusBadRequest, gin.H{"error": "volatility out of range"})
		return
	}
	if paths < config.MinPaths || paths > config.MaxPaths {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paths out of range"})
		return
	}

	params := domain.SimulationParameters{
		Seed:       s.currentSeed(),
		Drift:      drift,
		Volatility: volatility,
		PathCount:  paths,
		StepCount:  domain.DefaultStepCount,
	}

	result, err := s.sim.Run(params)
	if err != nil {
		s.log.Error(err, logger.Field{Key: "params", Value: params})
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// field returns the deterministic drift-field grid for a drift value.
func (s *Server) field(c *gin.Context) {
	drift, err := queryFloat(c, "drift", domain.DefaultDrift)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid drift"})
		return
	}
	if drift < config.MinDrift || drift > config.MaxDrift {
		c.JSON(http.StatusBadRequest, gin.H{"error": "drift out of range"})
		return
	}
	c.JSON(http.StatusOK, simulation.SlopeField(drift))
}

// dashboard serves the chart page for the current session seed at the
// default slider positions.
func (s *Server) dashboard(c *gin.Context) {
	params := domain.DefaultParameters(s.currentSeed())
	result, err := s.sim.Run(params)
	if err != nil {
		c.String(http.StatusInternalServerError, "simulation failed: %v", err)
		return
	}

	page, err := (output.HTMLFormatter{}).Format(result)
	if err != nil {
		c.String(http.StatusInternalServerError, "render failed: %v", err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func queryFloat(c *gin.Context, key string, fallback float64) (float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(raw, 64)
}
