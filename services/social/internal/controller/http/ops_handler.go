package http

import (
	"net/http"

	"cinesocial/pkg/logger"
	"cinesocial/services/social/internal/store"
	"cinesocial/services/social/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type OpsHandler struct {
	statsUseCase usecase.StatsUseCase
	logger       *logger.Logger
}

func NewOpsHandler(statsUseCase usecase.StatsUseCase, logger *logger.Logger) *OpsHandler {
	return &OpsHandler{statsUseCase: statsUseCase, logger: logger}
}

func (h *OpsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *OpsHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.statsUseCase.Stats())
}

// RegisterMetrics exposes the store's collection sizes as gauges on reg.
// Values are read through the stats cache at scrape time.
func (h *OpsHandler) RegisterMetrics(reg prometheus.Registerer) error {
	gauges := []struct {
		name, help string
		value      func(store.Stats) int
	}{
		{"users", "Registered users.", func(s store.Stats) int { return s.Users }},
		{"posts", "Posts in the store.", func(s store.Stats) int { return s.Posts }},
		{"active_stories", "Stories that have not expired.", func(s store.Stats) int { return s.ActiveStories }},
		{"movies", "Movies in the store.", func(s store.Stats) int { return s.Movies }},
		{"pending_movies", "Movies waiting for review.", func(s store.Stats) int { return s.PendingMovies }},
		{"pending_dmca_claims", "DMCA claims waiting for a decision.", func(s store.Stats) int { return s.PendingDMCAClaims }},
		{"pending_moderation", "Moderation queue items waiting for review.", func(s store.Stats) int { return s.PendingModeration }},
		{"pending_reports", "Movie reports waiting for review.", func(s store.Stats) int { return s.PendingReports }},
		{"friendships", "Friendships in the store.", func(s store.Stats) int { return s.Friendships }},
	}
	for _, g := range gauges {
		value := g.value
		gauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "cinesocial",
			Subsystem: "store",
			Name:      g.name,
			Help:      g.help,
		}, func() float64 { return float64(value(h.statsUseCase.Stats())) })
		if err := reg.Register(gauge); err != nil {
			return err
		}
	}
	return nil
}

func (h *OpsHandler) RegisterRoutes(r *gin.Engine, api *gin.RouterGroup) {
	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	api.GET("/stats", h.Stats)
}
