package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"skillfit/internal/analyses"
	"skillfit/internal/knowledge"
	"skillfit/internal/shared/config"
	"skillfit/internal/shared/metrics"
	"skillfit/internal/shared/server/middleware"
	"skillfit/internal/shared/server/respond"
	"skillfit/internal/shared/storage/db"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	kb := knowledge.Default()
	var analysisRepo analyses.Repo
	if sqlDB != nil {
		analysisRepo = &analyses.PGRepo{DB: sqlDB}
	} else {
		analysisRepo = analyses.NewMemoryRepo()
	}
	analysisSvc := analyses.NewService(analysisRepo, kb)
	analysisHandler := analyses.NewHandler(analysisSvc, cfg.MaxUploadBytes)

	// Analysis runs the full scorer battery per request, so it gets a
	// per-client budget the cheap read endpoints do not need.
	analyzeRateLimit := middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"ANALYZE": {Rate: cfg.AnalyzeRate, Burst: cfg.AnalyzeBurst},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && strings.HasPrefix(c.FullPath(), "/api/v1/analyses") {
				return "ANALYZE"
			}
			return ""
		},
	})

	api := r.Group("/api/v1")
	api.Use(analyzeRateLimit)
	api.GET("/health", healthHandler(sqlDB))
	api.GET("/metrics", metrics.Handler())
	registerMetaRoutes(api, kb)
	analysisHandler.RegisterRoutes(api)

	return r
}

// healthHandler reports liveness, plus database reachability when one
// is configured.
func healthHandler(sqlDB *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := gin.H{"ok": true, "store": "memory"}
		if sqlDB != nil {
			resp["store"] = "postgres"
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := sqlDB.PingContext(ctx); err != nil {
				resp["ok"] = false
				resp["database"] = "unreachable"
				respond.JSON(c, http.StatusServiceUnavailable, resp)
				return
			}
			resp["database"] = "ok"
		}
		respond.JSON(c, http.StatusOK, resp)
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
