package server

import (
	"context"
	"database/sql"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "resume-parser/internal/auth"
	"resume-parser/internal/documents"
	"resume-parser/internal/extract"
	"resume-parser/internal/parse"
	"resume-parser/internal/profiles"
	"resume-parser/internal/shared/config"
	"resume-parser/internal/shared/metrics"
	"resume-parser/internal/shared/server/middleware"
	"resume-parser/internal/shared/server/respond"
	"resume-parser/internal/shared/storage/db"
	"resume-parser/internal/shared/storage/object"
	localstore "resume-parser/internal/shared/storage/object/local"
	s3store "resume-parser/internal/shared/storage/object/s3"
	"resume-parser/internal/shared/telemetry"
	"resume-parser/internal/users"
)

const parseRateGroup = "PARSE"

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(cfg.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				parseRateGroup: {Rate: 0.5, Burst: 5},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && strings.HasPrefix(c.Request.URL.Path, "/api/v1/profiles") {
					return parseRateGroup
				}
				return ""
			},
		}),
	)

	// Dependencies
	store := newObjectStore(cfg)
	sqlDB := connectDB(cfg)

	var docRepo documents.DocumentsRepo
	if sqlDB != nil {
		docRepo = &documents.PGRepo{DB: sqlDB}
	} else {
		docRepo = documents.NewMemoryRepo()
	}
	docSvc := &documents.Service{Store: store, Repo: docRepo, StorageProvider: cfg.ObjectStoreType}
	docHandler := documents.NewHandler(docSvc)
	docHandler.MaxBytes = int64(cfg.UploadMaxMB) << 20

	var profileRepo profiles.Repo
	if sqlDB != nil {
		profileRepo = &profiles.PGRepo{DB: sqlDB}
	} else {
		profileRepo = profiles.NewMemoryRepo()
	}
	pipeline := parse.NewPipeline(&extract.Extractor{})
	profileSvc := &profiles.Service{Repo: profileRepo, Documents: docSvc, Pipeline: pipeline}
	profileHandler := profiles.NewHandler(profileSvc)
	profileHandler.MaxBytes = int64(cfg.UploadMaxMB) << 20

	var userRepo users.Repo
	if sqlDB != nil {
		userRepo = &users.PGRepo{DB: sqlDB}
	} else {
		userRepo = users.NewMemoryRepo()
	}
	userSvc := users.NewService(userRepo)
	userHandler := users.NewHandler(userSvc)

	googleAuthSvc := googleauth.NewGoogleService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL, userSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	googleAuthSvc.RegisterRoutes(api)
	registerMeRoutes(api)
	userHandler.RegisterRoutes(api)
	docHandler.RegisterRoutes(api)
	profileHandler.RegisterRoutes(api)

	return r
}

func newObjectStore(cfg config.Config) object.ObjectStore {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			telemetry.Warn("s3 store init failed, falling back to local", map[string]any{"error": err.Error()})
		} else {
			return store
		}
	}
	return localstore.New(cfg.LocalStoreDir)
}

func connectDB(cfg config.Config) *sql.DB {
	if cfg.DatabaseURL == "" {
		return nil
	}
	conn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		telemetry.Warn("database connect failed, falling back to memory", map[string]any{"error": err.Error()})
		return nil
	}
	if err := db.RunMigrations(context.Background(), conn); err != nil {
		telemetry.Warn("migrations failed, falling back to memory", map[string]any{"error": err.Error()})
		return nil
	}
	return conn
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
