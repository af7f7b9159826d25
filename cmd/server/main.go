package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	assistcontroller "algoprep/internal/assist/controller"
	assistservice "algoprep/internal/assist/service"
	"algoprep/internal/catalog/controller"
	"algoprep/internal/catalog/repository"
	"algoprep/internal/catalog/service"
	"algoprep/internal/catalog/source"
	"algoprep/internal/common/cache"
	"algoprep/internal/common/db"
	commonmw "algoprep/internal/common/http/middleware"
	"algoprep/pkg/utils/logger"
	"algoprep/pkg/utils/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultConfigPath = "configs/server.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "Path to config file")
	flag.Parse()

	appCfg, err := loadAppConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load app config failed: %v\n", err)
		return
	}

	if err := logger.Init(appCfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "init logger failed: %v\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	problemRepo := repository.NewNoStoreProblemRepository()
	sheetRepo := repository.NewNoStoreSheetRepository()
	if appCfg.HasStore() {
		mysqlDB, err := db.NewMySQLWithConfig(&appCfg.Database)
		if err != nil {
			logger.Error(context.Background(), "init database failed", zap.Error(err))
			return
		}
		defer func() {
			_ = mysqlDB.Close()
		}()

		redisCache, err := cache.NewRedisCacheWithConfig(&appCfg.Redis)
		if err != nil {
			logger.Error(context.Background(), "init redis failed", zap.Error(err))
			return
		}
		defer func() {
			_ = redisCache.Close()
		}()

		problemRepo = repository.NewProblemRepository(mysqlDB, redisCache)
		sheetRepo = repository.NewSheetRepository(mysqlDB, redisCache)
	} else {
		logger.Info(context.Background(), "no database configured, sheets serve bundled data")
	}

	leetcode := source.NewLeetCodeClient(appCfg.Source.LeetCodeBaseURL, nil)
	codeforces := source.NewCodeforcesClient(appCfg.Source.CodeforcesBaseURL, nil)
	catalogService := service.NewCatalogService(leetcode, codeforces, problemRepo, sheetRepo)

	var generator assistservice.TextGenerator
	if appCfg.Gemini.APIKey != "" {
		geminiGen, err := assistservice.NewGeminiGenerator(context.Background(), appCfg.Gemini.APIKey)
		if err != nil {
			logger.Error(context.Background(), "init gemini client failed", zap.Error(err))
			return
		}
		generator = geminiGen
	} else {
		logger.Warn(context.Background(), "gemini api key not set, ai endpoints disabled")
	}
	assistService := assistservice.NewAssistService(generator)

	httpServer := buildHTTPServer(appCfg, catalogService, assistService)

	errCh := make(chan error, 1)
	go func() {
		logger.Info(context.Background(), "http server started", zap.String("addr", appCfg.Server.Addr))
		errCh <- httpServer.ListenAndServe()
	}()

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(context.Background(), "server stopped", zap.Error(err))
		}
	case <-shutdownCtx.Done():
		logger.Info(context.Background(), "shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error(context.Background(), "http server shutdown failed", zap.Error(err))
	}
}

func buildHTTPServer(cfg *AppConfig, catalogService *service.CatalogService, assistService *assistservice.AssistService) *http.Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(commonmw.TraceContextMiddleware())
	router.Use(commonmw.CORSMiddleware(commonmw.CORSConfig{
		Enabled:          cfg.CORS.Enabled,
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))
	router.Use(requestLogger())

	api := router.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, gin.H{"status": "ok"})
	})
	controller.NewCatalogController(catalogService).RegisterRoutes(api)
	assistcontroller.NewAssistController(assistService).RegisterRoutes(api)

	return &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		logger.Info(
			c.Request.Context(),
			"request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
