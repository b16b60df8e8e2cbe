package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "portfolio/docs"
	"portfolio/internal/config"
	"portfolio/internal/handler"
	"portfolio/internal/observability/metrics"
	"portfolio/internal/profile"
	"portfolio/internal/server/middleware"
)

const shutdownTimeout = 10 * time.Second

// Server HTTP 服务器
type Server struct {
	cfg      *config.Config
	engine   *gin.Engine
	registry *prometheus.Registry
	relay    handler.ChatRelayer
}

// New 创建服务器实例
func New(cfg *config.Config) (*Server, error) {
	// 设置 Gin 模式
	switch cfg.Server.Mode {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	relay, err := NewRelay(context.Background(), cfg, metrics.NewRelayMetrics(registry))
	if err != nil {
		return nil, err
	}

	srv := &Server{
		cfg:      cfg,
		engine:   gin.New(),
		registry: registry,
		relay:    relay,
	}

	// 设置路由
	srv.setupRoutes()

	return srv, nil
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	// 全局中间件
	s.engine.Use(middleware.Recovery())
	s.engine.Use(middleware.RequestID())
	s.engine.Use(middleware.Logger())
	s.engine.Use(middleware.CORS(s.cfg.CORS.AllowedOrigins))

	// 健康检查
	healthHandler := handler.NewHealthHandler(s.cfg.AI.Configured())
	s.engine.GET("/health", healthHandler.Health)
	s.engine.GET("/ready", healthHandler.Ready)

	// 指标
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	// Swagger 文档
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := s.engine.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		chatHandler := handler.NewChatHandler(s.relay)
		api.POST("/chat", middleware.BodyLimit(s.cfg.Relay.MaxBodyBytes), chatHandler.Chat)
		api.OPTIONS("/chat", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		profileHandler := handler.NewProfileHandler(profile.Default)
		api.GET("/projects", profileHandler.Projects)
	}
}

// Run 启动服务器，ctx 取消后优雅关闭
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	// 启动服务器
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待关闭信号或错误
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// Engine 获取 Gin 引擎 (用于测试)
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
