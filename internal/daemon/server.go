// Package daemon is the local passthrough service: one gin route per hub
// client operation, forwarding status codes and detail messages verbatim.
//
//	@title						JupyterHub Manager API
//	@version					1.0
//	@description				Management passthrough API for a JupyterHub instance
//	@host						localhost:8080
//	@BasePath					/
//	@schemes					http https
package daemon

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hubman-io/hubman/docs" // Import generated swagger docs
	"github.com/hubman-io/hubman/internal/common"
	"github.com/hubman-io/hubman/internal/config"
	"github.com/hubman-io/hubman/internal/hub"
)

// Server is the passthrough web service. It owns one hub client whose
// connection pool is shared by all requests and released on Stop.
type Server struct {
	Config        *config.Config
	Hub           *hub.Client
	StartTime     time.Time
	TotalRequests int64
	server        *http.Server
}

func NewServer(cfg *config.Config) (*Server, error) {
	client, err := hub.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	return &Server{
		Config:    cfg,
		Hub:       client,
		StartTime: time.Now().UTC(),
	}, nil
}

func (s *Server) GetVersion() string {
	version, gitCommit, ok := common.GetModuleBuildInfo()
	if ok {
		return fmt.Sprintf("%s (git: %s)", version, gitCommit)
	}
	return "unknown"
}

// Start initializes and starts the web service
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		logrus.WithField("panic", err).Error("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"detail": "internal server error",
		})
	}))
	router.Use(s.requestCounterMiddleware())
	router.Use(s.correlationMiddleware())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     s.Config.Server.CORS.AllowedOrigins,
		AllowMethods:     s.Config.Server.CORS.AllowedMethods,
		AllowHeaders:     s.Config.Server.CORS.AllowedHeaders,
		AllowCredentials: false,
	}))

	s.setupRoutes(router)

	addr := s.Config.GetListenAddr()

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.Config.Server.Limits.ReadTimeout,
		WriteTimeout: s.Config.Server.Limits.WriteTimeout,
		IdleTimeout:  s.Config.Server.Limits.IdleTimeout,
	}

	// Store server reference for shutdown
	s.server = server

	// Channel to capture startup errors
	errChan := make(chan error, 1)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	// Wait a moment to see if the server fails to start
	select {
	case err := <-errChan:
		return fmt.Errorf("failed to start server: %w", err)
	case <-time.After(100 * time.Millisecond):
		logrus.WithField("addr", addr).Infoln("Passthrough service started")
		return nil
	}
}

// Stop drains in-flight requests and releases the hub connection pool.
func (s *Server) Stop() {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			logrus.WithError(err).Warnln("Server shutdown")
		}
	}

	s.Hub.Close()
	logrus.Infoln("Server exiting")
}

// setupRoutes configures all the HTTP routes
func (s *Server) setupRoutes(router *gin.Engine) {

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	if s.Config.Server.Health.Enabled {
		router.GET(s.Config.Server.Health.Path, s.getHealth)
	}
	router.GET("/info", s.getInfo)

	// Users
	router.GET("/users", s.listUsers)
	router.POST("/users", s.createUser)
	router.GET("/users/:username", s.getUser)
	router.PATCH("/users/:username", s.modifyUser)
	router.DELETE("/users/:username", s.deleteUser)
	router.POST("/users/:username/activity", s.postActivity)

	// Servers. The bare /server routes address the user's default server.
	router.GET("/users/:username/servers", s.listServers)
	router.GET("/users/:username/servers/:server", s.getServer)
	router.POST("/users/:username/servers/:server", s.startServer)
	router.DELETE("/users/:username/servers/:server", s.stopServer)
	router.POST("/users/:username/server", s.startServer)
	router.DELETE("/users/:username/server", s.stopServer)

	// Groups
	router.GET("/groups", s.listGroups)
	router.POST("/groups", s.createGroup)
	router.GET("/groups/:group", s.getGroup)
	router.DELETE("/groups/:group", s.deleteGroup)
	router.POST("/groups/:group/users", s.addGroupMembers)
	router.DELETE("/groups/:group/users/:username", s.removeGroupMember)

	// Services
	router.GET("/services", s.listServices)
	router.GET("/services/:service", s.getService)

	// Tokens
	router.GET("/tokens", s.listTokens)
	router.GET("/tokens/:id", s.getToken)
	router.POST("/users/:username/tokens", s.createToken)
	router.DELETE("/users/:username/tokens/:id", s.deleteToken)

	// Admin operations
	admin := router.Group("/admin")
	{
		admin.POST("/shutdown", s.shutdownHub)
		admin.GET("/proxy", s.getProxy)
		admin.POST("/proxy/check", s.forceProxyCheck)
		admin.POST("/cull", s.cullServers)
		admin.GET("/metrics", s.getMetrics)
		admin.POST("/servers/start-all", s.startAllServers)
		admin.POST("/servers/stop-all", s.stopAllServers)
	}
}

// getMetrics reports local service counters, not hub state.
//
//	@Summary	Service metrics
//	@Tags		admin
//	@Produce	json
//	@Success	200	{object}	map[string]any
//	@Router		/admin/metrics [get]
func (s *Server) getMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"uptime":         time.Since(s.StartTime).String(),
		"total_requests": atomic.LoadInt64(&s.TotalRequests),
		"version":        s.GetVersion(),
	})
}
