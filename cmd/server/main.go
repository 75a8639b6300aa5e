package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpdelivery "glory-to-rome-backend/internal/delivery/http"
	"glory-to-rome-backend/internal/delivery/websocket"
	"glory-to-rome-backend/internal/logger"
	"glory-to-rome-backend/internal/repository"
)

func main() {
	if err := logger.Init(nil); err != nil {
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Get()

	// The hub broadcasts state changes; the repository wires its
	// notification callback into every game's event bus
	var hub *websocket.Hub
	repo := repository.NewGameRepository(func(gameID string) {
		hub.Broadcaster()(gameID)
	})
	hub = websocket.NewHub(repo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	apiRouter := httpdelivery.SetupRouter(repo)

	if os.Getenv("GO_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ws", func(c *gin.Context) {
		websocket.ServeWS(hub, c.Writer, c.Request)
	})
	r.Any("/api/v1/*path", gin.WrapH(apiRouter))

	addr := os.Getenv("GTR_ADDR")
	if addr == "" {
		addr = ":3001"
	}

	srv := &http.Server{Addr: addr, Handler: r}
	go func() {
		log.Info("server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	cancel()
	_ = srv.Shutdown(context.Background())
}
