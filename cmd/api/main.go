package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"hospitalityhub/internal/config"
	"hospitalityhub/internal/middleware"
	"hospitalityhub/internal/modules/booking"
	"hospitalityhub/internal/modules/order"
	"hospitalityhub/internal/modules/rooms"
	"hospitalityhub/internal/modules/tools"
	jwtsvc "hospitalityhub/internal/pkg/jwt"
	"hospitalityhub/internal/provider"
	"hospitalityhub/internal/telemetry"
)

func main() {
	// A missing .env is fine, the real environment wins either way.
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := provider.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("provider setup failed")
	}
	log.Info().Str("provider", cfg.Provider).Msg("pms provider initialized")

	roomsService := rooms.NewService(store)
	bookingService := booking.NewService(store)
	orderService := order.NewService(store)

	var sink telemetry.Sink = telemetry.Nop{}
	if cfg.Telemetry.Enabled() {
		sink = telemetry.NewLogSink(log)
	}

	handler := tools.NewHandler(roomsService, bookingService, orderService, sink)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "provider": cfg.Provider})
	})

	v1 := r.Group("/api/v1")
	if cfg.AuthSecret != "" {
		v1.Use(middleware.Auth(jwtsvc.New(cfg.AuthSecret, 24*time.Hour)))
	}
	handler.RegisterRoutes(v1)

	log.Info().Str("addr", cfg.HTTPAddr).Msg("starting server")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
