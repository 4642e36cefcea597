package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/idohairstudios/salon-booking/internal/cache"
	"github.com/idohairstudios/salon-booking/internal/config"
	dbpkg "github.com/idohairstudios/salon-booking/internal/db"
	"github.com/idohairstudios/salon-booking/internal/metrics"
	"github.com/idohairstudios/salon-booking/internal/middleware"
	"github.com/idohairstudios/salon-booking/internal/payment"
	"github.com/idohairstudios/salon-booking/internal/routes"
)

func main() {

	log := zerolog.New(os.Stdout).With().Timestamp().Str("service", "salon-booking").Logger()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg, log)

	redisCache := cache.New(cfg.RedisAddr, cfg.RedisPassword, log)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Warn().Err(err).Msg("redis unreachable at startup")
	}

	gateway, err := newGateway(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure payment gateway")
	}

	metrics.Register()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	sweeper := routes.RegisterRoutes(r, db, cfg, redisCache, gateway, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sweeper.Run(ctx, cfg.SweepInterval)

	log.Info().Str("addr", cfg.Addr()).Str("provider", cfg.PaymentProvider).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

func newGateway(cfg *config.Config) (payment.Gateway, error) {
	switch cfg.PaymentProvider {
	case "mercadopago":
		return payment.NewMercadoPagoClient(cfg.MercadoPagoAccessToken)
	default:
		return payment.NewPaystackClient(cfg.PaystackSecretKey), nil
	}
}
