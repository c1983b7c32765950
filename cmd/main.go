package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/bluearnk/bluearnk-api/config"
	"github.com/bluearnk/bluearnk-api/db"
	authhandler "github.com/bluearnk/bluearnk-api/internal/auth/handler"
	authrepo "github.com/bluearnk/bluearnk-api/internal/auth/repository/postgres"
	authservice "github.com/bluearnk/bluearnk-api/internal/auth/service"
	"github.com/bluearnk/bluearnk-api/internal/mailer"
	"github.com/bluearnk/bluearnk-api/internal/queue"
	"github.com/bluearnk/bluearnk-api/internal/ratelimit"
	requesthandler "github.com/bluearnk/bluearnk-api/internal/request/handler"
	requestrepo "github.com/bluearnk/bluearnk-api/internal/request/repository/postgres"
	requestservice "github.com/bluearnk/bluearnk-api/internal/request/service"
)

func main() {
	cfg := config.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := authrepo.NewPostgresRepository(pool)
	tokenService := authservice.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessExpiryMin, cfg.RefreshExpiryMin)

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
	}
	cooldown := ratelimit.NewEmailCooldown(redisClient, time.Duration(cfg.EmailCooldownSec)*time.Second)

	outbound := buildMailer(ctx, cfg, log)

	authSvc := authservice.NewAuthService(repo, repo, tokenService, outbound, cooldown, cfg, log)
	authH := authhandler.NewAuthHandler(authSvc, tokenService)

	reqRepo := requestrepo.NewPostgresRepository(pool)
	var events requestservice.RequestEventPublisher
	if cfg.AMQPURL != "" {
		events = queue.NewEventPublisher(cfg.AMQPURL)
	}
	requestSvc := requestservice.NewRequestService(reqRepo, events, log)
	requestH := requesthandler.NewRequestHandler(requestSvc)

	app := fiber.New()
	authhandler.RegisterRoutes(app, authH)
	requesthandler.RegisterRoutes(app, requestH, authH)

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	log.Info("starting server", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// buildMailer picks the delivery path: queue-backed when AMQP is configured
// (with a background consumer draining jobs into the delegate), direct SMTP
// when configured, and a log stub otherwise.
func buildMailer(ctx context.Context, cfg *config.Config, log *slog.Logger) mailer.Mailer {
	var delegate mailer.Mailer = mailer.NewLogMailer(log)
	if cfg.SMTPEnabled() {
		delegate = mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
			Secure:   cfg.SMTPSecure,
		})
	}

	if cfg.AMQPURL == "" {
		return delegate
	}

	consumer := queue.NewConsumer(cfg.AMQPURL, delegate, log)
	go consumer.Run(ctx)
	return queue.NewPublisher(cfg.AMQPURL)
}
