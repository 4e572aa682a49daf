package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/yettapastries/storefront/internal/auth"
	"github.com/yettapastries/storefront/internal/handler"
	"github.com/yettapastries/storefront/internal/payment/mpesa"
	"github.com/yettapastries/storefront/internal/storage/mongodb"
	"github.com/yettapastries/storefront/internal/storefront"
	"github.com/yettapastries/storefront/pkg/config"
	"github.com/yettapastries/storefront/pkg/email"
	"github.com/yettapastries/storefront/pkg/httpserver"
	"github.com/yettapastries/storefront/pkg/jwt"
	"github.com/yettapastries/storefront/pkg/logger"
	"github.com/yettapastries/storefront/pkg/mongo"
)

type appConfig struct {
	Logger logger.Config
	Mongo  mongo.Config
	JWT    jwt.Config
	Google auth.GoogleConfig
	Reset  auth.ResetConfig
	Email  email.Config
	Mpesa  mpesa.Config
	CORS   handler.CORSConfig
	HTTP   httpserver.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg.Logger)
	config.MustLoad(&cfg.Mongo)
	config.MustLoad(&cfg.JWT)
	config.MustLoad(&cfg.Google)
	config.MustLoad(&cfg.Reset)
	config.MustLoad(&cfg.Email)
	config.MustLoad(&cfg.Mpesa)
	config.MustLoad(&cfg.CORS)
	config.MustLoad(&cfg.HTTP)

	log := logger.NewFromConfig(cfg.Logger, logger.WithService("storefront"))

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	db, err := mongo.NewWithDatabase(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() { _ = db.Client().Disconnect(context.Background()) }()
	log.Info("connected to mongodb", slog.String("database", db.Name()))

	users := mongodb.NewUserRepository(db)
	orders := mongodb.NewOrderRepository(db)
	favorites := mongodb.NewFavoriteRepository(db)
	for _, ensure := range []func(context.Context) error{
		users.EnsureIndexes,
		orders.EnsureIndexes,
		favorites.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			return err
		}
	}

	sessions, err := jwt.NewFromConfig(cfg.JWT)
	if err != nil {
		return err
	}

	mailer, err := buildMailer(cfg.Email, log)
	if err != nil {
		return err
	}

	gateway, err := mpesa.NewClient(cfg.Mpesa)
	if err != nil {
		return err
	}

	hasher := auth.NewArgon2idHasher()
	verifier := auth.NewTokenInfoVerifier(cfg.Google)
	authSvc := auth.NewService(users, hasher, sessions, verifier, auth.WithLogger(log))
	resetSvc := auth.NewResetService(users, hasher, mailer, cfg.Reset, auth.WithResetLogger(log))
	orderSvc := storefront.NewOrderService(orders, gateway, storefront.WithOrderLogger(log))
	favSvc := storefront.NewFavoriteService(favorites, storefront.WithFavoriteLogger(log))

	router := handler.NewRouter(handler.Deps{
		Auth:        handler.NewAuthHandler(authSvc, resetSvc, log),
		Storefront:  handler.NewStorefrontHandler(orderSvc, favSvc, log),
		Payment:     handler.NewPaymentHandler(gateway, log),
		Sessions:    sessions,
		CORS:        cfg.CORS,
		Healthcheck: mongo.Healthcheck(db.Client()),
	})

	return httpserver.New(cfg.HTTP, log).Run(ctx, router)
}

// buildMailer picks Postmark when tokens are configured and otherwise falls
// back to logging reset links, which is what development environments want.
func buildMailer(cfg email.Config, log *slog.Logger) (email.Sender, error) {
	if cfg.PostmarkServerToken == "" {
		log.Warn("postmark not configured, reset links will be logged")
		return email.NewLogSender(log), nil
	}
	return email.NewPostmarkClient(cfg)
}
