package main

import (
	"context"
	"log/slog"
	"os"

	"vendofyx/config"
	"vendofyx/internal/delivery"
	"vendofyx/internal/delivery/http"
	"vendofyx/internal/delivery/http/middleware"
	"vendofyx/internal/delivery/http/router/handler"
	"vendofyx/internal/domain/repository"
	"vendofyx/internal/domain/service"
	"vendofyx/internal/infra/auth"
	logs "vendofyx/internal/infra/log"
	"vendofyx/internal/infra/persistence/memory"
	"vendofyx/internal/infra/persistence/postgres"
	"vendofyx/internal/infra/pubsub"
	"vendofyx/internal/infra/qrcode"
	"vendofyx/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newStorage,
	)
}

// storage selects the persistence backend once at startup. Without a
// PostgreSQL configuration the service runs in sandbox mode on an in-memory
// store seeded with a demo account.
type storage struct {
	db    *gorm.DB      // nil in sandbox mode
	store *memory.Store // nil when PostgreSQL is configured
}

type storageParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Hasher service.PasswordHasher
}

func newStorage(params storageParams) (*storage, error) {
	if params.Config.Postgres == nil {
		params.Logger.Warn("PostgreSQL not configured, running in sandbox mode with in-memory storage")

		store := memory.NewStore()
		hash, err := params.Hasher.Hash("vendofyx-demo")
		if err != nil {
			return nil, err
		}
		profile := store.SeedDemoProfile(hash)
		params.Logger.Info("Sandbox demo account ready", slog.String("email", profile.Email))

		return &storage{store: store}, nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return nil, err
	}

	return &storage{db: db}, nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newProfileRepository,
			newFeedbackRequestRepository,
			newTransactionManager,
		),
	)
}

func newProfileRepository(s *storage) repository.ProfileRepository {
	if s.db != nil {
		return postgres.NewProfileRepository(s.db)
	}

	return memory.NewProfileRepository(s.store)
}

func newFeedbackRequestRepository(s *storage) repository.FeedbackRequestRepository {
	if s.db != nil {
		return postgres.NewFeedbackRequestRepository(s.db)
	}

	return memory.NewFeedbackRequestRepository(s.store)
}

func newTransactionManager(s *storage) repository.TransactionManager {
	if s.db != nil {
		return postgres.NewTransactionManager(s.db)
	}

	return memory.NewTransactionManager(s.store)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
			pubsub.NewEventPublisher,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewFeedbackService,
			impl.NewBillingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewProfileHandler,
			handler.NewFeedbackHandler,
			handler.NewRateHandler,
			handler.NewBillingHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
