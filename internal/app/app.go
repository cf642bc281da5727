package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	config "github.com/zelezara-doo/shop-backend/internal/cfg"
	v1Http "github.com/zelezara-doo/shop-backend/internal/delivery/v1/http"
	"github.com/zelezara-doo/shop-backend/internal/infrastructure/email"
	"github.com/zelezara-doo/shop-backend/internal/infrastructure/kafka"
	minioInfra "github.com/zelezara-doo/shop-backend/internal/infrastructure/minio"
	s3Repo "github.com/zelezara-doo/shop-backend/internal/repository/minio"
	"github.com/zelezara-doo/shop-backend/internal/repository/pgdb"
	pgdbConv "github.com/zelezara-doo/shop-backend/internal/repository/pgdb/converter/generated"
	"github.com/zelezara-doo/shop-backend/internal/repository/redis"
	redisConv "github.com/zelezara-doo/shop-backend/internal/repository/redis/converter/generated"
	"github.com/zelezara-doo/shop-backend/internal/usecase"
	"github.com/zelezara-doo/shop-backend/pkg/clients"
	"github.com/zelezara-doo/shop-backend/pkg/closer"
	"github.com/zelezara-doo/shop-backend/pkg/e"
	"github.com/zelezara-doo/shop-backend/pkg/logger"
	"github.com/zelezara-doo/shop-backend/pkg/postgres"
)

// App собирает зависимости приложения и управляет их жизненным циклом.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	closer *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	return &App{
		cfg:    cfg,
		logger: log,
		closer: closer.NewCloser(2 * time.Second),
	}, nil
}

// Run поднимает инфраструктуру, запускает HTTP-сервер и outbox-воркер,
// блокируется до сигнала завершения и гасит всё в обратном порядке.
func (a *App) Run() error {
	appCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := a.initPGDB()
	if err != nil {
		a.logger.Errorf(err, "failed to initialize database")
		return err
	}
	a.closer.Add(func(ctx context.Context) error {
		db.Close()
		a.logger.Infof("Database pool closed")
		return nil
	})

	redisClient := clients.NewRedisClient(a.cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(redisCtx); err != nil {
		redisCancel()
		a.logger.Errorf(err, "failed to connect to redis")
		return err
	}
	redisCancel()
	a.closer.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	minioClient, err := clients.NewMinIOClient(a.cfg)
	if err != nil {
		a.logger.Errorf(err, "failed to initialize minio client")
		return err
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, a.cfg.Minio.BucketName); err != nil {
		minioCancel()
		a.logger.Errorf(err, "failed to initialize MinIO bucket")
		return err
	}
	minioCancel()

	// Конвертеры между domain-сущностями и моделями хранилищ
	catConv := pgdbConv.NewCategoryConverterImpl()
	subConv := pgdbConv.NewSubcategoryConverterImpl()
	prConv := pgdbConv.NewProductConverterImpl()
	varConv := pgdbConv.NewVariantConverterImpl()
	imgConv := pgdbConv.NewProductImageConverterImpl()
	orderConv := pgdbConv.NewOrderConverterImpl()
	itemConv := pgdbConv.NewOrderItemConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	pricingConv := redisConv.NewPricingConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, prConv, varConv, imgConv)
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, catConv, subConv)
	subcategoryRepo := pgdb.NewSubcategoryRepo(db.Pool, subConv)
	variantRepo := pgdb.NewVariantRepo(db.Pool, varConv)
	productImageRepo := pgdb.NewProductImageRepo(db.Pool, imgConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool, orderConv, itemConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)
	cacheRepo := redis.NewCacheRepo(redisClient, pricingConv, a.cfg.Redis, a.logger)
	imageRepo := s3Repo.NewImageRepo(minioClient, a.cfg.Minio)

	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, a.cfg.Minio, a.logger, appCtx)
	a.closer.Add(func(ctx context.Context) error {
		return imagesInfra.WaitForCleanup(ctx)
	})

	producer, err := kafka.NewProducer(a.logger, a.cfg.Kafka)
	if err != nil {
		a.logger.Errorf(err, "failed to initialize kafka producer")
		return err
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		a.logger.Errorf(err, "failed to ensure kafka topic")
		return err
	}
	a.closer.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, a.logger, producer, db.Dsn)
	outboxWorker.Start(appCtx)
	a.closer.Add(func(ctx context.Context) error {
		outboxWorker.Stop()
		a.logger.Infof("Outbox worker stopped")
		return nil
	})

	txManager := manager.Must(trmpgx.NewDefaultFactory(db.Pool))
	emailSender := email.NewSender(a.cfg.Smtp)

	resolver := usecase.NewPricingResolver(productRepo, variantRepo, cacheRepo, a.logger)
	orderUC := usecase.NewOrderUC(orderRepo, outboxRepo, resolver, txManager, emailSender, a.logger)
	catalogUC := usecase.NewCatalogUC(
		categoryRepo,
		subcategoryRepo,
		productRepo,
		variantRepo,
		productImageRepo,
		imagesInfra,
		cacheRepo,
		txManager,
		a.logger,
	)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, a.cfg.Admin.Token, a.logger)
	router.Init(orderUC, catalogUC)

	httpSrv := v1Http.NewServer(r, a.cfg.Http)
	a.closer.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-appCtx.Done():
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("Shutdown finished with errors: %v", err)
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
}

func (a *App) initPGDB() (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(a.cfg.Db)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(a.logger); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
