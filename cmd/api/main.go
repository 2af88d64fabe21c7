package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/VasBayern/mobile-project/internal/config"
	"github.com/VasBayern/mobile-project/internal/domain/model"
	"github.com/VasBayern/mobile-project/internal/handler"
	"github.com/VasBayern/mobile-project/internal/infra/db"
	infraRepo "github.com/VasBayern/mobile-project/internal/infra/repository"
	"github.com/VasBayern/mobile-project/internal/server"
	"github.com/VasBayern/mobile-project/internal/storage"
	"github.com/VasBayern/mobile-project/internal/storage/localfs"
	"github.com/VasBayern/mobile-project/internal/usecase"
)

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(userID int64, role model.Role, tokenVersion int, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": int(role),
		"tv":   tokenVersion,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	// コンテナでは任意。envはオーケストレータから来ることもある
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("GO_ENV") == "dev" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect")
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Brand{},
		&model.Color{},
		&model.Ram{},
		&model.Rom{},
		&model.Product{},
		&model.ProductImage{},
	); err != nil {
		logger.Fatal().Err(err).Msg("migrate")
	}

	store := localfs.New(cfg.StorageDir, cfg.StorageURL)
	images := storage.NewImageLifecycle(store)

	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	brandRepo := infraRepo.NewBrandGormRepository(gormDB)
	colorRepo := infraRepo.NewColorGormRepository(gormDB)
	ramRepo := infraRepo.NewRamGormRepository(gormDB)
	romRepo := infraRepo.NewRomGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	clock := realClock{}
	issuer := &jwtIssuer{secret: []byte(cfg.JWTSecret), accessTTL: cfg.AccessTTL}

	authUC := usecase.NewAuthUsecase(userRepo, issuer, cfg, clock)
	userUC := usecase.NewUserUsecase(userRepo, txManager, images, cfg)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo, productRepo, txManager, images, cfg, clock)
	brandUC := usecase.NewBrandUsecase(brandRepo, productRepo, txManager, images, cfg, clock)
	colorUC := usecase.NewColorUsecase(colorRepo, cfg, clock)
	ramUC := usecase.NewRamUsecase(ramRepo, cfg, clock)
	romUC := usecase.NewRomUsecase(romRepo, cfg, clock)
	productUC := usecase.NewProductUsecase(productRepo, categoryRepo, brandRepo, txManager, images, cfg, clock)

	e := server.New(cfg, logger, userRepo, server.Handlers{
		Auth:     handler.NewAuthHandler(authUC),
		User:     handler.NewUserHandler(userUC),
		Category: handler.NewCategoryHandler(categoryUC, clock),
		Brand:    handler.NewBrandHandler(brandUC, clock),
		Color:    handler.NewColorHandler(colorUC, clock),
		Ram:      handler.NewRamHandler(ramUC, clock),
		Rom:      handler.NewRomHandler(romUC, clock),
		Product:  handler.NewProductHandler(productUC, clock),
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			logger.Info().Err(err).Msg("server stopped")
		}
	}()
	logger.Info().Str("port", cfg.Port).Msg("listening")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
}
