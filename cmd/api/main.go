package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/application/auth"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/application/quote"
	infrapdf "github.com/ksistemasccd-bit/iso-quote-craft/internal/infrastructure/pdf"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/infrastructure/postgres"
	httpRouter "github.com/ksistemasccd-bit/iso-quote-craft/internal/interfaces/http"
	"github.com/ksistemasccd-bit/iso-quote-craft/pkg/config"
	"github.com/ksistemasccd-bit/iso-quote-craft/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	quotationRepo := postgres.NewQuotationRepository(pool)
	isoRepo := postgres.NewISOStandardRepository(pool)
	advisorRepo := postgres.NewAdvisorRepository(pool)
	bankRepo := postgres.NewBankAccountRepository(pool)
	stepRepo := postgres.NewCertificationStepRepository(pool)
	attachRepo := postgres.NewAttachedFileRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	quotationUC := quote.NewQuotationUseCase(txRunner, quotationRepo, advisorRepo, isoRepo)
	catalogUC := quote.NewCatalogUseCase(isoRepo, advisorRepo, bankRepo, stepRepo)

	// PDF: render de la cotización + adjunto institucional
	renderer := infrapdf.NewMarotoQuotationRenderer(cfg.App.Name)
	pdfcpuSvc := infrapdf.NewPDFCpu()
	pdfUC := quote.NewPDFUseCase(
		quotationRepo, isoRepo, advisorRepo, stepRepo, bankRepo, attachRepo,
		renderer, pdfcpuSvc, cfg.PDF.RenderTimeout,
	)
	attachmentUC := quote.NewAttachmentUseCase(txRunner, attachRepo, pdfcpuSvc)

	authUC := auth.NewAuthUseCase(advisorRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // descarga de PDF con adjunto
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 * 1024 * 1024, // adjuntos institucionales
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if mw := httpRouter.SwaggerUI("./docs/swagger.json", "ISO Quote API"); mw != nil {
		app.Use(mw)
	} else {
		log.Warn().Msg("docs/swagger.json no encontrado, Swagger UI deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		QuotationUC:  quotationUC,
		PDFUC:        pdfUC,
		CatalogUC:    catalogUC,
		AttachmentUC: attachmentUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
