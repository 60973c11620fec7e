package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/application/auth"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/application/quote"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	QuotationUC  *quote.QuotationUseCase
	PDFUC        *quote.PDFUseCase
	CatalogUC    *quote.CatalogUseCase
	AttachmentUC *quote.AttachmentUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Quotations (protegido)
	quotations := protected.Group("/quotations")
	quotationHandler := NewQuotationHandler(deps.QuotationUC, deps.PDFUC)
	quotations.Post("/", quotationHandler.Create)
	quotations.Get("/", quotationHandler.List)
	quotations.Get("/:id", quotationHandler.GetByID)
	quotations.Patch("/:id/status", quotationHandler.UpdateStatus)
	quotations.Delete("/:id", quotationHandler.Delete)
	quotations.Get("/:id/pdf", quotationHandler.GeneratePDF)

	// Catálogos (protegido)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)

	standards := protected.Group("/standards")
	standards.Post("/", catalogHandler.CreateStandard)
	standards.Get("/", catalogHandler.ListStandards)
	standards.Put("/:id", catalogHandler.UpdateStandard)

	advisors := protected.Group("/advisors")
	advisors.Get("/", catalogHandler.ListAdvisors)

	banks := protected.Group("/bank-accounts")
	banks.Post("/", catalogHandler.CreateBankAccount)
	banks.Get("/", catalogHandler.ListBankAccounts)
	banks.Delete("/:id", catalogHandler.DeleteBankAccount)

	steps := protected.Group("/certification-steps")
	steps.Post("/", catalogHandler.CreateStep)
	steps.Get("/", catalogHandler.ListSteps)

	// Adjunto institucional (protegido)
	attachments := protected.Group("/attachments")
	attachmentHandler := NewAttachmentHandler(deps.AttachmentUC)
	attachments.Post("/", attachmentHandler.Upload)
	attachments.Get("/active", attachmentHandler.GetActive)
}
