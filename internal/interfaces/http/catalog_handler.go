package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/application/dto"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/application/quote"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain"
)

// CatalogHandler maneja los catálogos de apoyo: normas ISO, asesores,
// cuentas bancarias y etapas del flujo de certificación (protegido).
type CatalogHandler struct {
	uc *quote.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *quote.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// CreateStandard POST /api/standards
func (h *CatalogHandler) CreateStandard(c *fiber.Ctx) error {
	var in dto.CreateISOStandardRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.CreateStandard(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code y name son requeridos; los precios no pueden ser negativos"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una norma con ese código"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateStandard PUT /api/standards/:id
func (h *CatalogHandler) UpdateStandard(c *fiber.Ctx) error {
	var in dto.CreateISOStandardRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.UpdateStandard(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "norma no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// ListStandards GET /api/standards
func (h *CatalogHandler) ListStandards(c *fiber.Ctx) error {
	list, err := h.uc.ListStandards()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// ListAdvisors GET /api/advisors
func (h *CatalogHandler) ListAdvisors(c *fiber.Ctx) error {
	list, err := h.uc.ListAdvisors()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// CreateBankAccount POST /api/bank-accounts
func (h *CatalogHandler) CreateBankAccount(c *fiber.Ctx) error {
	var in dto.CreateBankAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.CreateBankAccount(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "bank_name, account_holder, account_number y currency (soles|dolares) son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListBankAccounts GET /api/bank-accounts
func (h *CatalogHandler) ListBankAccounts(c *fiber.Ctx) error {
	list, err := h.uc.ListBankAccounts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// DeleteBankAccount DELETE /api/bank-accounts/:id
func (h *CatalogHandler) DeleteBankAccount(c *fiber.Ctx) error {
	if err := h.uc.DeleteBankAccount(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cuenta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateStep POST /api/certification-steps
func (h *CatalogHandler) CreateStep(c *fiber.Ctx) error {
	var in dto.CreateCertificationStepRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.CreateStep(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title y position (>= 1) son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListSteps GET /api/certification-steps
func (h *CatalogHandler) ListSteps(c *fiber.Ctx) error {
	list, err := h.uc.ListSteps()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
