package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/application/dto"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/application/quote"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain"
)

// AttachmentHandler maneja el PDF institucional adjunto (protegido).
type AttachmentHandler struct {
	uc *quote.AttachmentUseCase
}

// NewAttachmentHandler construye el handler.
func NewAttachmentHandler(uc *quote.AttachmentUseCase) *AttachmentHandler {
	return &AttachmentHandler{uc: uc}
}

// Upload POST /api/attachments (multipart/form-data, campo "file")
func (h *AttachmentHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "campo file (PDF) requerido"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
	}

	resp, err := h.uc.Upload(c.Context(), fileHeader.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "archivo vacío o sin nombre"})
		case errors.Is(err, domain.ErrMalformedDocument):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "MALFORMED_PDF", Message: "el archivo no es un PDF válido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetActive GET /api/attachments/active
func (h *AttachmentHandler) GetActive(c *fiber.Ctx) error {
	resp, err := h.uc.GetActive()
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay adjunto activo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
