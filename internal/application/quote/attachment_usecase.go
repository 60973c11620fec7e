package quote

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/application/dto"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/entity"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/repository"
)

// AttachmentUseCase gestiona el PDF institucional que se concatena a cada
// cotización generada. La subida valida la estructura del documento antes de
// persistirlo; un PDF corrupto aquí rompería todas las descargas.
type AttachmentUseCase struct {
	txRunner  AttachmentTxRunner
	repo      repository.AttachedFileRepository
	validator DocumentValidator
}

// NewAttachmentUseCase construye el caso de uso.
func NewAttachmentUseCase(txRunner AttachmentTxRunner, repo repository.AttachedFileRepository, validator DocumentValidator) *AttachmentUseCase {
	return &AttachmentUseCase{txRunner: txRunner, repo: repo, validator: validator}
}

// Upload valida y guarda un nuevo adjunto como el activo, desactivando el
// anterior en la misma transacción. Un buffer que no sea un PDF válido
// retorna ErrMalformedDocument.
func (uc *AttachmentUseCase) Upload(ctx context.Context, fileName string, data []byte) (*dto.AttachedFileResponse, error) {
	if fileName == "" || len(data) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validator.Validate(data); err != nil {
		return nil, err
	}
	f := &entity.AttachedFile{
		ID:        uuid.New().String(),
		FileName:  fileName,
		Data:      data,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	err := uc.txRunner.RunAttachment(ctx, func(repo repository.AttachedFileRepository) error {
		return repo.SaveAsActive(f)
	})
	if err != nil {
		return nil, err
	}
	return toAttachedFileResponse(f), nil
}

// GetActive devuelve los metadatos del adjunto activo, o ErrNotFound si no
// hay ninguno.
func (uc *AttachmentUseCase) GetActive() (*dto.AttachedFileResponse, error) {
	f, err := uc.repo.GetActive()
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	return toAttachedFileResponse(f), nil
}

func toAttachedFileResponse(f *entity.AttachedFile) *dto.AttachedFileResponse {
	return &dto.AttachedFileResponse{
		ID:       f.ID,
		FileName: f.FileName,
		IsActive: f.IsActive,
	}
}
