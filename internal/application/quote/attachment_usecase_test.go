package quote

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/entity"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/repository"
)

// fakeAttachedFileRepo mantiene el historial completo para poder verificar
// que solo un adjunto queda activo. failInsert simula un INSERT que falla
// después de haber desactivado el adjunto vigente.
type fakeAttachedFileRepo struct {
	files      []*entity.AttachedFile
	failInsert bool
}

func (r *fakeAttachedFileRepo) SaveAsActive(f *entity.AttachedFile) error {
	for _, old := range r.files {
		old.IsActive = false
	}
	if r.failInsert {
		return errors.New("insert attached_file: conexión perdida")
	}
	cp := *f
	r.files = append(r.files, &cp)
	return nil
}

func (r *fakeAttachedFileRepo) GetActive() (*entity.AttachedFile, error) {
	for _, f := range r.files {
		if f.IsActive {
			return f, nil
		}
	}
	return nil, nil
}

// fakeAttachmentTxRunner emula la semántica transaccional: si fn falla,
// restaura el estado del repositorio al snapshot previo (rollback).
type fakeAttachmentTxRunner struct {
	repo *fakeAttachedFileRepo
}

func (r *fakeAttachmentTxRunner) RunAttachment(_ context.Context, fn func(repo repository.AttachedFileRepository) error) error {
	snapshot := make([]*entity.AttachedFile, len(r.repo.files))
	for i, f := range r.repo.files {
		cp := *f
		snapshot[i] = &cp
	}
	if err := fn(r.repo); err != nil {
		r.repo.files = snapshot
		return err
	}
	return nil
}

// fakeValidator acepta cualquier buffer que empiece con %PDF.
type fakeValidator struct{}

func (fakeValidator) Validate(data []byte) error {
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return domain.ErrMalformedDocument
	}
	return nil
}

func newAttachmentUseCase() (*AttachmentUseCase, *fakeAttachedFileRepo) {
	repo := &fakeAttachedFileRepo{}
	uc := NewAttachmentUseCase(&fakeAttachmentTxRunner{repo: repo}, repo, fakeValidator{})
	return uc, repo
}

func TestUpload_SoloUnAdjuntoActivo(t *testing.T) {
	uc, repo := newAttachmentUseCase()

	_, err := uc.Upload(context.Background(), "brochure-v1.pdf", []byte("%PDF-1.7 v1"))
	require.NoError(t, err)
	second, err := uc.Upload(context.Background(), "brochure-v2.pdf", []byte("%PDF-1.7 v2"))
	require.NoError(t, err)

	active, err := uc.GetActive()
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
	assert.Equal(t, "brochure-v2.pdf", active.FileName)

	// El anterior quedó desactivado, no borrado
	count := 0
	for _, f := range repo.files {
		if f.IsActive {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Len(t, repo.files, 2)
}

func TestUpload_InsertFallidoConservaElAdjuntoAnterior(t *testing.T) {
	uc, repo := newAttachmentUseCase()

	first, err := uc.Upload(context.Background(), "brochure-v1.pdf", []byte("%PDF-1.7 v1"))
	require.NoError(t, err)

	// La desactivación y la inserción van en la misma transacción: si la
	// inserción falla, el adjunto vigente no debe quedar desactivado.
	repo.failInsert = true
	_, err = uc.Upload(context.Background(), "brochure-v2.pdf", []byte("%PDF-1.7 v2"))
	require.Error(t, err)

	active, err := uc.GetActive()
	require.NoError(t, err)
	assert.Equal(t, first.ID, active.ID)
	assert.Equal(t, "brochure-v1.pdf", active.FileName)
}

func TestUpload_RechazaPDFMalformado(t *testing.T) {
	uc, _ := newAttachmentUseCase()

	_, err := uc.Upload(context.Background(), "roto.pdf", []byte("no es un pdf"))
	assert.ErrorIs(t, err, domain.ErrMalformedDocument)

	// Nada quedó persistido
	_, err = uc.GetActive()
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpload_EntradaVacia(t *testing.T) {
	uc, _ := newAttachmentUseCase()

	_, err := uc.Upload(context.Background(), "", []byte("%PDF-1.7"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Upload(context.Background(), "vacio.pdf", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
