package repository

import "github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/entity"

// AttachedFileRepository define el puerto de persistencia para el PDF
// adjunto institucional. Solo un archivo puede estar activo a la vez.
type AttachedFileRepository interface {
	// SaveAsActive guarda el archivo y desactiva cualquier otro activo.
	SaveAsActive(f *entity.AttachedFile) error
	// GetActive devuelve el adjunto activo, o nil si no hay ninguno.
	GetActive() (*entity.AttachedFile, error)
}
