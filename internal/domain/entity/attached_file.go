package entity

import "time"

// AttachedFile es un PDF complementario (brochure institucional) que se
// concatena al final de la cotización generada. Solo uno puede estar activo.
type AttachedFile struct {
	ID        string
	FileName  string
	Data      []byte
	IsActive  bool
	CreatedAt time.Time
}
