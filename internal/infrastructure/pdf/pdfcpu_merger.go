package pdf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/application/quote"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain"
)

var (
	_ quote.DocumentMerger    = (*PDFCpu)(nil)
	_ quote.DocumentValidator = (*PDFCpu)(nil)
)

// PDFCpu implementa validación y concatenación de documentos con pdfcpu.
type PDFCpu struct {
	conf *model.Configuration
}

// NewPDFCpu construye el adaptador con la configuración por defecto de pdfcpu.
func NewPDFCpu() *PDFCpu {
	return &PDFCpu{conf: model.NewDefaultConfiguration()}
}

// Validate verifica que data sea un PDF estructuralmente válido.
func (p *PDFCpu) Validate(data []byte) error {
	if err := api.Validate(bytes.NewReader(data), p.conf); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
	}
	return nil
}

// Merge concatena attachment al final de base, página a página, y devuelve el
// documento resultante. Ambas entradas se validan antes de mezclar.
func (p *PDFCpu) Merge(base, attachment []byte) ([]byte, error) {
	if err := p.Validate(base); err != nil {
		return nil, err
	}
	if err := p.Validate(attachment); err != nil {
		return nil, err
	}

	readers := []io.ReadSeeker{bytes.NewReader(base), bytes.NewReader(attachment)}
	var out bytes.Buffer
	if err := api.MergeRaw(readers, &out, false, p.conf); err != nil {
		return nil, fmt.Errorf("merge documentos: %w", err)
	}
	return out.Bytes(), nil
}
