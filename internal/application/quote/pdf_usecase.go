package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/repository"
)

// Etiquetas de servicio tal como aparecen en el resumen de precios del
// documento.
const (
	ServiceCertification   = "Certificación"
	ServiceFollowUp        = "Seguimiento 1 y 2"
	ServiceRecertification = "Recertificación"
)

// PDFUseCase arma la vista completa de una cotización, la renderiza a PDF y
// le concatena el adjunto institucional activo si existe.
type PDFUseCase struct {
	quotationRepo repository.QuotationRepository
	isoRepo       repository.ISOStandardRepository
	advisorRepo   repository.AdvisorRepository
	stepRepo      repository.CertificationStepRepository
	bankRepo      repository.BankAccountRepository
	attachRepo    repository.AttachedFileRepository
	renderer      DocumentRenderer
	merger        DocumentMerger
	renderTimeout time.Duration
}

// NewPDFUseCase construye el caso de uso. renderTimeout acota el render; un
// valor no positivo se normaliza a 30 segundos.
func NewPDFUseCase(
	quotationRepo repository.QuotationRepository,
	isoRepo repository.ISOStandardRepository,
	advisorRepo repository.AdvisorRepository,
	stepRepo repository.CertificationStepRepository,
	bankRepo repository.BankAccountRepository,
	attachRepo repository.AttachedFileRepository,
	renderer DocumentRenderer,
	merger DocumentMerger,
	renderTimeout time.Duration,
) *PDFUseCase {
	if renderTimeout <= 0 {
		renderTimeout = 30 * time.Second
	}
	return &PDFUseCase{
		quotationRepo: quotationRepo,
		isoRepo:       isoRepo,
		advisorRepo:   advisorRepo,
		stepRepo:      stepRepo,
		bankRepo:      bankRepo,
		attachRepo:    attachRepo,
		renderer:      renderer,
		merger:        merger,
		renderTimeout: renderTimeout,
	}
}

// Generate produce el PDF final de la cotización y su nombre de archivo
// ({código}.pdf). Si hay un adjunto institucional activo, el resultado es la
// cotización seguida del adjunto, página a página.
func (uc *PDFUseCase) Generate(ctx context.Context, quotationID string) ([]byte, string, error) {
	doc, err := uc.buildDocument(quotationID)
	if err != nil {
		return nil, "", err
	}

	renderCtx, cancel := context.WithTimeout(ctx, uc.renderTimeout)
	defer cancel()

	data, err := uc.renderer.Render(renderCtx, doc)
	if err != nil {
		return nil, "", err
	}

	attachment, err := uc.attachRepo.GetActive()
	if err != nil {
		return nil, "", err
	}
	if attachment != nil {
		data, err = uc.merger.Merge(data, attachment.Data)
		if err != nil {
			return nil, "", fmt.Errorf("concatenar adjunto %s: %w", attachment.FileName, err)
		}
	}

	return data, doc.Quotation.Code + ".pdf", nil
}

// buildDocument carga cabecera, líneas, asesor, flujo y cuentas, y expande
// cada selección en una línea visual por servicio habilitado.
func (uc *PDFUseCase) buildDocument(quotationID string) (*Document, error) {
	q, err := uc.quotationRepo.GetByID(quotationID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}

	isos, err := uc.quotationRepo.GetISOsByQuotationID(quotationID)
	if err != nil {
		return nil, err
	}

	var items []DocumentItem
	for _, sel := range isos {
		std, err := uc.isoRepo.GetByID(sel.ISOID)
		if err != nil {
			return nil, err
		}
		code, name := sel.ISOID, ""
		if std != nil {
			code, name = std.Code, std.Name
		}
		if sel.Certification {
			items = append(items, DocumentItem{
				StandardCode: code, StandardName: name,
				Service: ServiceCertification, Amount: sel.CertificationPrice,
			})
		}
		if sel.FollowUp {
			items = append(items, DocumentItem{
				StandardCode: code, StandardName: name,
				Service: ServiceFollowUp, Amount: sel.FollowUpPrice,
			})
		}
		if sel.Recertification {
			items = append(items, DocumentItem{
				StandardCode: code, StandardName: name,
				Service: ServiceRecertification, Amount: sel.RecertificationPrice,
			})
		}
	}

	advisor, err := uc.advisorRepo.GetByID(q.AdvisorID)
	if err != nil {
		return nil, err
	}
	steps, err := uc.stepRepo.List()
	if err != nil {
		return nil, err
	}
	banks, err := uc.bankRepo.List()
	if err != nil {
		return nil, err
	}

	return &Document{
		Quotation:    q,
		Items:        items,
		Advisor:      advisor,
		Steps:        steps,
		BankAccounts: banks,
	}, nil
}
