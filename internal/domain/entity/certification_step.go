package entity

// CertificationStep es una etapa del flujo de certificación que se muestra
// en el documento (ej. auditoría fase 1, fase 2, emisión del certificado).
type CertificationStep struct {
	ID          string
	Position    int
	Title       string
	Description string
}
