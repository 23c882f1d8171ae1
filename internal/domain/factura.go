package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados conocidos de una factura. The vocabulary is open: the store may
// introduce new values, and only Anulada carries behavior (excluded from
// client-facing query results).
const (
	EstadoPagada    = "Pagada"
	EstadoPendiente = "Pendiente"
	EstadoVencida   = "Vencida"
	EstadoAnulada   = "Anulada"
)

// Factura represents a billing record issued to a client.
type Factura struct {
	FacturaID   int             `json:"facturaID"`
	ClienteID   int             `json:"clienteID"`
	Fecha       time.Time       `json:"fecha"`
	Monto       decimal.Decimal `json:"monto"`
	Estado      string          `json:"estado"`
	Descripcion string          `json:"descripcion,omitempty"`
}

// Anulada reports whether the factura was voided. The match is exact and
// case-sensitive on the stored value.
func (f *Factura) Anulada() bool {
	return f.Estado == EstadoAnulada
}
