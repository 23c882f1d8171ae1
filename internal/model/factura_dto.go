package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jdramirez/facturas-api/internal/domain"
)

// FacturaDTO is the wire projection of a single factura.
type FacturaDTO struct {
	FacturaID   int             `json:"facturaID"`
	Fecha       time.Time       `json:"fecha"`
	Monto       decimal.Decimal `json:"monto"`
	Estado      string          `json:"estado"`
	Descripcion string          `json:"descripcion,omitempty"`
}

// FacturasResponse is the envelope returned by the client query endpoint.
type FacturasResponse struct {
	ClienteID     int             `json:"clienteID"`
	Facturas      []FacturaDTO    `json:"facturas"`
	TotalFacturas int             `json:"totalFacturas"`
	MontoTotal    decimal.Decimal `json:"montoTotal"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// FromDomain fills the DTO from a domain factura. The client id is dropped
// on purpose: the envelope already echoes it once.
func (dto *FacturaDTO) FromDomain(f *domain.Factura) {
	dto.FacturaID = f.FacturaID
	dto.Fecha = f.Fecha
	dto.Monto = f.Monto
	dto.Estado = f.Estado
	dto.Descripcion = f.Descripcion
}

// ToDomain converts the DTO back into a domain factura owned by clienteID.
func (dto *FacturaDTO) ToDomain(clienteID int) *domain.Factura {
	return &domain.Factura{
		FacturaID:   dto.FacturaID,
		ClienteID:   clienteID,
		Fecha:       dto.Fecha,
		Monto:       dto.Monto,
		Estado:      dto.Estado,
		Descripcion: dto.Descripcion,
	}
}
