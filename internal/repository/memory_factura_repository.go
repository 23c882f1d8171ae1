package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jdramirez/facturas-api/internal/domain"
)

// MemoryFacturaRepository serves facturas from an in-memory slice seeded at
// construction. The data never changes afterwards, so concurrent reads need
// no locking. Lookups return copies; callers never alias the seed.
type MemoryFacturaRepository struct {
	facturas []domain.Factura
}

// NewMemoryFacturaRepository creates a repository with the default seed,
// dated relative to the current time.
func NewMemoryFacturaRepository() *MemoryFacturaRepository {
	return NewMemoryFacturaRepositoryWithData(SeedFacturas(time.Now))
}

// NewMemoryFacturaRepositoryWithData creates a repository over the given
// facturas. The slice is copied so later mutation by the caller cannot leak
// into the store.
func NewMemoryFacturaRepositoryWithData(facturas []domain.Factura) *MemoryFacturaRepository {
	data := make([]domain.Factura, len(facturas))
	copy(data, facturas)
	return &MemoryFacturaRepository{facturas: data}
}

// SeedFacturas builds the default dataset. Dates are offsets from now so the
// set always looks recent; now is injectable for deterministic tests.
func SeedFacturas(now func() time.Time) []domain.Factura {
	t := now()
	return []domain.Factura{
		{FacturaID: 1001, ClienteID: 1, Fecha: t.AddDate(0, 0, -30), Monto: decimal.RequireFromString("1500.50"), Estado: domain.EstadoPagada, Descripcion: "Servicios de consultoría"},
		{FacturaID: 1002, ClienteID: 1, Fecha: t.AddDate(0, 0, -20), Monto: decimal.RequireFromString("2300.75"), Estado: domain.EstadoPendiente, Descripcion: "Desarrollo de software"},
		{FacturaID: 1003, ClienteID: 1, Fecha: t.AddDate(0, 0, -15), Monto: decimal.RequireFromString("850.00"), Estado: domain.EstadoPagada, Descripcion: "Mantenimiento"},
		{FacturaID: 1004, ClienteID: 1, Fecha: t.AddDate(0, 0, -10), Monto: decimal.RequireFromString("3200.00"), Estado: domain.EstadoVencida, Descripcion: "Proyecto especial"},
		{FacturaID: 1005, ClienteID: 1, Fecha: t.AddDate(0, 0, -5), Monto: decimal.RequireFromString("500.25"), Estado: domain.EstadoAnulada, Descripcion: "Cancelado"},

		{FacturaID: 2001, ClienteID: 2, Fecha: t.AddDate(0, 0, -25), Monto: decimal.RequireFromString("4500.00"), Estado: domain.EstadoPagada, Descripcion: "Infraestructura"},
		{FacturaID: 2002, ClienteID: 2, Fecha: t.AddDate(0, 0, -18), Monto: decimal.RequireFromString("1200.50"), Estado: domain.EstadoPendiente, Descripcion: "Soporte técnico"},
		{FacturaID: 2003, ClienteID: 2, Fecha: t.AddDate(0, 0, -8), Monto: decimal.RequireFromString("6700.00"), Estado: domain.EstadoVencida, Descripcion: "Licencias"},

		{FacturaID: 3001, ClienteID: 3, Fecha: t.AddDate(0, 0, -40), Monto: decimal.RequireFromString("890.00"), Estado: domain.EstadoPagada, Descripcion: "Capacitación"},
		{FacturaID: 3002, ClienteID: 3, Fecha: t.AddDate(0, 0, -12), Monto: decimal.RequireFromString("1500.00"), Estado: domain.EstadoPendiente, Descripcion: "Auditoría"},
	}
}

// GetFacturasByClienteID returns copies of every factura owned by the client,
// in seed order.
func (r *MemoryFacturaRepository) GetFacturasByClienteID(ctx context.Context, clienteID int) ([]*domain.Factura, error) {
	facturas := make([]*domain.Factura, 0)
	for i := range r.facturas {
		if r.facturas[i].ClienteID != clienteID {
			continue
		}
		f := r.facturas[i]
		facturas = append(facturas, &f)
	}
	return facturas, nil
}

// GetFacturaByID returns a copy of the factura with the given id, or
// ErrFacturaNotFound.
func (r *MemoryFacturaRepository) GetFacturaByID(ctx context.Context, facturaID int) (*domain.Factura, error) {
	for i := range r.facturas {
		if r.facturas[i].FacturaID == facturaID {
			f := r.facturas[i]
			return &f, nil
		}
	}
	return nil, ErrFacturaNotFound
}
