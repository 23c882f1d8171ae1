package repository

import (
	"context"
	"errors"

	"github.com/jdramirez/facturas-api/internal/domain"
)

// ErrFacturaNotFound is returned by GetFacturaByID when no factura has the
// given id. Callers treat it as absence, not as a data-layer failure.
var ErrFacturaNotFound = errors.New("factura not found")

// FacturaRepository defines the interface for factura data access.
type FacturaRepository interface {
	// GetFacturasByClienteID returns every factura belonging to the client,
	// in store order. Filtering and sorting are the service's job. An
	// unknown client yields an empty slice, not an error.
	GetFacturasByClienteID(ctx context.Context, clienteID int) ([]*domain.Factura, error)

	// GetFacturaByID returns the factura with the given id, or
	// ErrFacturaNotFound.
	GetFacturaByID(ctx context.Context, facturaID int) (*domain.Factura, error)
}
