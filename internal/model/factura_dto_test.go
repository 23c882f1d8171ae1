package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jdramirez/facturas-api/internal/domain"
)

func TestFacturaDTO_RoundTrip(t *testing.T) {
	original := &domain.Factura{
		FacturaID:   1002,
		ClienteID:   1,
		Fecha:       time.Date(2025, 5, 26, 9, 30, 0, 0, time.UTC),
		Monto:       decimal.RequireFromString("2300.75"),
		Estado:      domain.EstadoPendiente,
		Descripcion: "Desarrollo de software",
	}

	var dto FacturaDTO
	dto.FromDomain(original)
	recovered := dto.ToDomain(original.ClienteID)

	assert.Equal(t, original.FacturaID, recovered.FacturaID)
	assert.Equal(t, original.ClienteID, recovered.ClienteID)
	assert.True(t, original.Fecha.Equal(recovered.Fecha))
	assert.True(t, original.Monto.Equal(recovered.Monto))
	assert.Equal(t, original.Estado, recovered.Estado)
	assert.Equal(t, original.Descripcion, recovered.Descripcion)
}

func TestFacturaDTO_RoundTripEmptyDescripcion(t *testing.T) {
	original := &domain.Factura{
		FacturaID: 9001,
		ClienteID: 9,
		Fecha:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Monto:     decimal.Zero,
		Estado:    domain.EstadoPagada,
	}

	var dto FacturaDTO
	dto.FromDomain(original)
	recovered := dto.ToDomain(original.ClienteID)

	assert.Empty(t, recovered.Descripcion)
	assert.True(t, original.Monto.Equal(recovered.Monto))
}
