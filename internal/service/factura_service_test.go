package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/jdramirez/facturas-api/internal/domain"
	"github.com/jdramirez/facturas-api/internal/repository"
)

// fixedNow pins the seed clock so fecha assertions are deterministic.
var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) FacturaService {
	repo := repository.NewMemoryFacturaRepositoryWithData(
		repository.SeedFacturas(func() time.Time { return fixedNow }),
	)
	return NewFacturaService(repo, zaptest.NewLogger(t))
}

func TestGetFacturasByClienteID_ExcludesAnuladasAndTotals(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.GetFacturasByClienteID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.ClienteID)
	assert.Equal(t, 4, resp.TotalFacturas)
	assert.Len(t, resp.Facturas, 4)
	assert.True(t, decimal.RequireFromString("7851.25").Equal(resp.MontoTotal),
		"expected monto total 7851.25, got %s", resp.MontoTotal)

	// The Anulada factura (1005) never shows up.
	for _, f := range resp.Facturas {
		assert.NotEqual(t, domain.EstadoAnulada, f.Estado)
		assert.NotEqual(t, 1005, f.FacturaID)
	}

	// Most recent first: -10, -15, -20, -30 days.
	expectedOrder := []int{1004, 1003, 1002, 1001}
	for i, f := range resp.Facturas {
		assert.Equal(t, expectedOrder[i], f.FacturaID)
	}
}

func TestGetFacturasByClienteID_SortedByFechaDescending(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.GetFacturasByClienteID(context.Background(), 2)
	require.NoError(t, err)

	require.Equal(t, 3, resp.TotalFacturas)
	for i := 1; i < len(resp.Facturas); i++ {
		assert.False(t, resp.Facturas[i].Fecha.After(resp.Facturas[i-1].Fecha),
			"facturas must be ordered by fecha descending")
	}
}

func TestGetFacturasByClienteID_ClienteTres(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.GetFacturasByClienteID(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.TotalFacturas)
	assert.True(t, decimal.RequireFromString("2390.00").Equal(resp.MontoTotal))
	// Pendiente (-12 days) before Pagada (-40 days).
	assert.Equal(t, 3002, resp.Facturas[0].FacturaID)
	assert.Equal(t, 3001, resp.Facturas[1].FacturaID)
}

func TestGetFacturasByClienteID_ClienteSinFacturas(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.GetFacturasByClienteID(context.Background(), 999)
	require.NoError(t, err)

	assert.Equal(t, 999, resp.ClienteID)
	assert.Equal(t, 0, resp.TotalFacturas)
	assert.Empty(t, resp.Facturas)
	assert.True(t, resp.MontoTotal.IsZero())
}

func TestGetFacturasByClienteID_SoloAnuladas(t *testing.T) {
	repo := repository.NewMemoryFacturaRepositoryWithData([]domain.Factura{
		{FacturaID: 5001, ClienteID: 5, Fecha: fixedNow, Monto: decimal.RequireFromString("100.00"), Estado: domain.EstadoAnulada},
		{FacturaID: 5002, ClienteID: 5, Fecha: fixedNow.AddDate(0, 0, -1), Monto: decimal.RequireFromString("200.00"), Estado: domain.EstadoAnulada},
	})
	svc := NewFacturaService(repo, zaptest.NewLogger(t))

	resp, err := svc.GetFacturasByClienteID(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, 0, resp.TotalFacturas)
	assert.Empty(t, resp.Facturas)
	assert.True(t, resp.MontoTotal.IsZero())
}

func TestGetFacturasByClienteID_FechaEmpatadaDesempataPorID(t *testing.T) {
	misma := fixedNow.AddDate(0, 0, -3)
	repo := repository.NewMemoryFacturaRepositoryWithData([]domain.Factura{
		{FacturaID: 7001, ClienteID: 7, Fecha: misma, Monto: decimal.RequireFromString("10.00"), Estado: domain.EstadoPagada},
		{FacturaID: 7003, ClienteID: 7, Fecha: misma, Monto: decimal.RequireFromString("30.00"), Estado: domain.EstadoPendiente},
		{FacturaID: 7002, ClienteID: 7, Fecha: misma, Monto: decimal.RequireFromString("20.00"), Estado: domain.EstadoPagada},
	})
	svc := NewFacturaService(repo, zaptest.NewLogger(t))

	resp, err := svc.GetFacturasByClienteID(context.Background(), 7)
	require.NoError(t, err)

	require.Equal(t, 3, resp.TotalFacturas)
	assert.Equal(t, 7003, resp.Facturas[0].FacturaID)
	assert.Equal(t, 7002, resp.Facturas[1].FacturaID)
	assert.Equal(t, 7001, resp.Facturas[2].FacturaID)
}

func TestGetFacturasByClienteID_MontoTotalExacto(t *testing.T) {
	// 0.1 + 0.2 is the classic float trap; decimal keeps it exact.
	repo := repository.NewMemoryFacturaRepositoryWithData([]domain.Factura{
		{FacturaID: 8001, ClienteID: 8, Fecha: fixedNow, Monto: decimal.RequireFromString("0.1"), Estado: domain.EstadoPagada},
		{FacturaID: 8002, ClienteID: 8, Fecha: fixedNow, Monto: decimal.RequireFromString("0.2"), Estado: domain.EstadoPendiente},
	})
	svc := NewFacturaService(repo, zaptest.NewLogger(t))

	resp, err := svc.GetFacturasByClienteID(context.Background(), 8)
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("0.3").Equal(resp.MontoTotal),
		"expected exactly 0.3, got %s", resp.MontoTotal)
}

type failingRepository struct {
	err error
}

func (r *failingRepository) GetFacturasByClienteID(ctx context.Context, clienteID int) ([]*domain.Factura, error) {
	return nil, r.err
}

func (r *failingRepository) GetFacturaByID(ctx context.Context, facturaID int) (*domain.Factura, error) {
	return nil, r.err
}

func TestGetFacturasByClienteID_PropagatesRepositoryError(t *testing.T) {
	storeErr := errors.New("store exploded")
	svc := NewFacturaService(&failingRepository{err: storeErr}, zaptest.NewLogger(t))

	resp, err := svc.GetFacturasByClienteID(context.Background(), 1)
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, storeErr), "repository error must propagate unchanged")
}
