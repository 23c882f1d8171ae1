package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jdramirez/facturas-api/internal/domain"
	"github.com/jdramirez/facturas-api/internal/model"
	"github.com/jdramirez/facturas-api/internal/repository"
)

// FacturaService exposes the factura query operations used by the API layer.
type FacturaService interface {
	// GetFacturasByClienteID returns the non-anuladas facturas of a client,
	// most recent first, together with their count and exact amount total.
	// A client with no facturas yields an empty, zero-total response, not an
	// error.
	GetFacturasByClienteID(ctx context.Context, clienteID int) (*model.FacturasResponse, error)
}

type facturaService struct {
	repo   repository.FacturaRepository
	logger *zap.Logger
}

// NewFacturaService creates a FacturaService over the given repository.
func NewFacturaService(repo repository.FacturaRepository, logger *zap.Logger) FacturaService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &facturaService{
		repo:   repo,
		logger: logger,
	}
}

// GetFacturasByClienteID implements the query pipeline: fetch, drop
// anuladas, sort by fecha descending (ties by facturaID descending so the
// order is deterministic regardless of store order), project and total.
func (s *facturaService) GetFacturasByClienteID(ctx context.Context, clienteID int) (*model.FacturasResponse, error) {
	facturas, err := s.repo.GetFacturasByClienteID(ctx, clienteID)
	if err != nil {
		s.logger.Error("failed to retrieve facturas",
			zap.Int("cliente_id", clienteID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to retrieve facturas for cliente %d: %w", clienteID, err)
	}

	vigentes := make([]*domain.Factura, 0, len(facturas))
	for _, f := range facturas {
		if f.Anulada() {
			continue
		}
		vigentes = append(vigentes, f)
	}

	sort.SliceStable(vigentes, func(i, j int) bool {
		if !vigentes[i].Fecha.Equal(vigentes[j].Fecha) {
			return vigentes[i].Fecha.After(vigentes[j].Fecha)
		}
		return vigentes[i].FacturaID > vigentes[j].FacturaID
	})

	dtos := make([]model.FacturaDTO, len(vigentes))
	montoTotal := decimal.Zero
	for i, f := range vigentes {
		dtos[i].FromDomain(f)
		montoTotal = montoTotal.Add(f.Monto)
	}

	response := &model.FacturasResponse{
		ClienteID:     clienteID,
		Facturas:      dtos,
		TotalFacturas: len(dtos),
		MontoTotal:    montoTotal,
	}

	s.logger.Info("facturas query completed",
		zap.Int("cliente_id", clienteID),
		zap.Int("total_facturas", response.TotalFacturas),
		zap.String("monto_total", response.MontoTotal.String()),
	)

	return response, nil
}
