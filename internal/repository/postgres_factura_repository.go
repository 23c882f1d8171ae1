package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jdramirez/facturas-api/internal/domain"
)

// PostgresFacturaRepository implements FacturaRepository over a PostgreSQL
// pool. Rows come back in store order; the service owns filtering and
// sorting, same as with the in-memory store.
type PostgresFacturaRepository struct {
	db *pgxpool.Pool
}

// NewPostgresFacturaRepository creates a new PostgreSQL factura repository.
func NewPostgresFacturaRepository(db *pgxpool.Pool) *PostgresFacturaRepository {
	return &PostgresFacturaRepository{
		db: db,
	}
}

// GetFacturasByClienteID retrieves every factura belonging to the client.
func (r *PostgresFacturaRepository) GetFacturasByClienteID(ctx context.Context, clienteID int) ([]*domain.Factura, error) {
	rows, err := r.db.Query(ctx, `
		SELECT factura_id, cliente_id, fecha, monto::text, estado, COALESCE(descripcion, '')
		FROM facturas
		WHERE cliente_id = $1
	`, clienteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query facturas: %w", err)
	}
	defer rows.Close()

	facturas := make([]*domain.Factura, 0)
	for rows.Next() {
		f, err := scanFactura(rows)
		if err != nil {
			return nil, err
		}
		facturas = append(facturas, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating facturas: %w", err)
	}

	return facturas, nil
}

// GetFacturaByID retrieves the factura with the given id, or
// ErrFacturaNotFound.
func (r *PostgresFacturaRepository) GetFacturaByID(ctx context.Context, facturaID int) (*domain.Factura, error) {
	row := r.db.QueryRow(ctx, `
		SELECT factura_id, cliente_id, fecha, monto::text, estado, COALESCE(descripcion, '')
		FROM facturas
		WHERE factura_id = $1
	`, facturaID)

	f, err := scanFactura(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFacturaNotFound
		}
		return nil, err
	}
	return f, nil
}

// scanFactura reads one factura row. Monto travels as text so the NUMERIC
// value keeps its exact precision.
func scanFactura(row pgx.Row) (*domain.Factura, error) {
	var f domain.Factura
	var monto string
	if err := row.Scan(&f.FacturaID, &f.ClienteID, &f.Fecha, &monto, &f.Estado, &f.Descripcion); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan factura: %w", err)
	}

	m, err := decimal.NewFromString(monto)
	if err != nil {
		return nil, fmt.Errorf("invalid monto %q for factura %d: %w", monto, f.FacturaID, err)
	}
	f.Monto = m

	return &f, nil
}
