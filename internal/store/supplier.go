package store

import (
	"context"
	"fmt"
	"time"

	"fornecedores/internal/utils"
	"fornecedores/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const supplierTableName = "fornecedores.suppliers"

var supplierColumns = utils.StructTagValues(types.Supplier{})

type SupplierRepository struct {
	pool *pgxpool.Pool
}

func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepository {
	return &SupplierRepository{pool: pool}
}

func supplierListQuery() sq.SelectBuilder {
	return psql().Select(supplierColumns...).
		From(supplierTableName).
		OrderBy("created_at DESC")
}

func (r *SupplierRepository) Suppliers(ctx context.Context) ([]*types.Supplier, error) {
	query, args, err := supplierListQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate supplier list query: %w", err)
	}

	suppliers := make([]*types.Supplier, 0)
	err = pgxscan.Select(ctx, r.pool, &suppliers, query, args...)
	if err != nil {
		return nil, err
	}

	return suppliers, nil
}

func (r *SupplierRepository) Supplier(ctx context.Context, supplierID string) (*types.Supplier, error) {
	query, args, err := psql().Select(supplierColumns...).
		From(supplierTableName).
		Where(sq.Eq{"id": supplierID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate supplier query: %w", err)
	}

	var supplier = new(types.Supplier)
	err = pgxscan.Get(ctx, r.pool, supplier, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrSupplierNotFound
		}
		return nil, err
	}

	return supplier, nil
}

func (r *SupplierRepository) CreateSupplier(ctx context.Context, supplier *types.Supplier) error {
	supplier.ID = utils.NanoID()
	supplier.CreatedAt = time.Now()
	if supplier.Status == "" {
		supplier.Status = types.SupplierStatusActive
	}

	query, args, err := psql().Insert(supplierTableName).
		SetMap(utils.StructToMap(supplier)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert supplier query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create supplier")
}

// UpdateSupplier overwrites every stored field. Contracts and
// documents that copied this supplier's name at creation time keep the
// old copy.
func (r *SupplierRepository) UpdateSupplier(ctx context.Context, supplierID string, supplier *types.Supplier) error {
	supplier.ID = supplierID
	supplier.UpdatedAt = utils.TimePtr(time.Now())

	query, args, err := psql().Update(supplierTableName).
		SetMap(utils.StructToMap(supplier)).
		Where(sq.Eq{"id": supplierID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update supplier query for %s: %w", supplierID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to update supplier")
}
