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

const contractTableName = "fornecedores.contracts"

var contractColumns = utils.StructTagValues(types.Contract{})

type ContractRepository struct {
	pool *pgxpool.Pool
}

func NewContractRepository(pool *pgxpool.Pool) *ContractRepository {
	return &ContractRepository{pool: pool}
}

func contractListQuery() sq.SelectBuilder {
	return psql().Select(contractColumns...).
		From(contractTableName).
		OrderBy("created_at DESC")
}

func (r *ContractRepository) Contracts(ctx context.Context) ([]*types.Contract, error) {
	query, args, err := contractListQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate contract list query: %w", err)
	}

	contracts := make([]*types.Contract, 0)
	err = pgxscan.Select(ctx, r.pool, &contracts, query, args...)
	if err != nil {
		return nil, err
	}

	return contracts, nil
}

// ContractsBySupplier lists a supplier's contracts for the
// supplier-detail tab, newest first.
func (r *ContractRepository) ContractsBySupplier(ctx context.Context, supplierID string) ([]*types.Contract, error) {
	query, args, err := contractListQuery().
		Where(sq.Eq{"supplier_id": supplierID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate supplier contracts query: %w", err)
	}

	contracts := make([]*types.Contract, 0)
	err = pgxscan.Select(ctx, r.pool, &contracts, query, args...)
	if err != nil {
		return nil, err
	}

	return contracts, nil
}

func (r *ContractRepository) Contract(ctx context.Context, contractID string) (*types.Contract, error) {
	query, args, err := psql().Select(contractColumns...).
		From(contractTableName).
		Where(sq.Eq{"id": contractID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate contract query: %w", err)
	}

	var contract = new(types.Contract)
	err = pgxscan.Get(ctx, r.pool, contract, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrContractNotFound
		}
		return nil, err
	}

	return contract, nil
}

func (r *ContractRepository) CreateContract(ctx context.Context, contract *types.Contract) error {
	now := time.Now()
	contract.ID = utils.NanoID()
	contract.CreatedAt = now
	contract.UpdatedAt = now

	query, args, err := psql().Insert(contractTableName).
		SetMap(utils.StructToMap(contract)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert contract query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create contract")
}

func (r *ContractRepository) UpdateContract(ctx context.Context, contractID string, contract *types.Contract) error {
	contract.ID = contractID
	contract.UpdatedAt = time.Now()

	query, args, err := psql().Update(contractTableName).
		SetMap(utils.StructToMap(contract)).
		Where(sq.Eq{"id": contractID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update contract query for %s: %w", contractID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to update contract")
}

func (r *ContractRepository) DeleteContract(ctx context.Context, contractID string) error {
	query, args, err := psql().Delete(contractTableName).
		Where(sq.Eq{"id": contractID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete contract query for %s: %w", contractID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to delete contract")
}
