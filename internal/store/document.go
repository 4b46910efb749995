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

const documentTableName = "fornecedores.documents"

var documentColumns = utils.StructTagValues(types.Document{})

type DocumentRepository struct {
	pool *pgxpool.Pool
}

func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{pool: pool}
}

func documentListQuery() sq.SelectBuilder {
	return psql().Select(documentColumns...).
		From(documentTableName).
		OrderBy("created_at DESC")
}

func (r *DocumentRepository) Documents(ctx context.Context) ([]*types.Document, error) {
	query, args, err := documentListQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate document list query: %w", err)
	}

	documents := make([]*types.Document, 0)
	err = pgxscan.Select(ctx, r.pool, &documents, query, args...)
	if err != nil {
		return nil, err
	}

	return documents, nil
}

// DocumentsByFolder narrows the list to one folder, same ordering.
func (r *DocumentRepository) DocumentsByFolder(ctx context.Context, folderID string) ([]*types.Document, error) {
	query, args, err := documentListQuery().
		Where(sq.Eq{"folder_id": folderID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate folder documents query: %w", err)
	}

	documents := make([]*types.Document, 0)
	err = pgxscan.Select(ctx, r.pool, &documents, query, args...)
	if err != nil {
		return nil, err
	}

	return documents, nil
}

func (r *DocumentRepository) DocumentsBySupplier(ctx context.Context, supplierID string) ([]*types.Document, error) {
	query, args, err := documentListQuery().
		Where(sq.Eq{"supplier_id": supplierID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate supplier documents query: %w", err)
	}

	documents := make([]*types.Document, 0)
	err = pgxscan.Select(ctx, r.pool, &documents, query, args...)
	if err != nil {
		return nil, err
	}

	return documents, nil
}

func (r *DocumentRepository) Document(ctx context.Context, documentID string) (*types.Document, error) {
	query, args, err := psql().Select(documentColumns...).
		From(documentTableName).
		Where(sq.Eq{"id": documentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate document query: %w", err)
	}

	var document = new(types.Document)
	err = pgxscan.Get(ctx, r.pool, document, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrDocumentNotFound
		}
		return nil, err
	}

	return document, nil
}

func (r *DocumentRepository) CreateDocument(ctx context.Context, document *types.Document) error {
	document.ID = utils.NanoID()
	document.CreatedAt = time.Now()

	query, args, err := psql().Insert(documentTableName).
		SetMap(utils.StructToMap(document)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert document query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create document")
}

func (r *DocumentRepository) UpdateDocument(ctx context.Context, documentID string, document *types.Document) error {
	document.ID = documentID
	document.UpdatedAt = utils.TimePtr(time.Now())

	query, args, err := psql().Update(documentTableName).
		SetMap(utils.StructToMap(document)).
		Where(sq.Eq{"id": documentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update document query for %s: %w", documentID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to update document")
}
