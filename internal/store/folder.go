package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fornecedores/internal/utils"
	"fornecedores/pkg/types"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

const folderTableName = "fornecedores.folders"

var folderColumns = utils.StructTagValues(types.Folder{})

type FolderRepository struct {
	pool   *pgxpool.Pool
	logger *logrus.Logger
}

func NewFolderRepository(pool *pgxpool.Pool, logger *logrus.Logger) *FolderRepository {
	return &FolderRepository{pool: pool, logger: logger}
}

func (r *FolderRepository) Folders(ctx context.Context) ([]*types.Folder, error) {
	query, args, err := psql().Select(folderColumns...).
		From(folderTableName).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate folder list query: %w", err)
	}

	folders := make([]*types.Folder, 0)
	err = pgxscan.Select(ctx, r.pool, &folders, query, args...)
	if err != nil {
		return nil, err
	}

	return folders, nil
}

// CreateFolder checks the label against the current list before
// inserting. The check is best-effort only; the store enforces no
// uniqueness.
func (r *FolderRepository) CreateFolder(ctx context.Context, label string) (*types.Folder, error) {
	label = strings.TrimSpace(label)

	existing, err := r.Folders(ctx)
	if err != nil {
		return nil, err
	}
	for _, folder := range existing {
		if folder.Label == label {
			return nil, types.ErrFolderExists
		}
	}

	folder := &types.Folder{
		ID:        utils.NanoID(),
		Label:     label,
		CreatedAt: time.Now(),
	}

	query, args, err := psql().Insert(folderTableName).
		SetMap(utils.StructToMap(folder)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate insert folder query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	return folder, nil
}

// Watch polls the folder list and invokes onChange with each new
// snapshot whose membership differs from the previous one. It returns
// a stop function; stopping is idempotent. The transport is pull, the
// interface is push, and callers never see the difference.
func (r *FolderRepository) Watch(ctx context.Context, interval time.Duration, onChange func([]*types.Folder)) (stop func()) {
	watchCtx, cancel := context.WithCancel(ctx)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		var lastIDs string
		for {
			folders, err := r.Folders(watchCtx)
			if err != nil {
				if watchCtx.Err() != nil {
					return
				}
				r.logger.WithError(err).Warn("folder watch poll failed")
			} else {
				ids := make([]string, 0, len(folders))
				for _, folder := range folders {
					ids = append(ids, folder.ID)
				}
				joined := strings.Join(ids, ",")
				if joined != lastIDs {
					lastIDs = joined
					onChange(folders)
				}
			}

			select {
			case <-watchCtx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return cancel
}
