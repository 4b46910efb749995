package store

import (
	"context"
	"io"
	"os"
	"testing"

	"fornecedores/internal/db"
	"fornecedores/pkg/types"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// testPool connects when DATABASE_URL points at a migrated database;
// otherwise the round-trip tests are skipped.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	pool, err := db.Connect(context.Background(), &types.Config{DatabaseURL: url})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func TestSupplierRoundTrip(t *testing.T) {
	pool := testPool(t)
	repo := NewSupplierRepository(pool)
	ctx := context.Background()

	supplier := &types.Supplier{
		Name:      "[test] Fornecedor Round Trip",
		NIF:       "5400000001",
		Provincia: "Luanda",
		Telefone1: "244923000001",
		Email:     "roundtrip@example.ao",
		Inicio:    "2024-05-01",
		Tipo:      types.SupplierTipoServico,
		Descricao: "Registo criado pelo teste de integração",
		Address:   "Rua do Teste, 1",
		Registro:  "2024-04-01",
		Natureza:  "Sociedade por Quotas",
		Socios: []types.Socio{
			{Responsavel: "Teste", TelefoneResponsavel: "244923000002", CargoResponsavel: "Gerente"},
		},
	}

	require.NoError(t, repo.CreateSupplier(ctx, supplier))
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM fornecedores.suppliers WHERE id = $1`, supplier.ID)
	})

	require.NotEmpty(t, supplier.ID)
	assert.Equal(t, types.SupplierStatusActive, supplier.Status)

	got, err := repo.Supplier(ctx, supplier.ID)
	require.NoError(t, err)
	assert.Equal(t, supplier.Name, got.Name)
	assert.Equal(t, supplier.Socios, got.Socios)
	assert.Nil(t, got.UpdatedAt)

	got.Descricao = "Descrição actualizada"
	got.UpdatedBy = &got.Email
	require.NoError(t, repo.UpdateSupplier(ctx, supplier.ID, got))

	updated, err := repo.Supplier(ctx, supplier.ID)
	require.NoError(t, err)
	assert.Equal(t, "Descrição actualizada", updated.Descricao)
	assert.NotNil(t, updated.UpdatedAt)
}

func TestSupplierNotFound(t *testing.T) {
	pool := testPool(t)
	repo := NewSupplierRepository(pool)

	_, err := repo.Supplier(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, types.ErrSupplierNotFound)
}

func TestFolderDuplicateLabel(t *testing.T) {
	pool := testPool(t)
	repo := NewFolderRepository(pool, testLogger())
	ctx := context.Background()

	folder, err := repo.CreateFolder(ctx, "[test] Pasta Única")
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM fornecedores.folders WHERE id = $1`, folder.ID)
	})

	_, err = repo.CreateFolder(ctx, "[test] Pasta Única")
	assert.ErrorIs(t, err, types.ErrFolderExists)
}
