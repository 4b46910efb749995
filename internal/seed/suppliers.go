package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"fornecedores/internal/store"
	"fornecedores/pkg/types"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/k0kubun/pp/v3"
)

var fakeSupplierNames = []string{
	"Construtora Kilamba, Lda",
	"Tecnologias do Namibe, SA",
	"Catering Palanca Negra",
	"Transportes Kwanza Sul",
	"Limpezas Mussulo, Lda",
	"Gráfica Benguela",
	"Segurança Total Huíla",
	"Energia Solar de Cabinda",
}

var fakeProvincias = []string{
	"Luanda", "Benguela", "Huíla", "Namibe", "Cabinda", "Malanje",
}

// SeedFakeSuppliers inserts sample suppliers for local development.
// Names are prefixed with [seed] so a reset can find them.
func SeedFakeSuppliers(ctx context.Context, pool *pgxpool.Pool, supplierRepo *store.SupplierRepository, count int, reset bool, verbose bool) error {
	if count <= 0 {
		fmt.Println("Skipping fake suppliers seed because count <= 0")
		return nil
	}

	if reset {
		result, err := pool.Exec(ctx, `DELETE FROM fornecedores.suppliers WHERE name LIKE '[seed] %'`)
		if err != nil {
			return fmt.Errorf("failed to reset seeded suppliers: %w", err)
		}
		fmt.Printf("Reset seeded suppliers: %d deleted\n", result.RowsAffected())
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	statuses := []types.SupplierStatus{
		types.SupplierStatusActive,
		types.SupplierStatusActive,
		types.SupplierStatusInactive,
		types.SupplierStatusSuspended,
	}
	tipos := []types.SupplierTipo{types.SupplierTipoProduto, types.SupplierTipoServico}

	created := 0
	for i := 0; i < count; i++ {
		name := fakeSupplierNames[rng.Intn(len(fakeSupplierNames))]
		provincia := fakeProvincias[rng.Intn(len(fakeProvincias))]
		inicio := time.Now().AddDate(-rng.Intn(10), -rng.Intn(12), 0).Format("2006-01-02")

		supplier := &types.Supplier{
			Name:      fmt.Sprintf("[seed] %s", name),
			NIF:       fmt.Sprintf("54%08d", rng.Intn(100000000)),
			Provincia: provincia,
			Telefone1: fmt.Sprintf("2449%08d", rng.Intn(100000000)),
			Email:     fmt.Sprintf("geral+seed%d@example.ao", i+1),
			Inicio:    inicio,
			Tipo:      tipos[rng.Intn(len(tipos))],
			Descricao: "Fornecedor de demonstração criado pelo comando seed.",
			Status:    statuses[rng.Intn(len(statuses))],
			Address:   fmt.Sprintf("Rua %d, %s", rng.Intn(200)+1, provincia),
			Registro:  inicio,
			Natureza:  types.Naturezas[rng.Intn(len(types.Naturezas))],
			Socios: []types.Socio{
				{
					Responsavel:         "Sócio Gerente",
					TelefoneResponsavel: fmt.Sprintf("2449%08d", rng.Intn(100000000)),
					CargoResponsavel:    "Gerente",
				},
			},
		}

		if err := supplierRepo.CreateSupplier(ctx, supplier); err != nil {
			return fmt.Errorf("failed to create fake supplier %d: %w", i+1, err)
		}

		if verbose {
			pp.Println(supplier)
		}
		created++
	}

	fmt.Printf("Fake suppliers seeded: %d created\n", created)
	return nil
}
