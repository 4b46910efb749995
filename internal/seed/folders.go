package seed

import (
	"context"
	"errors"
	"fmt"

	"fornecedores/internal/store"
	"fornecedores/pkg/types"
)

// Default folders every fresh installation starts with.
var defaultFolderLabels = []string{
	"Concursos Públicos",
	"Correspondência",
	"Relatórios",
	"Arquivo Geral",
}

func SeedFolders(ctx context.Context, folderRepo *store.FolderRepository) error {
	created := 0
	for _, label := range defaultFolderLabels {
		_, err := folderRepo.CreateFolder(ctx, label)
		if err != nil {
			if errors.Is(err, types.ErrFolderExists) {
				continue
			}
			return fmt.Errorf("failed to create folder %q: %w", label, err)
		}
		created++
	}

	fmt.Printf("Folders seeded: %d created\n", created)
	return nil
}
