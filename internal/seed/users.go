package seed

import (
	"context"
	"errors"
	"fmt"

	"fornecedores/internal/store"
	"fornecedores/pkg/types"
)

// SeedAdminUser guarantees a super_admin profile exists so the portal
// is reachable after a fresh migrate. The matching identity-provider
// account must be created separately.
func SeedAdminUser(ctx context.Context, userRepo *store.UserRepository, email, name string) error {
	existing, err := userRepo.UserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, types.ErrUserNotFound) {
			return fmt.Errorf("failed to fetch admin user: %w", err)
		}

		admin := &types.User{
			Name:  name,
			Email: email,
			Role:  types.RoleSuperAdmin,
		}

		if err := userRepo.CreateUser(ctx, admin); err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		fmt.Printf("Admin user created: %s\n", email)
		return nil
	}

	fmt.Printf("Admin user already present: %s (role: %s)\n", existing.Email, existing.Role)
	return nil
}
