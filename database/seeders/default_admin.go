package seeders

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/shallerhub/app/repositories"
	"github.com/shashiranjanraj/shallerhub/app/services"
	"github.com/shashiranjanraj/shallerhub/config"
)

func init() {
	Register("default-admin", SeedDefaultAdmin)
}

// SeedDefaultAdmin creates the bootstrap operator account from the
// DEFAULT_ADMIN_* config values. Idempotent: an existing account with the
// configured email is left alone.
func SeedDefaultAdmin(ctx context.Context) error {
	svc := services.NewAdminService(
		repositories.NewAdminRepository(),
		repositories.NewVendorRepository(),
	)

	admin, created, err := svc.Provision(ctx,
		config.DefaultAdminName(),
		config.DefaultAdminEmail(),
		config.DefaultAdminPassword(),
	)
	if err != nil {
		return err
	}

	if created {
		fmt.Printf("(created %s) ", admin.Email)
	} else {
		fmt.Printf("(exists %s) ", admin.Email)
	}
	return nil
}
