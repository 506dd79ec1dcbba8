package usecase

import (
	"context"

	"github.com/branquinho91/PARAPLUIE2/internal/domain/repository"
)

// ProvisioningTxRunner executa fn dentro de uma transação de BD com os repos
// atados a essa tx. Garante que usuário e perfil (branch/driver) nasçam juntos:
// documento duplicado desfaz também a linha de users.
type ProvisioningTxRunner interface {
	RunProvisioning(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		branchRepo repository.BranchRepository,
		driverRepo repository.DriverRepository,
	) error) error
}
