package movement

import (
	"context"

	"github.com/branquinho91/PARAPLUIE2/internal/domain/repository"
)

// TxRunner executa fn dentro de uma transação de BD, passando repositórios
// atados a essa tx. Garante atomicidade do motor de movimentações: débito de
// estoque + insert da movimentação no create, e CAS de status + crédito no
// destino no finish, tudo com Commit/Rollback único.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movementRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
