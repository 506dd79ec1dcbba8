package repository

import "github.com/branquinho91/PARAPLUIE2/internal/domain/entity"

// MovementRepository porto de persistência para Movement.
//
// ClaimPending e FinishInProgress são updates condicionais (compare-and-swap
// sobre o status): devolvem false quando nenhuma linha foi afetada, ou seja,
// quando outro ator mudou o estado antes. Usar dentro de transação.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	GetWithRelations(id string) (*entity.Movement, error)
	ListWithRelations() ([]*entity.Movement, error)
	ClaimPending(id, driverID string) (bool, error)
	FinishInProgress(id string) (bool, error)
}
