package entity

import "time"

// MovementStatus estado da movimentação (máquina de estados fechada).
type MovementStatus string

// Transições permitidas: PENDING -> IN_PROGRESS -> FINISHED. Sem cancelamento.
const (
	MovementPending    MovementStatus = "PENDING"
	MovementInProgress MovementStatus = "IN_PROGRESS"
	MovementFinished   MovementStatus = "FINISHED"
)

// Movement é uma ordem de transferência: move Quantity unidades do produto de
// origem (e da sua filial dona) para a filial de destino. O estoque é debitado
// na criação e creditado no destino apenas no finish — entre os dois, a
// quantidade está "em trânsito" e não aparece em nenhuma filial.
type Movement struct {
	ID                  string
	DestinationBranchID string
	ProductID           string
	DriverID            string // vazio até um motorista iniciar
	Quantity            int    // sempre > 0
	Status              MovementStatus
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// Relações carregadas sob demanda (listagem e finish).
	Product           *Product
	DestinationBranch *Branch
}
