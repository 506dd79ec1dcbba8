package dto

import "time"

// CreateMovementRequest entrada para criar uma movimentação (origem = filial do chamador).
type CreateMovementRequest struct {
	DestinationBranchID string `json:"destinationBranchId"`
	ProductID           string `json:"productId"`
	Quantity            int    `json:"quantity"`
}

// BranchSummary filial embutida nas respostas de movimentação.
type BranchSummary struct {
	ID          string `json:"id"`
	FullAddress string `json:"fullAddress,omitempty"`
	Document    string `json:"document"`
}

// MovementResponse saída de uma movimentação, com produto e filial de destino
// carregados (listagem sem paginação, como o front consome).
type MovementResponse struct {
	ID                  string           `json:"id"`
	Quantity            int              `json:"quantity"`
	Status              string           `json:"status"`
	DriverID            string           `json:"driverId,omitempty"`
	Product             *ProductResponse `json:"product,omitempty"`
	DestinationBranch   *BranchSummary   `json:"destinationBranch,omitempty"`
	DestinationBranchID string           `json:"destinationBranchId"`
	ProductID           string           `json:"productId"`
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
}
