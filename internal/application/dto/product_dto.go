package dto

import "time"

// CreateProductRequest entrada para criar um produto na filial do chamador.
type CreateProductRequest struct {
	Name        string `json:"name"`
	Amount      int    `json:"amount"`
	Description string `json:"description"`
	URLCover    string `json:"urlCover"`
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID          string    `json:"id"`
	BranchID    string    `json:"branchId"`
	Name        string    `json:"name"`
	Amount      int       `json:"amount"`
	Description string    `json:"description"`
	URLCover    string    `json:"urlCover,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
