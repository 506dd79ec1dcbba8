package repository

import "github.com/branquinho91/PARAPLUIE2/internal/domain/entity"

// ProductRepository porto de persistência para Product.
// GetInBranchForUpdate bloqueia a linha (SELECT FOR UPDATE); usar dentro de transação.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetInBranch(id, branchID string) (*entity.Product, error)
	GetInBranchForUpdate(id, branchID string) (*entity.Product, error)
	UpdateAmount(id string, amount int) error
	ListByBranch(branchID string) ([]*entity.Product, error)
}
