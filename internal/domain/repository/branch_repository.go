package repository

import "github.com/branquinho91/PARAPLUIE2/internal/domain/entity"

// BranchRepository porto de persistência para Branch.
type BranchRepository interface {
	Create(branch *entity.Branch) error
	GetByID(id string) (*entity.Branch, error)
	GetByUserID(userID string) (*entity.Branch, error)
	UpdateAddress(userID, fullAddress string) error
}
