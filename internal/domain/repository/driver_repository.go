package repository

import "github.com/branquinho91/PARAPLUIE2/internal/domain/entity"

// DriverRepository porto de persistência para Driver.
type DriverRepository interface {
	Create(driver *entity.Driver) error
	GetByID(id string) (*entity.Driver, error)
	GetByUserID(userID string) (*entity.Driver, error)
	UpdateAddress(userID, fullAddress string) error
}
