package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/branquinho91/PARAPLUIE2/internal/domain"
	"github.com/branquinho91/PARAPLUIE2/internal/domain/entity"
	"github.com/branquinho91/PARAPLUIE2/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.DriverRepository = (*DriverRepo)(nil)

// DriverRepo implementação do porto DriverRepository sobre PostgreSQL.
type DriverRepo struct {
	q Querier
}

// NewDriverRepository constroi o adaptador. Passar pool ou tx (Querier).
func NewDriverRepository(q Querier) *DriverRepo {
	return &DriverRepo{q: q}
}

// Create persiste um motorista. Documento duplicado -> domain.ErrDocumentExists.
func (r *DriverRepo) Create(driver *entity.Driver) error {
	query := `
		INSERT INTO drivers (id, user_id, full_address, document, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		driver.ID, driver.UserID, driver.FullAddress, driver.Document,
		driver.CreatedAt, driver.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDocumentExists
		}
		return fmt.Errorf("insert driver: %w", err)
	}
	return nil
}

// GetByID obtém um motorista por ID.
func (r *DriverRepo) GetByID(id string) (*entity.Driver, error) {
	query := `
		SELECT id, user_id, COALESCE(full_address, ''), document, created_at, updated_at
		FROM drivers WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByUserID obtém o motorista de um usuário (perfil DRIVER).
func (r *DriverRepo) GetByUserID(userID string) (*entity.Driver, error) {
	query := `
		SELECT id, user_id, COALESCE(full_address, ''), document, created_at, updated_at
		FROM drivers WHERE user_id = $1`
	return r.scanOne(query, userID)
}

func (r *DriverRepo) scanOne(query string, arg any) (*entity.Driver, error) {
	var d entity.Driver
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&d.ID, &d.UserID, &d.FullAddress, &d.Document, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver: %w", err)
	}
	return &d, nil
}

// UpdateAddress atualiza o endereço do motorista de um usuário.
func (r *DriverRepo) UpdateAddress(userID, fullAddress string) error {
	query := `UPDATE drivers SET full_address = $2, updated_at = now() WHERE user_id = $1`
	_, err := r.q.Exec(context.Background(), query, userID, fullAddress)
	if err != nil {
		return fmt.Errorf("update driver address: %w", err)
	}
	return nil
}
