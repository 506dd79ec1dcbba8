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

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementação do porto BranchRepository sobre PostgreSQL.
type BranchRepo struct {
	q Querier
}

// NewBranchRepository constroi o adaptador. Passar pool ou tx (Querier).
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

// Create persiste uma filial. Documento duplicado -> domain.ErrDocumentExists.
func (r *BranchRepo) Create(branch *entity.Branch) error {
	query := `
		INSERT INTO branches (id, user_id, full_address, document, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		branch.ID, branch.UserID, branch.FullAddress, branch.Document,
		branch.CreatedAt, branch.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDocumentExists
		}
		return fmt.Errorf("insert branch: %w", err)
	}
	return nil
}

// GetByID obtém uma filial por ID.
func (r *BranchRepo) GetByID(id string) (*entity.Branch, error) {
	query := `
		SELECT id, user_id, COALESCE(full_address, ''), document, created_at, updated_at
		FROM branches WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByUserID obtém a filial dona de um usuário (perfil BRANCH).
func (r *BranchRepo) GetByUserID(userID string) (*entity.Branch, error) {
	query := `
		SELECT id, user_id, COALESCE(full_address, ''), document, created_at, updated_at
		FROM branches WHERE user_id = $1`
	return r.scanOne(query, userID)
}

func (r *BranchRepo) scanOne(query string, arg any) (*entity.Branch, error) {
	var b entity.Branch
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&b.ID, &b.UserID, &b.FullAddress, &b.Document, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return &b, nil
}

// UpdateAddress atualiza o endereço da filial de um usuário.
func (r *BranchRepo) UpdateAddress(userID, fullAddress string) error {
	query := `UPDATE branches SET full_address = $2, updated_at = now() WHERE user_id = $1`
	_, err := r.q.Exec(context.Background(), query, userID, fullAddress)
	if err != nil {
		return fmt.Errorf("update branch address: %w", err)
	}
	return nil
}
