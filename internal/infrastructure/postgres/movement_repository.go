package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/branquinho91/PARAPLUIE2/internal/domain/entity"
	"github.com/branquinho91/PARAPLUIE2/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementação do porto MovementRepository sobre PostgreSQL.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constroi o adaptador. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste uma movimentação (status inicial PENDING, sem motorista).
func (r *MovementRepo) Create(m *entity.Movement) error {
	query := `
		INSERT INTO movements (id, destination_branch_id, product_id, quantity, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.DestinationBranchID, m.ProductID, m.Quantity, string(m.Status),
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtém uma movimentação por ID, sem relações.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `
		SELECT id, destination_branch_id, product_id, COALESCE(driver_id::text, ''), quantity, status, created_at, updated_at
		FROM movements WHERE id = $1`
	var m entity.Movement
	var status string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.DestinationBranchID, &m.ProductID, &m.DriverID, &m.Quantity, &status,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	m.Status = entity.MovementStatus(status)
	return &m, nil
}

const movementWithRelations = `
	SELECT m.id, m.destination_branch_id, m.product_id, COALESCE(m.driver_id::text, ''), m.quantity, m.status,
	       m.created_at, m.updated_at,
	       p.id, p.branch_id, p.name, p.amount, p.description, COALESCE(p.url_cover, ''), p.created_at, p.updated_at,
	       b.id, COALESCE(b.full_address, ''), b.document
	FROM movements m
	JOIN products p ON p.id = m.product_id
	JOIN branches b ON b.id = m.destination_branch_id`

func scanMovementWithRelations(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var p entity.Product
	var b entity.Branch
	var status string
	err := row.Scan(
		&m.ID, &m.DestinationBranchID, &m.ProductID, &m.DriverID, &m.Quantity, &status,
		&m.CreatedAt, &m.UpdatedAt,
		&p.ID, &p.BranchID, &p.Name, &p.Amount, &p.Description, &p.URLCover, &p.CreatedAt, &p.UpdatedAt,
		&b.ID, &b.FullAddress, &b.Document,
	)
	if err != nil {
		return nil, err
	}
	m.Status = entity.MovementStatus(status)
	m.Product = &p
	m.DestinationBranch = &b
	return &m, nil
}

// GetWithRelations obtém a movimentação com produto e filial de destino carregados.
func (r *MovementRepo) GetWithRelations(id string) (*entity.Movement, error) {
	query := movementWithRelations + ` WHERE m.id = $1`
	m, err := scanMovementWithRelations(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement with relations: %w", err)
	}
	return m, nil
}

// ListWithRelations lista todas as movimentações com produto e filial de destino.
func (r *MovementRepo) ListWithRelations() ([]*entity.Movement, error) {
	query := movementWithRelations + ` ORDER BY m.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovementWithRelations(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ClaimPending atribui o motorista e passa para IN_PROGRESS, mas só se a linha
// ainda estiver PENDING (compare-and-swap). false = outro motorista venceu.
func (r *MovementRepo) ClaimPending(id, driverID string) (bool, error) {
	query := `
		UPDATE movements SET driver_id = $2, status = 'IN_PROGRESS', updated_at = now()
		WHERE id = $1 AND status = 'PENDING'`
	tag, err := r.q.Exec(context.Background(), query, id, driverID)
	if err != nil {
		return false, fmt.Errorf("claim movement: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// FinishInProgress passa para FINISHED, mas só se a linha ainda estiver IN_PROGRESS.
func (r *MovementRepo) FinishInProgress(id string) (bool, error) {
	query := `
		UPDATE movements SET status = 'FINISHED', updated_at = now()
		WHERE id = $1 AND status = 'IN_PROGRESS'`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return false, fmt.Errorf("finish movement: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
