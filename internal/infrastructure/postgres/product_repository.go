package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/branquinho91/PARAPLUIE2/internal/domain/entity"
	"github.com/branquinho91/PARAPLUIE2/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, branch_id, name, amount, description, COALESCE(url_cover, ''), created_at, updated_at`

// ProductRepo implementação do porto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository constroi o adaptador de persistência para produtos. Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste um produto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, branch_id, name, amount, description, url_cover, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.BranchID, product.Name, product.Amount, product.Description,
		product.URLCover, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(query, id)
}

// GetInBranch obtém um produto pertencente a uma filial.
func (r *ProductRepo) GetInBranch(id, branchID string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND branch_id = $2`
	return r.scanOne(query, id, branchID)
}

// GetInBranchForUpdate obtém o produto da filial bloqueando a linha (SELECT FOR UPDATE).
func (r *ProductRepo) GetInBranchForUpdate(id, branchID string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND branch_id = $2 FOR UPDATE`
	return r.scanOne(query, id, branchID)
}

func (r *ProductRepo) scanOne(query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.BranchID, &p.Name, &p.Amount, &p.Description, &p.URLCover,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// UpdateAmount grava a quantidade em estoque de um produto.
func (r *ProductRepo) UpdateAmount(id string, amount int) error {
	query := `UPDATE products SET amount = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, amount)
	if err != nil {
		return fmt.Errorf("update product amount: %w", err)
	}
	return nil
}

// ListByBranch lista os produtos de uma filial.
func (r *ProductRepo) ListByBranch(branchID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE branch_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, branchID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.BranchID, &p.Name, &p.Amount, &p.Description, &p.URLCover, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
