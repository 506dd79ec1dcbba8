package postgres

import (
	"context"
	"fmt"

	"github.com/branquinho91/PARAPLUIE2/internal/application/movement"
	"github.com/branquinho91/PARAPLUIE2/internal/application/usecase"
	"github.com/branquinho91/PARAPLUIE2/internal/domain/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Garante que TxRunner implementa os portos transacionais dos casos de uso.
var _ movement.TxRunner = (*TxRunner)(nil)
var _ usecase.ProvisioningTxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constroi o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repos atados à tx e faz Commit ou Rollback.
// Usado pelo motor de movimentações (create/start/finish).
func (r *TxRunner) Run(ctx context.Context, fn func(
	movementRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movementRepo := NewMovementRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(movementRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunProvisioning inicia uma transação com os repos de usuários e perfis
// (para criar User + Branch/Driver de forma atômica).
func (r *TxRunner) RunProvisioning(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	branchRepo repository.BranchRepository,
	driverRepo repository.DriverRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userRepo := NewUserRepository(tx)
	branchRepo := NewBranchRepository(tx)
	driverRepo := NewDriverRepository(tx)

	if err := fn(userRepo, branchRepo, driverRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
