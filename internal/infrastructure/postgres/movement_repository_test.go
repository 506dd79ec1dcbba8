package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/branquinho91/PARAPLUIE2/internal/domain/entity"
	"github.com/branquinho91/PARAPLUIE2/internal/infrastructure/postgres"
)

// Testes de integração do adaptador PostgreSQL. Exercitam o SQL de verdade
// (tipos uuid, COALESCE, CAS de status) contra o schema das migrações.
// Rodam só com TEST_DATABASE_URL apontando para um PostgreSQL descartável.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL não definido")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, postgres.Migrate(ctx, pool))
	return pool
}

// seedMovement insere usuário+filial(x2)+motorista+produto e uma movimentação
// PENDING com driver_id NULL. Devolve os ids gerados.
func seedMovement(t *testing.T, pool *pgxpool.Pool) (movementID, productID, driverID string) {
	t.Helper()
	ctx := context.Background()
	run := func(query string, args ...any) {
		_, err := pool.Exec(ctx, query, args...)
		require.NoError(t, err)
	}

	userBranchA := uuid.New().String()
	userBranchB := uuid.New().String()
	userDriver := uuid.New().String()
	branchA := uuid.New().String()
	branchB := uuid.New().String()
	driverID = uuid.New().String()
	productID = uuid.New().String()
	movementID = uuid.New().String()

	for _, u := range []struct{ id, profile string }{
		{userBranchA, "BRANCH"}, {userBranchB, "BRANCH"}, {userDriver, "DRIVER"},
	} {
		run(`INSERT INTO users (id, name, profile, email, password_hash)
		     VALUES ($1, 'Teste', $2, $1 || '@test.local', 'hash')`, u.id, u.profile)
	}
	run(`INSERT INTO branches (id, user_id, full_address, document)
	     VALUES ($1, $2, 'Rua A, 1', $3)`, branchA, userBranchA, "doc-"+branchA[:8])
	run(`INSERT INTO branches (id, user_id, document) VALUES ($1, $2, $3)`, branchB, userBranchB, "doc-"+branchB[:8])
	run(`INSERT INTO drivers (id, user_id, document) VALUES ($1, $2, $3)`, driverID, userDriver, "doc-"+driverID[:8])
	run(`INSERT INTO products (id, branch_id, name, amount, description)
	     VALUES ($1, $2, 'Guarda-chuva', 10, 'modelo compacto')`, productID, branchA)
	run(`INSERT INTO movements (id, destination_branch_id, product_id, quantity, status)
	     VALUES ($1, $2, $3, 4, 'PENDING')`, movementID, branchB, productID)

	t.Cleanup(func() {
		// users cascateia para branches/drivers; movements some com branches/products
		_, _ = pool.Exec(context.Background(),
			`DELETE FROM users WHERE id IN ($1, $2, $3)`, userBranchA, userBranchB, userDriver)
	})
	return movementID, productID, driverID
}

func TestMovementRepo_GetByID_DriverNulo(t *testing.T) {
	pool := newTestPool(t)
	movementID, productID, _ := seedMovement(t, pool)
	repo := postgres.NewMovementRepository(pool)

	// driver_id é uuid NULL aqui: a leitura precisa devolver "" sem erro de tipo
	m, err := repo.GetByID(movementID)

	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Empty(t, m.DriverID)
	assert.Equal(t, productID, m.ProductID)
	assert.Equal(t, entity.MovementPending, m.Status)
}

func TestMovementRepo_GetWithRelations_DriverNulo(t *testing.T) {
	pool := newTestPool(t)
	movementID, _, _ := seedMovement(t, pool)
	repo := postgres.NewMovementRepository(pool)

	m, err := repo.GetWithRelations(movementID)

	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Empty(t, m.DriverID)
	require.NotNil(t, m.Product)
	assert.Equal(t, "Guarda-chuva", m.Product.Name)
	require.NotNil(t, m.DestinationBranch)
}

func TestMovementRepo_ListWithRelations(t *testing.T) {
	pool := newTestPool(t)
	movementID, _, _ := seedMovement(t, pool)
	repo := postgres.NewMovementRepository(pool)

	list, err := repo.ListWithRelations()

	require.NoError(t, err)
	found := false
	for _, m := range list {
		if m.ID == movementID {
			found = true
			assert.Empty(t, m.DriverID)
		}
	}
	assert.True(t, found)
}

func TestMovementRepo_ClaimPending(t *testing.T) {
	pool := newTestPool(t)
	movementID, _, driverID := seedMovement(t, pool)
	repo := postgres.NewMovementRepository(pool)

	claimed, err := repo.ClaimPending(movementID, driverID)
	require.NoError(t, err)
	assert.True(t, claimed)

	// segundo claim perde o CAS
	claimed, err = repo.ClaimPending(movementID, uuid.New().String())
	require.NoError(t, err)
	assert.False(t, claimed)

	m, err := repo.GetByID(movementID)
	require.NoError(t, err)
	assert.Equal(t, driverID, m.DriverID)
	assert.Equal(t, entity.MovementInProgress, m.Status)
}
