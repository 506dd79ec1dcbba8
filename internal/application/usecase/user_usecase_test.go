package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/branquinho91/PARAPLUIE2/internal/application/dto"
	"github.com/branquinho91/PARAPLUIE2/internal/application/usecase"
	"github.com/branquinho91/PARAPLUIE2/internal/domain"
	"github.com/branquinho91/PARAPLUIE2/internal/domain/entity"
	"github.com/branquinho91/PARAPLUIE2/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória com unicidade de email/documento e rollback emulado
// ──────────────────────────────────────────────────────────────────────────────

type store struct {
	users    map[string]*entity.User
	branches map[string]*entity.Branch
	drivers  map[string]*entity.Driver
}

func newStore() *store {
	return &store{
		users:    map[string]*entity.User{},
		branches: map[string]*entity.Branch{},
		drivers:  map[string]*entity.Driver{},
	}
}

type fakeUserRepo struct{ s *store }

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, other := range r.s.users {
		if other.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := r.s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}
func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.s.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

type fakeBranchRepo struct{ s *store }

func (r *fakeBranchRepo) Create(b *entity.Branch) error {
	for _, other := range r.s.branches {
		if other.Document == b.Document {
			return domain.ErrDocumentExists
		}
	}
	cp := *b
	r.s.branches[b.ID] = &cp
	return nil
}
func (r *fakeBranchRepo) GetByID(id string) (*entity.Branch, error) { return r.s.branches[id], nil }
func (r *fakeBranchRepo) GetByUserID(userID string) (*entity.Branch, error) {
	for _, b := range r.s.branches {
		if b.UserID == userID {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeBranchRepo) UpdateAddress(userID, fullAddress string) error {
	for _, b := range r.s.branches {
		if b.UserID == userID {
			b.FullAddress = fullAddress
		}
	}
	return nil
}

type fakeDriverRepo struct{ s *store }

func (r *fakeDriverRepo) Create(d *entity.Driver) error {
	for _, other := range r.s.drivers {
		if other.Document == d.Document {
			return domain.ErrDocumentExists
		}
	}
	cp := *d
	r.s.drivers[d.ID] = &cp
	return nil
}
func (r *fakeDriverRepo) GetByID(id string) (*entity.Driver, error) { return r.s.drivers[id], nil }
func (r *fakeDriverRepo) GetByUserID(userID string) (*entity.Driver, error) {
	for _, d := range r.s.drivers {
		if d.UserID == userID {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeDriverRepo) UpdateAddress(userID, fullAddress string) error {
	for _, d := range r.s.drivers {
		if d.UserID == userID {
			d.FullAddress = fullAddress
		}
	}
	return nil
}

// fakeProvisioningRunner restaura o snapshot em caso de erro, emulando o
// rollback que desfaz users junto com a sub-tabela.
type fakeProvisioningRunner struct{ s *store }

func (r *fakeProvisioningRunner) RunProvisioning(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	branchRepo repository.BranchRepository,
	driverRepo repository.DriverRepository,
) error) error {
	userSnap := map[string]*entity.User{}
	for k, v := range r.s.users {
		cp := *v
		userSnap[k] = &cp
	}
	branchSnap := map[string]*entity.Branch{}
	for k, v := range r.s.branches {
		cp := *v
		branchSnap[k] = &cp
	}
	driverSnap := map[string]*entity.Driver{}
	for k, v := range r.s.drivers {
		cp := *v
		driverSnap[k] = &cp
	}
	if err := fn(&fakeUserRepo{r.s}, &fakeBranchRepo{r.s}, &fakeDriverRepo{r.s}); err != nil {
		r.s.users = userSnap
		r.s.branches = branchSnap
		r.s.drivers = driverSnap
		return err
	}
	return nil
}

func newUseCase() (*usecase.UserUseCase, *store) {
	s := newStore()
	uc := usecase.NewUserUseCase(
		&fakeProvisioningRunner{s},
		&fakeUserRepo{s},
		&fakeBranchRepo{s},
		&fakeDriverRepo{s},
	)
	return uc, s
}

func branchRequest(email, document string) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Name:        "Filial Centro",
		Profile:     "BRANCH",
		Email:       email,
		Password:    "s3nh4-forte",
		Document:    document,
		FullAddress: "Rua das Flores, 100",
	}
}

func str(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_BranchGanhaSubLinha(t *testing.T) {
	uc, s := newUseCase()

	out, err := uc.Create(context.Background(), branchRequest("centro@parapluie.com", "11.111.111/0001-11"))

	require.NoError(t, err)
	assert.Equal(t, "BRANCH", out.Profile)
	assert.True(t, out.Status, "usuário nasce ativo")

	require.Len(t, s.branches, 1)
	for _, b := range s.branches {
		assert.Equal(t, out.ID, b.UserID)
		assert.Equal(t, "11.111.111/0001-11", b.Document)
		assert.Equal(t, "Rua das Flores, 100", b.FullAddress)
	}
	assert.Empty(t, s.drivers)
}

func TestCreate_DriverGanhaSubLinha(t *testing.T) {
	uc, s := newUseCase()

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name:     "João Motorista",
		Profile:  "DRIVER",
		Email:    "joao@parapluie.com",
		Password: "s3nh4-forte",
		Document: "123.456.789-00",
	})

	require.NoError(t, err)
	require.Len(t, s.drivers, 1)
	for _, d := range s.drivers {
		assert.Equal(t, out.ID, d.UserID)
	}
	assert.Empty(t, s.branches)
}

func TestCreate_AdminNaoTemSubTabela(t *testing.T) {
	uc, s := newUseCase()

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name:     "Admin",
		Profile:  "ADMIN",
		Email:    "admin@parapluie.com",
		Password: "s3nh4-forte",
	})

	require.NoError(t, err)
	assert.Len(t, s.users, 1)
	assert.Empty(t, s.branches)
	assert.Empty(t, s.drivers)
}

func TestCreate_GuardaHashENuncaASenha(t *testing.T) {
	uc, s := newUseCase()

	_, err := uc.Create(context.Background(), branchRequest("centro@parapluie.com", "doc-1"))
	require.NoError(t, err)

	for _, u := range s.users {
		assert.NotEqual(t, "s3nh4-forte", u.PasswordHash)
		assert.True(t, strings.HasPrefix(u.PasswordHash, "$2a$"))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3nh4-forte")))
	}
}

func TestCreate_PerfilDesconhecido(t *testing.T) {
	uc, _ := newUseCase()

	req := branchRequest("x@parapluie.com", "doc-1")
	req.Profile = "MANAGER"
	_, err := uc.Create(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrInvalidProfile)
}

func TestCreate_DocumentoObrigatorioForaDoAdmin(t *testing.T) {
	uc, _ := newUseCase()

	req := branchRequest("x@parapluie.com", "")
	_, err := uc.Create(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_EmailDuplicado(t *testing.T) {
	uc, s := newUseCase()
	_, err := uc.Create(context.Background(), branchRequest("centro@parapluie.com", "doc-1"))
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), branchRequest("centro@parapluie.com", "doc-2"))

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Len(t, s.users, 1)
	assert.Len(t, s.branches, 1)
}

func TestCreate_DocumentoDuplicadoNaoDeixaUsuarioOrfao(t *testing.T) {
	uc, s := newUseCase()
	_, err := uc.Create(context.Background(), branchRequest("centro@parapluie.com", "doc-1"))
	require.NoError(t, err)

	// email novo, documento repetido: a sub-linha falha e o rollback
	// desfaz também a linha de users
	_, err = uc.Create(context.Background(), branchRequest("norte@parapluie.com", "doc-1"))

	assert.ErrorIs(t, err, domain.ErrDocumentExists)
	assert.Len(t, s.users, 1, "nenhum usuário órfão sobra")
	assert.Len(t, s.branches, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID / Update / ToggleStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_Inexistente(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.GetByID("user-x")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdate_ParcialSoMudaOsCamposPresentes(t *testing.T) {
	uc, s := newUseCase()
	created, err := uc.Create(context.Background(), branchRequest("centro@parapluie.com", "doc-1"))
	require.NoError(t, err)

	out, err := uc.Update(context.Background(), created.ID, dto.UpdateUserRequest{
		Name: str("Filial Centro Renomeada"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Filial Centro Renomeada", out.Name)
	assert.Equal(t, "centro@parapluie.com", out.Email, "email intocado")
	for _, b := range s.branches {
		assert.Equal(t, "Rua das Flores, 100", b.FullAddress, "endereço intocado")
	}
}

func TestUpdate_EnderecoVaiParaASubTabela(t *testing.T) {
	uc, s := newUseCase()
	created, err := uc.Create(context.Background(), branchRequest("centro@parapluie.com", "doc-1"))
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), created.ID, dto.UpdateUserRequest{
		FullAddress: str("Av. Atlântica, 2000"),
	})

	require.NoError(t, err)
	for _, b := range s.branches {
		assert.Equal(t, "Av. Atlântica, 2000", b.FullAddress)
	}
}

func TestUpdate_EnderecoParaAdminEhRejeitado(t *testing.T) {
	uc, _ := newUseCase()
	created, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Admin", Profile: "ADMIN", Email: "admin@parapluie.com", Password: "s3nh4",
	})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), created.ID, dto.UpdateUserRequest{
		FullAddress: str("Rua X, 1"),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_TrocaDeSenhaGeraNovoHash(t *testing.T) {
	uc, s := newUseCase()
	created, err := uc.Create(context.Background(), branchRequest("centro@parapluie.com", "doc-1"))
	require.NoError(t, err)
	oldHash := s.users[created.ID].PasswordHash

	_, err = uc.Update(context.Background(), created.ID, dto.UpdateUserRequest{
		Password: str("nova-s3nh4"),
	})

	require.NoError(t, err)
	newHash := s.users[created.ID].PasswordHash
	assert.NotEqual(t, oldHash, newHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("nova-s3nh4")))
}

func TestToggleStatus_Inverte(t *testing.T) {
	uc, _ := newUseCase()
	created, err := uc.Create(context.Background(), branchRequest("centro@parapluie.com", "doc-1"))
	require.NoError(t, err)

	out, err := uc.ToggleStatus(created.ID)
	require.NoError(t, err)
	assert.False(t, out.Status)

	out, err = uc.ToggleStatus(created.ID)
	require.NoError(t, err)
	assert.True(t, out.Status, "toggle é reversível, nunca remove")
}

func TestToggleStatus_Inexistente(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.ToggleStatus("user-x")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
