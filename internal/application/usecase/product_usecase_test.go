package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/branquinho91/PARAPLUIE2/internal/application/dto"
	"github.com/branquinho91/PARAPLUIE2/internal/application/usecase"
	"github.com/branquinho91/PARAPLUIE2/internal/domain"
	"github.com/branquinho91/PARAPLUIE2/internal/domain/entity"
)

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) GetInBranch(id, branchID string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok || p.BranchID != branchID {
		return nil, nil
	}
	return p, nil
}
func (r *fakeProductRepo) GetInBranchForUpdate(id, branchID string) (*entity.Product, error) {
	return r.GetInBranch(id, branchID)
}
func (r *fakeProductRepo) UpdateAmount(id string, amount int) error {
	if p, ok := r.products[id]; ok {
		p.Amount = amount
	}
	return nil
}
func (r *fakeProductRepo) ListByBranch(branchID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.BranchID == branchID {
			out = append(out, p)
		}
	}
	return out, nil
}

func newProductUseCase() (*usecase.ProductUseCase, *fakeProductRepo) {
	s := newStore()
	s.branches["branch-a"] = &entity.Branch{
		ID: "branch-a", UserID: "user-branch-a", Document: "doc-a", CreatedAt: time.Now(),
	}
	repo := &fakeProductRepo{products: map[string]*entity.Product{}}
	return usecase.NewProductUseCase(repo, &fakeBranchRepo{s}), repo
}

func TestProductCreate_AtadoAFilialDoChamador(t *testing.T) {
	uc, repo := newProductUseCase()

	out, err := uc.Create("user-branch-a", dto.CreateProductRequest{
		Name:        "Guarda-chuva",
		Amount:      10,
		Description: "modelo compacto",
		URLCover:    "https://cdn.parapluie.com/p.png",
	})

	require.NoError(t, err)
	assert.Equal(t, "branch-a", out.BranchID)
	assert.Equal(t, 10, out.Amount)
	require.Len(t, repo.products, 1)
}

func TestProductCreate_CamposObrigatorios(t *testing.T) {
	uc, _ := newProductUseCase()

	cases := []dto.CreateProductRequest{
		{Amount: 10, Description: "sem nome"},
		{Name: "Sem descrição", Amount: 10},
		{Name: "Sem quantidade", Description: "x"},
		{Name: "Negativo", Description: "x", Amount: -1},
	}
	for _, in := range cases {
		_, err := uc.Create("user-branch-a", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%+v", in)
	}
}

func TestProductCreate_ChamadorSemFilial(t *testing.T) {
	uc, _ := newProductUseCase()

	_, err := uc.Create("user-x", dto.CreateProductRequest{
		Name: "Guarda-chuva", Amount: 10, Description: "x",
	})

	assert.ErrorIs(t, err, domain.ErrBranchNotFound)
}

func TestProductCreate_NomesDuplicadosNaMesmaFilial(t *testing.T) {
	uc, repo := newProductUseCase()

	first, err := uc.Create("user-branch-a", dto.CreateProductRequest{Name: "Guarda-chuva", Amount: 3, Description: "x"})
	require.NoError(t, err)
	second, err := uc.Create("user-branch-a", dto.CreateProductRequest{Name: "Guarda-chuva", Amount: 5, Description: "x"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID, "a identidade é a linha, não o nome")
	assert.Len(t, repo.products, 2)
}

func TestListByUser_SoProdutosDaPropriaFilial(t *testing.T) {
	uc, repo := newProductUseCase()
	repo.products["p-outra"] = &entity.Product{ID: "p-outra", BranchID: "branch-b", Name: "Alheio", Amount: 1}
	_, err := uc.Create("user-branch-a", dto.CreateProductRequest{Name: "Meu", Amount: 2, Description: "x"})
	require.NoError(t, err)

	out, err := uc.ListByUser("user-branch-a")

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Meu", out[0].Name)
}
