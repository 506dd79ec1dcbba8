package usecase

import (
	"time"

	"github.com/branquinho91/PARAPLUIE2/internal/application/dto"
	"github.com/branquinho91/PARAPLUIE2/internal/domain"
	"github.com/branquinho91/PARAPLUIE2/internal/domain/entity"
	"github.com/branquinho91/PARAPLUIE2/internal/domain/repository"
	"github.com/google/uuid"
)

// ProductUseCase produtos da filial do chamador.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	branchRepo  repository.BranchRepository
}

// NewProductUseCase constroi o caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, branchRepo repository.BranchRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, branchRepo: branchRepo}
}

// Create cria um produto atado à filial do usuário chamador (perfil BRANCH).
// Nomes duplicados na mesma filial são permitidos: a identidade é a linha.
func (uc *ProductUseCase) Create(userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Description == "" || in.Amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	branch, err := uc.branchRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrBranchNotFound
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		BranchID:    branch.ID,
		Name:        in.Name,
		Amount:      in.Amount,
		Description: in.Description,
		URLCover:    in.URLCover,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// ListByUser lista os produtos da filial do usuário chamador.
func (uc *ProductUseCase) ListByUser(userID string) ([]*dto.ProductResponse, error) {
	branch, err := uc.branchRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrBranchNotFound
	}
	products, err := uc.productRepo.ListByBranch(branch.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		BranchID:    p.BranchID,
		Name:        p.Name,
		Amount:      p.Amount,
		Description: p.Description,
		URLCover:    p.URLCover,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
