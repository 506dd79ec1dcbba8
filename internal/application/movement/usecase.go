package movement

import (
	"context"
	"time"

	"github.com/branquinho91/PARAPLUIE2/internal/application/dto"
	"github.com/branquinho91/PARAPLUIE2/internal/domain"
	"github.com/branquinho91/PARAPLUIE2/internal/domain/entity"
	"github.com/branquinho91/PARAPLUIE2/internal/domain/repository"
	"github.com/google/uuid"
)

// UseCase é o motor de movimentações: máquina de estados
// PENDING -> IN_PROGRESS -> FINISHED com transferência de estoque em duas
// fases. O débito na origem acontece na criação (estoque "em trânsito"); o
// crédito no destino só no finish.
type UseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository
	productRepo  repository.ProductRepository
	branchRepo   repository.BranchRepository
	driverRepo   repository.DriverRepository
}

// NewUseCase constroi o motor com os portos de persistência.
func NewUseCase(
	txRunner TxRunner,
	movementRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	branchRepo repository.BranchRepository,
	driverRepo repository.DriverRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		movementRepo: movementRepo,
		productRepo:  productRepo,
		branchRepo:   branchRepo,
		driverRepo:   driverRepo,
	}
}

// Create cria uma movimentação da filial do chamador para a filial de destino.
// Validações na ordem: campos presentes; destino existe; destino != origem;
// produto existe e pertence ao chamador; 0 < quantity <= product.amount.
// O débito do estoque e o insert da movimentação compartilham uma transação,
// com a linha do produto bloqueada (SELECT FOR UPDATE).
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	branch, err := uc.branchRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrBranchNotFound
	}

	if in.DestinationBranchID == "" || in.ProductID == "" || in.Quantity == 0 {
		return nil, domain.ErrInvalidInput
	}

	destination, err := uc.branchRepo.GetByID(in.DestinationBranchID)
	if err != nil {
		return nil, err
	}
	if destination == nil {
		return nil, domain.ErrBranchNotFound
	}
	if destination.ID == branch.ID {
		return nil, domain.ErrSameBranch
	}

	now := time.Now()
	mov := &entity.Movement{
		ID:                  uuid.New().String(),
		DestinationBranchID: destination.ID,
		ProductID:           in.ProductID,
		Quantity:            in.Quantity,
		Status:              entity.MovementPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	err = uc.txRunner.Run(ctx, func(
		movementRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetInBranchForUpdate(in.ProductID, branch.ID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if in.Quantity <= 0 || in.Quantity > product.Amount {
			return domain.ErrInvalidQuantity
		}
		// Reserva: o estoque sai da origem antes de qualquer motorista assumir.
		if err := productRepo.UpdateAmount(product.ID, product.Amount-in.Quantity); err != nil {
			return err
		}
		mov.Product = product
		return movementRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	mov.DestinationBranch = destination
	if mov.Product != nil {
		mov.Product.Amount -= in.Quantity
	}
	return toMovementResponse(mov), nil
}

// Start reivindica uma movimentação PENDING para o motorista chamador.
// A reivindicação é um update condicional (só linhas ainda PENDING): numa
// corrida entre motoristas, só o primeiro vence; o perdedor recebe o mesmo
// erro de "não pendente".
func (uc *UseCase) Start(ctx context.Context, userID, movementID string) (*dto.MovementResponse, error) {
	driver, err := uc.driverRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, domain.ErrDriverNotFound
	}
	if movementID == "" {
		return nil, domain.ErrInvalidInput
	}

	err = uc.txRunner.Run(ctx, func(
		movementRepo repository.MovementRepository,
		_ repository.ProductRepository,
	) error {
		mov, err := movementRepo.GetByID(movementID)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrMovementNotFound
		}
		claimed, err := movementRepo.ClaimPending(movementID, driver.ID)
		if err != nil {
			return err
		}
		if !claimed {
			return domain.ErrNotPending
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	mov, err := uc.movementRepo.GetWithRelations(movementID)
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// Finish conclui uma movimentação IN_PROGRESS do motorista atribuído e credita
// o destino. A busca do produto de destino usa o id do produto de origem na
// filial de destino: como linhas novas no destino ganham id próprio, na
// prática cada finish insere uma linha nova em vez de somar numa existente
// com o mesmo nome. Comportamento herdado do sistema, mantido de propósito.
func (uc *UseCase) Finish(ctx context.Context, userID, movementID string) (*dto.MovementResponse, error) {
	driver, err := uc.driverRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, domain.ErrDriverNotFound
	}
	if movementID == "" {
		return nil, domain.ErrInvalidInput
	}

	err = uc.txRunner.Run(ctx, func(
		movementRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		mov, err := movementRepo.GetWithRelations(movementID)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrMovementNotFound
		}
		if mov.Status != entity.MovementInProgress {
			return domain.ErrNotInProgress
		}
		if mov.DriverID != driver.ID {
			return domain.ErrWrongDriver
		}
		finished, err := movementRepo.FinishInProgress(movementID)
		if err != nil {
			return err
		}
		if !finished {
			return domain.ErrNotInProgress
		}

		destProduct, err := productRepo.GetInBranchForUpdate(mov.ProductID, mov.DestinationBranchID)
		if err != nil {
			return err
		}
		if destProduct != nil {
			return productRepo.UpdateAmount(destProduct.ID, destProduct.Amount+mov.Quantity)
		}
		now := time.Now()
		return productRepo.Create(&entity.Product{
			ID:          uuid.New().String(),
			BranchID:    mov.DestinationBranchID,
			Name:        mov.Product.Name,
			Amount:      mov.Quantity,
			Description: mov.Product.Description,
			URLCover:    mov.Product.URLCover,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}

	mov, err := uc.movementRepo.GetWithRelations(movementID)
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// List devolve todas as movimentações com produto e filial de destino
// carregados. Sem filtro nem paginação: o front consome a lista inteira.
func (uc *UseCase) List() ([]*dto.MovementResponse, error) {
	movements, err := uc.movementRepo.ListWithRelations()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	resp := &dto.MovementResponse{
		ID:                  m.ID,
		Quantity:            m.Quantity,
		Status:              string(m.Status),
		DriverID:            m.DriverID,
		DestinationBranchID: m.DestinationBranchID,
		ProductID:           m.ProductID,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
	if m.Product != nil {
		resp.Product = &dto.ProductResponse{
			ID:          m.Product.ID,
			BranchID:    m.Product.BranchID,
			Name:        m.Product.Name,
			Amount:      m.Product.Amount,
			Description: m.Product.Description,
			URLCover:    m.Product.URLCover,
			CreatedAt:   m.Product.CreatedAt,
			UpdatedAt:   m.Product.UpdatedAt,
		}
	}
	if m.DestinationBranch != nil {
		resp.DestinationBranch = &dto.BranchSummary{
			ID:          m.DestinationBranch.ID,
			FullAddress: m.DestinationBranch.FullAddress,
			Document:    m.DestinationBranch.Document,
		}
	}
	return resp
}
