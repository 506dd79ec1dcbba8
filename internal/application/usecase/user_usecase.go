package usecase

import (
	"context"
	"time"

	"github.com/branquinho91/PARAPLUIE2/internal/application/dto"
	"github.com/branquinho91/PARAPLUIE2/internal/domain"
	"github.com/branquinho91/PARAPLUIE2/internal/domain/entity"
	"github.com/branquinho91/PARAPLUIE2/internal/domain/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase provisionamento e manutenção de usuários e seus perfis.
// Um User de perfil BRANCH ou DRIVER nasce com exatamente uma linha na
// sub-tabela correspondente; ADMIN não tem sub-tabela.
type UserUseCase struct {
	txRunner   ProvisioningTxRunner
	userRepo   repository.UserRepository
	branchRepo repository.BranchRepository
	driverRepo repository.DriverRepository
}

// NewUserUseCase constroi o caso de uso com os portos de persistência.
func NewUserUseCase(
	txRunner ProvisioningTxRunner,
	userRepo repository.UserRepository,
	branchRepo repository.BranchRepository,
	driverRepo repository.DriverRepository,
) *UserUseCase {
	return &UserUseCase{
		txRunner:   txRunner,
		userRepo:   userRepo,
		branchRepo: branchRepo,
		driverRepo: driverRepo,
	}
}

// Create provisiona o usuário e o perfil na mesma transação.
// Email duplicado -> ErrEmailAlreadyExists; documento duplicado -> ErrDocumentExists
// (e nenhuma linha sobra em users); perfil desconhecido -> ErrInvalidProfile.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Profile == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	profile := entity.Profile(in.Profile)
	if !profile.Valid() {
		return nil, domain.ErrInvalidProfile
	}
	if profile != entity.ProfileAdmin && in.Document == "" {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Profile:      profile,
		Email:        in.Email,
		PasswordHash: string(hash),
		Status:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.RunProvisioning(ctx, func(
		userRepo repository.UserRepository,
		branchRepo repository.BranchRepository,
		driverRepo repository.DriverRepository,
	) error {
		if err := userRepo.Create(user); err != nil {
			return err
		}
		switch profile {
		case entity.ProfileBranch:
			return branchRepo.Create(&entity.Branch{
				ID:          uuid.New().String(),
				UserID:      user.ID,
				FullAddress: in.FullAddress,
				Document:    in.Document,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		case entity.ProfileDriver:
			return driverRepo.Create(&entity.Driver{
				ID:          uuid.New().String(),
				UserID:      user.ID,
				FullAddress: in.FullAddress,
				Document:    in.Document,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		case entity.ProfileAdmin:
			return nil
		}
		return domain.ErrInvalidProfile
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtém um usuário por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// List lista usuários.
func (uc *UserUseCase) List(limit, offset int) ([]*dto.UserResponse, error) {
	users, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Update aplica mudanças parciais: name/email/password em users e fullAddress
// na sub-tabela do perfil. FullAddress para ADMIN é rejeitado (não há sub-tabela).
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.FullAddress != nil && user.Profile == entity.ProfileAdmin {
		return nil, domain.ErrInvalidInput
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()

	err = uc.txRunner.RunProvisioning(ctx, func(
		userRepo repository.UserRepository,
		branchRepo repository.BranchRepository,
		driverRepo repository.DriverRepository,
	) error {
		if err := userRepo.Update(user); err != nil {
			return err
		}
		if in.FullAddress == nil {
			return nil
		}
		switch user.Profile {
		case entity.ProfileBranch:
			return branchRepo.UpdateAddress(user.ID, *in.FullAddress)
		case entity.ProfileDriver:
			return driverRepo.UpdateAddress(user.ID, *in.FullAddress)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ToggleStatus inverte o flag de ativo. Usuários nunca são removidos fisicamente.
func (uc *UserUseCase) ToggleStatus(id string) (*dto.StatusResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.Status = !user.Status
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return &dto.StatusResponse{ID: user.ID, Status: user.Status}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Profile:   string(u.Profile),
		Email:     u.Email,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
