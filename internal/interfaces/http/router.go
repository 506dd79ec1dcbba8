package http

import (
	"github.com/branquinho91/PARAPLUIE2/internal/application/auth"
	"github.com/branquinho91/PARAPLUIE2/internal/application/movement"
	"github.com/branquinho91/PARAPLUIE2/internal/application/usecase"
	"github.com/branquinho91/PARAPLUIE2/internal/domain/entity"
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	ProductUC  *usecase.ProductUseCase
	MovementUC *movement.UseCase
	JWTSecret  string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	admin := string(entity.ProfileAdmin)
	branch := string(entity.ProfileBranch)
	driver := string(entity.ProfileDriver)

	// Login (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users: criação/listagem/status só ADMIN; leitura e update também pelo
	// próprio usuário (checagem admin-ou-self dentro do handler).
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", RequireProfile(admin), userHandler.Create)
	users.Get("/", RequireProfile(admin), userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Patch("/:id/status", RequireProfile(admin), userHandler.ToggleStatus)

	// Products (BRANCH)
	products := protected.Group("/products", RequireProfile(branch))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)

	// Movements: criação pela filial de origem, ciclo start/end pelo motorista.
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Post("/", RequireProfile(branch), movementHandler.Create)
	movements.Get("/", RequireProfile(branch, driver), movementHandler.List)
	movements.Patch("/:id/start", RequireProfile(driver), movementHandler.Start)
	movements.Patch("/:id/end", RequireProfile(driver), movementHandler.Finish)
}
