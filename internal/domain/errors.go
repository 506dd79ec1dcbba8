package domain

import "errors"

// Erros de domínio (sem dependências externas). Os handlers HTTP fazem o
// mapeamento para status codes: validação 400, autorização 401, não
// encontrado 404, duplicidade 409; o resto vira 500.
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrBranchNotFound     = errors.New("filial não encontrada")
	ErrDriverNotFound     = errors.New("motorista não encontrado")
	ErrProductNotFound    = errors.New("produto não encontrado")
	ErrMovementNotFound   = errors.New("movimentação não encontrada")
	ErrEmailAlreadyExists = errors.New("email já registrado")
	ErrDocumentExists     = errors.New("documento já registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidProfile     = errors.New("perfil inválido")
	ErrInvalidQuantity    = errors.New("quantidade inválida")
	ErrSameBranch         = errors.New("filial de destino igual à de origem")
	ErrNotPending         = errors.New("movimentação não está pendente")
	ErrNotInProgress      = errors.New("movimentação não está em andamento")
	ErrWrongDriver        = errors.New("motorista não atribuído à movimentação")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
)
