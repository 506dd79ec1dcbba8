package entity

import "time"

// Product pertence a exatamente uma Branch. A identidade é a linha (id surrogate);
// nomes duplicados na mesma filial são permitidos.
type Product struct {
	ID          string
	BranchID    string
	Name        string
	Amount      int // quantidade em estoque, nunca negativa
	Description string
	URLCover    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
