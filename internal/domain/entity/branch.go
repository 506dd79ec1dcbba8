package entity

import "time"

// Branch é uma filial de estoque, 1:1 com um User de perfil BRANCH.
// Possui zero ou mais Products.
type Branch struct {
	ID          string
	UserID      string
	FullAddress string
	Document    string // único entre filiais
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
