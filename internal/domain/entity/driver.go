package entity

import "time"

// Driver é o motorista que reivindica e conclui movimentações, 1:1 com um User de perfil DRIVER.
type Driver struct {
	ID          string
	UserID      string
	FullAddress string
	Document    string // único entre motoristas
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
