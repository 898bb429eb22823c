package domain

import "time"

// Customer representa um cliente da loja, dono de zero ou mais pedidos
type Customer struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
