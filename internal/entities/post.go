package entities

import "time"

// Post é uma publicação curta (até 140 caracteres) de uma conta.
type Post struct {
	ID        int64
	Body      string
	Timestamp time.Time
	AccountID int64
}
