package account

import "time"

type AccountDB struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	AboutMe      string
	LastSeen     time.Time
}

type AccountModifyDB struct {
	ID           *int64
	Username     *string
	Email        *string
	PasswordHash *string
	AboutMe      *string
	LastSeen     *time.Time
}
