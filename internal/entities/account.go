package entities

import (
	"crypto/md5" //nolint:gosec // identificador do gravatar, não é uso criptográfico
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Account é a conta de acesso do painel (staff). O modelo de domínio
// mantém apenas o hash bcrypt da senha, nunca o texto puro.
type Account struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	AboutMe      string
	LastSeen     time.Time
}

// AvatarURL devolve a URL de um identicon do Gravatar derivado do
// e-mail em minúsculas.
func (a *Account) AvatarURL(size int) string {
	sum := md5.Sum([]byte(strings.ToLower(a.Email))) //nolint:gosec
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?d=identicon&s=%d",
		hex.EncodeToString(sum[:]), size)
}

type AccountModify struct {
	ID           *int64
	Username     *string
	Email        *string
	PasswordHash *string
	AboutMe      *string
	LastSeen     *time.Time
}
