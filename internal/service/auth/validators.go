package auth

import "strings"

func isValidUsername(username string) bool {
	return strings.TrimSpace(username) != ""
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func isValidPassword(password string) bool {
	return password != ""
}
