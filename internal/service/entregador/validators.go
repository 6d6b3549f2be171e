package entregador

import "strings"

func isValidNome(nome string) bool {
	return strings.TrimSpace(nome) != ""
}

func isValidTelefone(telefone string) bool {
	return strings.TrimSpace(telefone) != ""
}
