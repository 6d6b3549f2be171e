package cliente

import "strings"

func isValidNome(nome string) bool {
	return strings.TrimSpace(nome) != ""
}

func isValidEndereco(endereco string) bool {
	return strings.TrimSpace(endereco) != ""
}

func isValidTelefone(telefone string) bool {
	return strings.TrimSpace(telefone) != ""
}
