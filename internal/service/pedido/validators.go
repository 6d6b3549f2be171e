package pedido

import (
	"strings"
	"time"

	"entregas/internal/entities"
)

func isValidEnderecoEntrega(endereco string) bool {
	return strings.TrimSpace(endereco) != ""
}

// ParseDataEntrega aceita exatamente o formato 2006-01-02T15:04 dos
// formulários; qualquer outra coisa é ErrInvalidDataEntrega.
func ParseDataEntrega(value string) (time.Time, error) {
	t, err := time.Parse(entities.DataEntregaLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidDataEntrega
	}
	return t, nil
}
