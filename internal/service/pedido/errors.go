package pedido

import "errors"

var (
	ErrMissingRequiredFields  = errors.New("missing required fields")
	ErrInvalidEnderecoEntrega = errors.New("invalid endereco de entrega")
	ErrInvalidDataEntrega     = errors.New("invalid data de entrega")

	ErrPedidoNotFound = errors.New("pedido not found")

	// ErrReferenciaInvalida indica cliente ou entregador inexistente
	// na criação ou edição do pedido.
	ErrReferenciaInvalida = errors.New("cliente or entregador does not exist")
)
