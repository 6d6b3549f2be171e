package pedido

import "time"

type PedidoDB struct {
	ID              int64
	ClienteID       int64
	EntregadorID    int64
	EnderecoEntrega string
	DataEntrega     time.Time
	Status          string
}

type PedidoModifyDB struct {
	ID              *int64
	ClienteID       *int64
	EntregadorID    *int64
	EnderecoEntrega *string
	DataEntrega     *time.Time
	Status          *string
}

// PedidoDetalhadoDB é a projeção da listagem com os nomes resolvidos
// por JOIN, sem carregamento preguiçoso de relações.
type PedidoDetalhadoDB struct {
	PedidoDB
	ClienteNome    string
	EntregadorNome string
}

type ItemPedidoDB struct {
	ID         int64
	PedidoID   int64
	Descricao  string
	Quantidade int
}
