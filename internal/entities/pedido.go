package entities

import "time"

// Pedido referencia um cliente e um entregador existentes; o status é
// texto livre com valor inicial DefaultPedidoStatus.
type Pedido struct {
	ID              int64
	ClienteID       int64
	EntregadorID    int64
	EnderecoEntrega string
	DataEntrega     time.Time
	Status          string
}

const DefaultPedidoStatus = "pendente"

// DataEntregaLayout é o formato aceito nos formulários de pedido.
const DataEntregaLayout = "2006-01-02T15:04"

type PedidoModify struct {
	ID              *int64
	ClienteID       *int64
	EntregadorID    *int64
	EnderecoEntrega *string
	DataEntrega     *time.Time
	Status          *string
}

type ItemPedido struct {
	ID         int64
	PedidoID   int64
	Descricao  string
	Quantidade int
}

type ItemPedidoModify struct {
	ID         *int64
	PedidoID   *int64
	Descricao  *string
	Quantidade *int
}

// PedidoDetalhado é o pedido com os nomes do cliente e do entregador
// resolvidos para a listagem.
type PedidoDetalhado struct {
	Pedido
	ClienteNome    string
	EntregadorNome string
}
