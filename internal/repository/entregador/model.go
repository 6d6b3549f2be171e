package entregador

type EntregadorDB struct {
	ID              int64
	Nome            string
	Telefone        string
	Disponibilidade bool
}

type EntregadorModifyDB struct {
	ID              *int64
	Nome            *string
	Telefone        *string
	Disponibilidade *bool
}
