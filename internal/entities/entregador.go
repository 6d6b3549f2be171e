package entities

type Entregador struct {
	ID              int64
	Nome            string
	Telefone        string
	Disponibilidade bool
}

type EntregadorModify struct {
	ID              *int64
	Nome            *string
	Telefone        *string
	Disponibilidade *bool
}
