package entities

type Cliente struct {
	ID       int64
	Nome     string
	Endereco string
	Telefone string
}

type ClienteModify struct {
	ID       *int64
	Nome     *string
	Endereco *string
	Telefone *string
}
