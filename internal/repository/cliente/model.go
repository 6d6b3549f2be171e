package cliente

type ClienteDB struct {
	ID       int64
	Nome     string
	Endereco string
	Telefone string
}

type ClienteModifyDB struct {
	ID       *int64
	Nome     *string
	Endereco *string
	Telefone *string
}
