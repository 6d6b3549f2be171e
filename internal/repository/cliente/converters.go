package cliente

import "entregas/internal/entities"

func ToDomain(c *ClienteDB) *entities.Cliente {
	if c == nil {
		return nil
	}
	return &entities.Cliente{
		ID:       c.ID,
		Nome:     c.Nome,
		Endereco: c.Endereco,
		Telefone: c.Telefone,
	}
}

func FromDomainModify(m *entities.ClienteModify) *ClienteModifyDB {
	if m == nil {
		return nil
	}
	return &ClienteModifyDB{
		ID:       m.ID,
		Nome:     m.Nome,
		Endereco: m.Endereco,
		Telefone: m.Telefone,
	}
}

func ToDomainList(clientesDB []ClienteDB) []entities.Cliente {
	if len(clientesDB) == 0 {
		return []entities.Cliente{}
	}

	result := make([]entities.Cliente, len(clientesDB))
	for i, clienteDB := range clientesDB {
		result[i] = *ToDomain(&clienteDB)
	}
	return result
}
