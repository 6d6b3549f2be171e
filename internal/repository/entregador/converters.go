package entregador

import "entregas/internal/entities"

func ToDomain(e *EntregadorDB) *entities.Entregador {
	if e == nil {
		return nil
	}
	return &entities.Entregador{
		ID:              e.ID,
		Nome:            e.Nome,
		Telefone:        e.Telefone,
		Disponibilidade: e.Disponibilidade,
	}
}

func FromDomainModify(m *entities.EntregadorModify) *EntregadorModifyDB {
	if m == nil {
		return nil
	}
	return &EntregadorModifyDB{
		ID:              m.ID,
		Nome:            m.Nome,
		Telefone:        m.Telefone,
		Disponibilidade: m.Disponibilidade,
	}
}

func ToDomainList(entregadoresDB []EntregadorDB) []entities.Entregador {
	if len(entregadoresDB) == 0 {
		return []entities.Entregador{}
	}

	result := make([]entities.Entregador, len(entregadoresDB))
	for i, entregadorDB := range entregadoresDB {
		result[i] = *ToDomain(&entregadorDB)
	}
	return result
}
