package pedido

import "entregas/internal/entities"

func ToDomain(p *PedidoDB) *entities.Pedido {
	if p == nil {
		return nil
	}
	return &entities.Pedido{
		ID:              p.ID,
		ClienteID:       p.ClienteID,
		EntregadorID:    p.EntregadorID,
		EnderecoEntrega: p.EnderecoEntrega,
		DataEntrega:     p.DataEntrega,
		Status:          p.Status,
	}
}

func FromDomainModify(m *entities.PedidoModify) *PedidoModifyDB {
	if m == nil {
		return nil
	}
	return &PedidoModifyDB{
		ID:              m.ID,
		ClienteID:       m.ClienteID,
		EntregadorID:    m.EntregadorID,
		EnderecoEntrega: m.EnderecoEntrega,
		DataEntrega:     m.DataEntrega,
		Status:          m.Status,
	}
}

func ToDetalhadoDomain(p *PedidoDetalhadoDB) *entities.PedidoDetalhado {
	if p == nil {
		return nil
	}
	return &entities.PedidoDetalhado{
		Pedido:         *ToDomain(&p.PedidoDB),
		ClienteNome:    p.ClienteNome,
		EntregadorNome: p.EntregadorNome,
	}
}

func ToDetalhadoDomainList(pedidosDB []PedidoDetalhadoDB) []entities.PedidoDetalhado {
	if len(pedidosDB) == 0 {
		return []entities.PedidoDetalhado{}
	}

	result := make([]entities.PedidoDetalhado, len(pedidosDB))
	for i, pedidoDB := range pedidosDB {
		result[i] = *ToDetalhadoDomain(&pedidoDB)
	}
	return result
}

func ToItemDomainList(itensDB []ItemPedidoDB) []entities.ItemPedido {
	if len(itensDB) == 0 {
		return []entities.ItemPedido{}
	}

	result := make([]entities.ItemPedido, len(itensDB))
	for i, itemDB := range itensDB {
		result[i] = entities.ItemPedido{
			ID:         itemDB.ID,
			PedidoID:   itemDB.PedidoID,
			Descricao:  itemDB.Descricao,
			Quantidade: itemDB.Quantidade,
		}
	}
	return result
}
