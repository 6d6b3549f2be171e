//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"entregas/internal/handlers/tasks/pedidos_pendentes"
	"entregas/internal/pkg/config"
	"entregas/internal/pkg/render"
	accountRepo "entregas/internal/repository/account"
	clienteRepo "entregas/internal/repository/cliente"
	entregadorRepo "entregas/internal/repository/entregador"
	pedidoRepo "entregas/internal/repository/pedido"
	authService "entregas/internal/service/auth"
	clienteService "entregas/internal/service/cliente"
	entregadorService "entregas/internal/service/entregador"
	pedidoService "entregas/internal/service/pedido"
	"entregas/pkg/logger"
	"entregas/pkg/tx"
)

// InitializeApplication monta o grafo do serviço HTTP (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	publisher pedidoService.EventPublisher,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		providePendentesInterval,
		provideSessionManager,
		render.New,

		provideAccountRepository,
		provideClienteRepository,
		provideEntregadorRepository,
		providePedidoRepository,

		provideServiceAuth,
		provideServiceCliente,
		provideServiceEntregador,
		provideServicePedido,

		providePedidosPendentesTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAuth), new(*authService.Auth)),
		wire.Bind(new(ServiceCliente), new(*clienteService.Cliente)),
		wire.Bind(new(ServiceEntregador), new(*entregadorService.Entregador)),
		wire.Bind(new(ServicePedido), new(*pedidoService.Pedido)),

		wire.Bind(new(authService.Repository), new(*accountRepo.Repository)),
		wire.Bind(new(clienteService.Repository), new(*clienteRepo.Repository)),
		wire.Bind(new(entregadorService.Repository), new(*entregadorRepo.Repository)),
		wire.Bind(new(pedidoService.Repository), new(*pedidoRepo.Repository)),

		wire.Bind(new(entregadorService.TxManager), new(*tx.Manager)),
		wire.Bind(new(pedidoService.TxManager), new(*tx.Manager)),

		wire.Bind(new(pedidos_pendentes.Service), new(*pedidoService.Pedido)),
	)
	return &Application{}, nil
}
