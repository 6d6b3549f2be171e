package app

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"

	"entregas/internal/entities"
	"entregas/internal/handlers/tasks/pedidos_pendentes"
	"entregas/internal/handlers/web/cliente_delete"
	"entregas/internal/handlers/web/cliente_novo"
	"entregas/internal/handlers/web/clientes_get"
	"entregas/internal/handlers/web/edit_profile"
	"entregas/internal/handlers/web/entregador_add"
	"entregas/internal/handlers/web/entregador_delete"
	"entregas/internal/handlers/web/entregador_edit"
	"entregas/internal/handlers/web/entregadores_get"
	"entregas/internal/handlers/web/login"
	"entregas/internal/handlers/web/pedido_adicionar"
	"entregas/internal/handlers/web/pedido_editar"
	"entregas/internal/handlers/web/pedido_excluir"
	"entregas/internal/handlers/web/pedidos_get"
	"entregas/internal/handlers/web/register"
	"entregas/internal/handlers/web/user_get"
	"entregas/internal/pkg/config"
	"entregas/internal/pkg/render"
	"entregas/internal/pkg/session"
	accountRepo "entregas/internal/repository/account"
	clienteRepo "entregas/internal/repository/cliente"
	entregadorRepo "entregas/internal/repository/entregador"
	pedidoRepo "entregas/internal/repository/pedido"
	authService "entregas/internal/service/auth"
	clienteService "entregas/internal/service/cliente"
	entregadorService "entregas/internal/service/entregador"
	pedidoService "entregas/internal/service/pedido"
	"entregas/pkg/background"
	"entregas/pkg/logger"
	"entregas/pkg/querier"
	"entregas/pkg/tx"
)

type (
	PendentesInterval time.Duration
)

type Application struct {
	ServiceAuth       ServiceAuth
	ServiceCliente    ServiceCliente
	ServiceEntregador ServiceEntregador
	ServicePedido     ServicePedido
	Sessions          *session.Manager
	Renderer          *render.TemplateRenderer
	BackgroundWorkers *background.Worker
}

// ServiceAuth reúne as visões que cada handler tem do serviço de
// contas, mais os métodos usados pelo middleware de autenticação.
type ServiceAuth interface {
	login.Service
	register.Service
	user_get.Service
	edit_profile.Service

	GetAccount(ctx context.Context, id int64) (*entities.Account, error)
	TouchLastSeen(ctx context.Context, id int64) error
}

type ServiceCliente interface {
	clientes_get.Service
	cliente_novo.Service
	cliente_delete.Service
	pedido_adicionar.ClienteService
	pedido_editar.ClienteService
}

type ServiceEntregador interface {
	entregadores_get.Service
	entregador_add.Service
	entregador_edit.Service
	entregador_delete.Service
	pedido_adicionar.EntregadorService
	pedido_editar.EntregadorService
}

type ServicePedido interface {
	pedidos_get.Service
	pedido_adicionar.Service
	pedido_editar.Service
	pedido_excluir.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideSessionManager(cfg *config.Config) *session.Manager {
	return session.NewManager(&cfg.Session)
}

func provideAccountRepository(querier *querier.Querier) *accountRepo.Repository {
	return accountRepo.New(querier)
}

func provideClienteRepository(querier *querier.Querier) *clienteRepo.Repository {
	return clienteRepo.New(querier)
}

func provideEntregadorRepository(querier *querier.Querier) *entregadorRepo.Repository {
	return entregadorRepo.New(querier)
}

func providePedidoRepository(querier *querier.Querier) *pedidoRepo.Repository {
	return pedidoRepo.New(querier)
}

func provideServiceAuth(repository authService.Repository) *authService.Auth {
	return authService.New(repository)
}

func provideServiceCliente(repository clienteService.Repository) *clienteService.Cliente {
	return clienteService.New(repository)
}

func provideServiceEntregador(
	repository entregadorService.Repository,
	txManager entregadorService.TxManager,
) *entregadorService.Entregador {
	return entregadorService.New(repository, txManager)
}

func provideServicePedido(
	repository pedidoService.Repository,
	txManager pedidoService.TxManager,
	publisher pedidoService.EventPublisher,
) *pedidoService.Pedido {
	return pedidoService.New(repository, txManager, publisher)
}

func providePendentesInterval(cfg *config.Config) PendentesInterval {
	return PendentesInterval(cfg.Tasks.PedidosPendentesInterval)
}

func providePedidosPendentesTask(
	log logger.Logger,
	pedidoService pedidos_pendentes.Service,
	interval PendentesInterval,
) *pedidos_pendentes.PedidosPendentes {
	return pedidos_pendentes.NewPedidosPendentes(log, pedidoService, time.Duration(interval))
}

func provideTaskList(
	pedidosPendentesTask *pedidos_pendentes.PedidosPendentes,
) []background.Task {
	return []background.Task{
		pedidosPendentesTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
