package pedidos_pendentes

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"entregas/pkg/logger"
)

var pedidosPendentes = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "pedidos_pendentes_total",
		Help: "Number of pedidos still waiting for delivery",
	},
)

type Service interface {
	CountPendentes(ctx context.Context) (int64, error)
}

// PedidosPendentes amostra periodicamente a quantidade de pedidos
// pendentes e publica o valor como gauge.
type PedidosPendentes struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewPedidosPendentes(log logger.Logger, service Service, interval time.Duration) *PedidosPendentes {
	return &PedidosPendentes{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (p *PedidosPendentes) TTL() time.Duration {
	return p.interval
}

func (p *PedidosPendentes) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	total, err := p.service.CountPendentes(ctxWithTimeout)
	if err != nil {
		return err
	}

	pedidosPendentes.Set(float64(total))

	p.log.With(
		logger.NewField("pedidos_pendentes", total),
	).Info("pedidos pendentes sampled")

	return nil
}

func (p *PedidosPendentes) Info() string {
	return "pedidos pendentes gauge"
}
