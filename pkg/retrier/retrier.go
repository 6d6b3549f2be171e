package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// ShouldRetry nil faz todo erro ser retentado; caso contrário só
	// os erros para os quais a função retorna true.
	ShouldRetry ShouldRetryFunc
}
