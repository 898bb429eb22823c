package retry

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy descreve a política de retry de tarefas em background:
// backoff exponencial com jitter aleatório, limitado em MaxDelay,
// até MaxRetries tentativas além da primeira execução.
type Policy struct {
	MaxRetries   uint64
	BaseDelay    time.Duration
	MaxDelay     time.Duration
	JitterFactor float64
}

// DefaultPolicy reflete o envelope padrão do job de rollup diário:
// base de 1s dobrando até o teto de 1 hora, 5 tentativas de retry.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries:   5,
		BaseDelay:    time.Second,
		MaxDelay:     time.Hour,
		JitterFactor: 0.5,
	}
}

// NewBackOff materializa a política em um backoff pronto para uso
func (p Policy) NewBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.BaseDelay
	b.MaxInterval = p.MaxDelay
	b.RandomizationFactor = p.JitterFactor
	b.Multiplier = 2.0
	b.MaxElapsedTime = 0
	b.Reset()

	return backoff.WithMaxRetries(b, p.MaxRetries)
}

// Do executa operation sob a política, repetindo apenas erros transitórios
func (p Policy) Do(operation func() error) error {
	return backoff.Retry(operation, p.NewBackOff())
}

// Permanent marca um erro como terminal: a operação não será repetida
func Permanent(err error) error {
	return backoff.Permanent(err)
}
