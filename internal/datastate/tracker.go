package datastate

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	dirtyKey = "demo_salon_data_dirty"
	dirtyTTL = 48 * time.Hour
)

// Tracker marca que os dados do salão mudaram desde o último reseed de
// demonstração. Toda escrita em cliente/serviço/equipe/agendamento passa
// por MarkDirty; o job de reseed (externo a este serviço) lê IsDirty e
// chama Clear depois de repor os dados.
//
// É um objeto explícito com init/leitura/limpeza — nada de flag global
// ambiente. Fora do modo demo o tracker vira no-op.
type Tracker struct {
	rdb     *redis.Client
	enabled bool
}

func New(rdb *redis.Client, demoMode bool) *Tracker {
	return &Tracker{
		rdb:     rdb,
		enabled: demoMode && rdb != nil,
	}
}

// MarkDirty é melhor-esforço: falha de redis não pode derrubar a escrita
// que a disparou
func (t *Tracker) MarkDirty(ctx context.Context) {
	if t == nil || !t.enabled {
		return
	}
	if err := t.rdb.Set(ctx, dirtyKey, "1", dirtyTTL).Err(); err != nil {
		logrus.WithError(err).Warn("datastate: failed to mark dirty")
	}
}

func (t *Tracker) IsDirty(ctx context.Context) (bool, error) {
	if t == nil || !t.enabled {
		return false, nil
	}
	_, err := t.rdb.Get(ctx, dirtyKey).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (t *Tracker) Clear(ctx context.Context) error {
	if t == nil || !t.enabled {
		return nil
	}
	return t.rdb.Del(ctx, dirtyKey).Err()
}
