package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/progress-api/internal/application/ports"
	"github.com/jhoicas/progress-api/pkg/logger"
)

// Claves de caché de lecturas agregadas.
const (
	CacheKeyDashboardStats    = "dashboard-stats"
	CacheKeyUseCasesList      = "use-cases-list"
	CacheKeyUseCaseNavigation = "use-case-navigation"
)

// CacheTTL tiempos de vida por clave.
type CacheTTL struct {
	Stats      time.Duration
	List       time.Duration
	Navigation time.Duration
}

// ReadCache envuelve ports.Cache para lecturas read-through. Un fallo de la caché
// nunca falla la lectura: se registra y se consulta la base.
type ReadCache struct {
	cache ports.Cache
	ttl   CacheTTL
	log   *logger.Logger
}

// NewReadCache construye la caché de lecturas. cache nil desactiva la caché.
func NewReadCache(cache ports.Cache, ttl CacheTTL, log *logger.Logger) *ReadCache {
	if log == nil {
		log = logger.Nop()
	}
	return &ReadCache{cache: cache, ttl: ttl, log: log.Component("read_cache")}
}

// Invalidate borra todas las lecturas cacheadas. Se llama tras cada escritura exitosa.
func (rc *ReadCache) Invalidate(ctx context.Context) {
	if rc == nil || rc.cache == nil {
		return
	}
	if err := rc.cache.DeleteByPrefix(ctx, ""); err != nil {
		rc.log.Warn().Err(err).Msg("no se pudo invalidar la caché")
	}
}

func (rc *ReadCache) ttlFor(key string) time.Duration {
	switch key {
	case CacheKeyDashboardStats:
		return rc.ttl.Stats
	case CacheKeyUseCasesList:
		return rc.ttl.List
	case CacheKeyUseCaseNavigation:
		return rc.ttl.Navigation
	}
	return 0
}

// readThrough devuelve el valor cacheado de key o lo carga con load y lo guarda.
// TTL cero no guarda nada.
func readThrough[T any](ctx context.Context, rc *ReadCache, key string, load func(context.Context) (T, error)) (T, error) {
	if rc == nil || rc.cache == nil {
		return load(ctx)
	}

	var cached T
	hit, err := rc.cache.Get(ctx, key, &cached)
	if err != nil {
		rc.log.Warn().Err(err).Str("key", key).Msg("lectura de caché fallida")
	}
	if hit {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}
	ttl := rc.ttlFor(key)
	if ttl <= 0 {
		return value, nil
	}
	if err := rc.cache.Set(ctx, key, value, ttl); err != nil {
		rc.log.Warn().Err(err).Str("key", key).Msg("escritura de caché fallida")
	}
	return value, nil
}
