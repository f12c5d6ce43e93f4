package ports

import (
	"context"
	"time"
)

// Cache puerto de salida para la caché de lecturas agregadas (dashboard, listados, navegación).
// Las claves son relativas; cada adaptador les antepone su propio prefijo.
// Los valores se serializan como JSON, por lo que dest debe ser un puntero.
type Cache interface {
	// Get carga en dest el valor de la clave. Devuelve false si no existe o expiró.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// DeleteByPrefix elimina todas las claves que empiezan por prefix ("" = todas).
	DeleteByPrefix(ctx context.Context, prefix string) error
}
