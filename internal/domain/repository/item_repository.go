package repository

import "context"

// ItemCounter consulta de conteo de artículos activos (tarjeta del dashboard).
type ItemCounter interface {
	CountActive(ctx context.Context) (int, error)
}
