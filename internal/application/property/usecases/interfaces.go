package usecases

import "context"

type ReferenceCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Invalidate(ctx context.Context, keys ...string) error
}

// PropertyOptionsCacheKey holds the cached property picker list.
const PropertyOptionsCacheKey = "properties:all"
