package usecase

import (
	"context"
	"strconv"

	"go.uber.org/zap"
)

// ListCache holds serialized collection listings. Implementations must treat
// a miss and an outage alike: (false, err) never fails the caller.
type ListCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
	Counter(ctx context.Context, key string) (int64, error)
	Incr(ctx context.Context, key string) (int64, error)
}

// listing caches one collection under a generation counter. Every seed bumps
// the generation, so a listing read before a seed and written after it lands
// under a key nobody reads again.
type listing struct {
	cache      ListCache
	collection string
	logger     *zap.Logger
}

func generationKey(collection string) string {
	return "talentboard:" + collection + ":gen"
}

func listCacheKey(collection string, gen int64) string {
	return "talentboard:" + collection + ":list:" + strconv.FormatInt(gen, 10)
}

// generation returns false when the cache is off or unreadable; callers then
// skip it for the whole request.
func (l listing) generation(ctx context.Context) (int64, bool) {
	if l.cache == nil {
		return 0, false
	}
	gen, err := l.cache.Counter(ctx, generationKey(l.collection))
	if err != nil {
		l.logger.Debug("cache generation read failed", zap.String("collection", l.collection), zap.Error(err))
		return 0, false
	}
	return gen, true
}

func (l listing) get(ctx context.Context, gen int64, out any) bool {
	key := listCacheKey(l.collection, gen)
	hit, err := l.cache.GetJSON(ctx, key, out)
	if err != nil {
		l.logger.Debug("cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return hit
}

func (l listing) put(ctx context.Context, gen int64, value any) {
	key := listCacheKey(l.collection, gen)
	if err := l.cache.SetJSON(ctx, key, value); err != nil {
		l.logger.Debug("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (l listing) invalidate(ctx context.Context) {
	if l.cache == nil {
		return
	}
	if _, err := l.cache.Incr(ctx, generationKey(l.collection)); err != nil {
		l.logger.Warn("cache invalidation failed", zap.String("collection", l.collection), zap.Error(err))
	}
}
