package redisstore

import (
	"context"

	"github.com/go-redis/redis/v8"
)

const salonSetPrefix = "salon-console:salons-with-orders:"

// SalonSet keeps one hash per scope. HSETNX makes it add-only, so the
// first name recorded for a salon is never overwritten, across instances.
type SalonSet struct {
	rdb *redis.Client
}

func NewSalonSet(rdb *redis.Client) *SalonSet {
	return &SalonSet{rdb: rdb}
}

func (s *SalonSet) key(scope string) string {
	return salonSetPrefix + scope
}

func (s *SalonSet) Add(ctx context.Context, scope, key, value string) (bool, error) {
	return s.rdb.HSetNX(ctx, s.key(scope), key, value).Result()
}

func (s *SalonSet) Entries(ctx context.Context, scope string) (map[string]string, error) {
	return s.rdb.HGetAll(ctx, s.key(scope)).Result()
}
