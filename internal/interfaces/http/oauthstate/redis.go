package oauthstate

import (
	"github.com/gin-gonic/gin"

	"lumen/internal/infrastructure/cache"
)

// RedisCarrier backs the handshake state by the one-time Redis store, for
// deployments where initiation and callback may land on different
// instances.
type RedisCarrier struct {
	store *cache.RedisStateStore
}

func NewRedisCarrier(store *cache.RedisStateStore) *RedisCarrier {
	return &RedisCarrier{store: store}
}

func (rc *RedisCarrier) Stash(c *gin.Context, state, codeVerifier string) error {
	return rc.store.Set(c.Request.Context(), state, codeVerifier)
}

func (rc *RedisCarrier) Consume(c *gin.Context, state string) (string, error) {
	info, err := rc.store.VerifyAndGet(c.Request.Context(), state)
	if err != nil {
		return "", err
	}
	return info.CodeVerifier, nil
}
