package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyLockTTL = 30 * time.Second

// Idempotency replays a stored response for a repeated Idempotency-Key and
// rejects a duplicate that arrives while the first one is still running.
// The handler stores the response under idempotency_cache_key and releases
// idempotency_lock_key when it is done.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		userID := c.GetString("user_id_validated")

		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var cachedRes any
			if json.Unmarshal([]byte(val), &cachedRes) == nil {
				response.Success(c, http.StatusOK, cachedRes, nil)
				c.Abort()
				return
			}
		}

		// Lock pendek supaya lock hilang sendiri jika server crash
		isNew, err := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			c.Next()
			return
		}

		if !isNew {
			response.Error(c, http.StatusConflict, "PROCESSING", "Your request is still being processed", nil)
			c.Abort()
			return
		}

		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		c.Next()
	}
}
