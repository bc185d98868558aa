package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

// InitRedisRateLimiter initializes the shared Redis client used by the
// middleware. With an empty addr, or when the initial ping fails, the client
// stays nil and the limiters act as fail-open.
func InitRedisRateLimiter(addr, password string, db int) {
	if addr == "" {
		return
	}
	redisClient = redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		// keep the server available even without Redis
		redisClient = nil
	}
}

// RedisRateLimit is a fixed-window per-IP limiter built on Redis INCR/EXPIRE.
// key format: rl:<window_seconds>:<ip>
func RedisRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	return rateLimitByKey(maxRequests, window, func(c *gin.Context) string {
		return c.ClientIP()
	})
}

// UserRateLimit limits per authenticated user rather than per IP. It must
// run after the JWT middleware; without a user id it falls back to the IP.
func UserRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	return rateLimitByKey(maxRequests, window, func(c *gin.Context) string {
		if uid, ok := c.Get("user_id"); ok {
			if id, ok := uid.(int64); ok {
				return "u" + strconv.FormatInt(id, 10)
			}
		}
		return c.ClientIP()
	})
}

func rateLimitByKey(maxRequests int, window time.Duration, ident func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisClient == nil {
			c.Next()
			return
		}

		key := "rl:" + strconv.FormatInt(int64(window.Seconds()), 10) + ":" + ident(c)
		ctx := context.Background()

		val, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			// on Redis error, fail-open but flag it
			c.Header("X-RateLimit-Error", "redis-error")
			c.Next()
			return
		}

		if val == 1 {
			redisClient.Expire(ctx, key, window)
		}

		if val > int64(maxRequests) {
			RLBlocked.WithLabelValues(c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		RLRequests.WithLabelValues(c.FullPath()).Inc()

		c.Next()
	}
}
