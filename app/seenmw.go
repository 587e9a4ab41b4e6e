package app

import (
	"strconv"
	"time"

	"car_dealership_api/db"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// TouchLastSeen records user activity at most once per throttle window.
// Redis SETNX keeps the write amplification off the users table.
func TouchLastSeen(repo *db.Repo, rdb *redis.Client, throttle time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("userID")
		if !ok {
			c.Next()
			return
		}
		uid, ok := v.(uint)
		if !ok {
			c.Next()
			return
		}

		key := "user:lastseen:" + strconv.FormatUint(uint64(uid), 10)
		if ok, _ := rdb.SetNX(c, key, "1", throttle).Result(); ok {
			_ = repo.TouchUserSeen(c, uid) // best effort, never blocks the request
		}
		c.Next()
	}
}
