package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Contact-form submission limits per sender address.
func CanSubmitContact(rdb *redis.Client, key string) (bool, string) {
	if rdb == nil {
		return true, ""
	}
	ctx := context.Background()
	minuteKey := fmt.Sprintf("contact_minute_%s", key)
	hourKey := fmt.Sprintf("contact_hour_%s", key)
	if rdb.Exists(ctx, minuteKey).Val() > 0 {
		return false, "Please wait a minute before sending another message"
	}
	cnt, _ := rdb.Get(ctx, hourKey).Int()
	if cnt >= 10 {
		return false, "Too many messages, try again later"
	}
	return true, ""
}

func MarkContactSubmitted(rdb *redis.Client, key string) {
	if rdb == nil {
		return
	}
	ctx := context.Background()
	minuteKey := fmt.Sprintf("contact_minute_%s", key)
	hourKey := fmt.Sprintf("contact_hour_%s", key)
	rdb.Set(ctx, minuteKey, 1, 60*time.Second)
	rdb.Incr(ctx, hourKey)
	rdb.Expire(ctx, hourKey, time.Hour)
}
