package auth

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedPrefix = "revoked_token:"

// Denylist tracks revoked JWT ids (jti) in redis until their natural
// expiry, backing the logout endpoint.
type Denylist struct {
	rdb *redis.Client
}

func NewDenylist(addr, password string) *Denylist {
	return &Denylist{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

// Revoke marks jti as revoked for ttl; after that the token has expired
// anyway and the key can vanish.
func (d *Denylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.rdb.Set(ctx, revokedPrefix+jti, 1, ttl).Err()
}

// IsRevoked reports whether jti has been revoked. A redis failure is
// logged and treated as not revoked; auth must not go down with redis.
func (d *Denylist) IsRevoked(ctx context.Context, jti string) bool {
	n, err := d.rdb.Exists(ctx, revokedPrefix+jti).Result()
	if err != nil {
		log.Printf("denylist lookup failed: %v", err)
		return false
	}
	return n > 0
}
