package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ChatRateLimiter decide si un cliente puede enviar otro mensaje.
type ChatRateLimiter interface {
	Allow(ctx context.Context, clientID string) bool
}

const redisChatAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

const redisChatTimeout = 500 * time.Millisecond

type redisChatRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// NewRedisChatRateLimiter crea un limitador de ventana fija por cliente.
// Devuelve nil si no hay cliente redis.
func NewRedisChatRateLimiter(client *redis.Client, window time.Duration, max int) ChatRateLimiter {
	if client == nil {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisChatRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "chat:rl:",
	}
}

// Allow falla abierto: si redis no responde, el mensaje pasa.
func (l *redisChatRateLimiter) Allow(ctx context.Context, clientID string) bool {
	if l == nil || l.client == nil {
		return true
	}
	key := strings.ToLower(strings.TrimSpace(clientID))
	if key == "" {
		key = "anonymous"
	}
	ctx, cancel := context.WithTimeout(ctx, redisChatTimeout)
	defer cancel()

	seconds := int(l.window.Seconds())
	if seconds <= 0 {
		seconds = 1
	}
	count, err := l.client.Eval(ctx, redisChatAllowScript, []string{l.prefix + key}, seconds).Int()
	if err != nil {
		return true
	}
	return count <= l.max
}
