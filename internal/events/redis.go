package events

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const publishTimeout = 2 * time.Second

// RedisSink publica cada evento en un canal pub/sub; el panel de staff y
// cualquier otro transporte se suscriben por fuera del core.
type RedisSink struct {
	client  *redis.Client
	channel string
}

func NewRedisSink(client *redis.Client, channel string) *RedisSink {
	return &RedisSink{client: client, channel: channel}
}

func (s *RedisSink) Publish(payload []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	return s.client.Publish(ctx, s.channel, payload).Err()
}

// NopSink descarta todo; se usa cuando redis no está configurado.
type NopSink struct{}

func (NopSink) Publish([]byte) error { return nil }
