package clients

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/vela-platform/vela/internal/config"
)

const valkeyRetries = 3

type ValkeyClient struct {
	Client valkey.Client
}

func NewValkeyClient(cfg config.ValkeyConfig) (*ValkeyClient, error) {
	opts := valkey.ClientOption{
		InitAddress:      []string{cfg.InitAddress},
		Password:         cfg.Password,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}
	if cfg.UseTLS {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to create Valkey client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", err)
	}

	slog.Info("[ValkeyClient] Successfully connected to valkey")
	return &ValkeyClient{Client: client}, nil
}

func (vc *ValkeyClient) Close() {
	if vc != nil && vc.Client != nil {
		vc.Client.Close()
	}
}

// GetCached returns the cached value for key, or "" on miss or error. Cache
// reads are best-effort.
func (vc *ValkeyClient) GetCached(ctx context.Context, key string) string {
	res := vc.doWithRetry(ctx, func() valkey.Completed {
		return vc.Client.B().Get().Key(key).Build()
	})
	if res.Error() != nil {
		return ""
	}
	val, err := res.ToString()
	if err != nil {
		return ""
	}
	return val
}

func (vc *ValkeyClient) SetCached(ctx context.Context, key, value string, ttl time.Duration) {
	res := vc.doWithRetry(ctx, func() valkey.Completed {
		return vc.Client.B().Set().Key(key).Value(value).Ex(ttl).Build()
	})
	if err := res.Error(); err != nil {
		slog.Warn("[ValkeyClient] Failed to cache value",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}

// IncrWindow bumps the counter for a fixed rate-limit window and returns
// the new count. The window key expires after window elapses.
func (vc *ValkeyClient) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	incr := vc.doWithRetry(ctx, func() valkey.Completed {
		return vc.Client.B().Incr().Key(key).Build()
	})
	if err := incr.Error(); err != nil {
		return 0, err
	}
	count, err := incr.AsInt64()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		expire := vc.Client.Do(ctx, vc.Client.B().Expire().Key(key).Seconds(int64(window.Seconds())).Build())
		if err := expire.Error(); err != nil {
			slog.Warn("[ValkeyClient] Failed to set window expiry",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
	}
	return count, nil
}

// doWithRetry rebuilds the command per attempt; completed commands are
// recycled by the client after Do and cannot be replayed.
func (vc *ValkeyClient) doWithRetry(ctx context.Context, build func() valkey.Completed) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	for i := 0; i < valkeyRetries; i++ {
		result = vc.Client.Do(ctx, build())
		if result.Error() == nil || valkey.IsValkeyNil(result.Error()) {
			break
		}

		slog.Warn("[ValkeyClient] Do failed",
			slog.Int("attempt", i+1),
			slog.String("error", result.Error().Error()))

		time.Sleep(250 * time.Millisecond)
	}

	return result
}
