package redis

import (
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"xmirrord/internal/log"
)

const (
	DefaultPoolSize        = 8
	DefaultDialTimeout     = 10 * time.Second
	DefaultMaxRetries      = 3
	DefaultMinRetryBackoff = 100 * time.Millisecond
	DefaultMaxRetryBackoff = 30 * time.Second
)

// Client owns the connection pool to the mirror database. It is created once
// at startup and shared by every request; go-redis hands each command its own
// pooled connection.
type Client struct {
	Url             string
	PoolSize        int
	DialTimeout     time.Duration
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration

	c *redis.Client
}

func NewClient(url string, poolSize int) *Client {
	return &Client{
		Url:             url,
		PoolSize:        poolSize,
		DialTimeout:     DefaultDialTimeout,
		MaxRetries:      DefaultMaxRetries,
		MinRetryBackoff: DefaultMinRetryBackoff,
		MaxRetryBackoff: DefaultMaxRetryBackoff,
	}
}

// Options translates the client settings into go-redis options. Retries back
// off exponentially between MinRetryBackoff and MaxRetryBackoff.
func (c *Client) Options() (*redis.Options, error) {
	opts, err := redis.ParseURL(c.Url)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	opts.PoolSize = c.PoolSize
	if opts.PoolSize <= 0 {
		opts.PoolSize = DefaultPoolSize
	}
	opts.DialTimeout = c.DialTimeout
	opts.MaxRetries = c.MaxRetries
	opts.MinRetryBackoff = c.MinRetryBackoff
	opts.MaxRetryBackoff = c.MaxRetryBackoff
	return opts, nil
}

// NewRedisClient builds the pool and pings the server once.
func (c *Client) NewRedisClient() (err error) {
	opts, err := c.Options()
	if err != nil {
		return err
	}
	log.Infof("Initializing and pinging database connection pool of %d at %s", opts.PoolSize, opts.Addr)
	c.c = redis.NewClient(opts)
	if _, err := c.c.Ping().Result(); err != nil {
		c.c.Close()
		c.c = nil
		return fmt.Errorf("ping database: %w", err)
	}
	log.Infof("Initialized and pinged database connection pool at %s", opts.Addr)
	return nil
}

func (c *Client) Scan(cursor uint64, match string, count int64) *redis.ScanCmd {
	return c.c.Scan(cursor, match, count)
}

func (c *Client) HGetAll(key string) *redis.StringStringMapCmd {
	return c.c.HGetAll(key)
}

func (c *Client) Close() error {
	if c.c == nil {
		return nil
	}
	return c.c.Close()
}
