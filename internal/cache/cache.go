// Package cache keeps computed responses in redis.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/lonng/riichi/pkg/errutil"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const (
	defaultTimeout = time.Second
	defaultTTL     = 10 * time.Minute
	keyPrefix      = "riichi:"
)

var (
	client *redis.Client
	ttl    = defaultTTL
	logger = log.WithField("component", "cache")
)

// MustBootUp connects to redis and returns the closer. Operations fail with
// ErrCacheOperation until it has run.
func MustBootUp(addr, password string, db int, expire time.Duration) func() {
	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		panic(err)
	}

	client = c
	if expire > 0 {
		ttl = expire
	}
	logger.Infof("Redis connected, Addr=%s DB=%d TTL=%s", addr, db, ttl)

	return func() {
		client = nil
		c.Close()
		logger.Info("stopped")
	}
}

// Enabled reports whether MustBootUp has run.
func Enabled() bool { return client != nil }

// Key hashes v into a stable cache key under namespace.
func Key(namespace string, v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	sum := sha1.Sum(data)
	return keyPrefix + namespace + ":" + hex.EncodeToString(sum[:]), nil
}

func timeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), defaultTimeout)
}

// SetStruct stores v as JSON with the configured TTL.
func SetStruct(k string, v interface{}) error {
	if client == nil {
		return errutil.ErrCacheOperation
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	ctx, cancel := timeout()
	defer cancel()
	if err := client.Set(ctx, k, data, ttl).Err(); err != nil {
		logger.Error(err)
		return errors.Wrap(errutil.ErrCacheOperation, err.Error())
	}
	return nil
}

// Struct loads the JSON stored at k into v.
func Struct(k string, v interface{}) error {
	if client == nil {
		return errutil.ErrCacheOperation
	}

	ctx, cancel := timeout()
	defer cancel()
	data, err := client.Get(ctx, k).Bytes()
	if err == redis.Nil {
		return errutil.ErrNotFound
	}
	if err != nil {
		logger.Error(err)
		return errors.Wrap(errutil.ErrCacheOperation, err.Error())
	}
	return json.Unmarshal(data, v)
}

func Delete(k string) error {
	if client == nil {
		return errutil.ErrCacheOperation
	}

	ctx, cancel := timeout()
	defer cancel()
	return client.Del(ctx, k).Err()
}

func Exists(k string) bool {
	if client == nil {
		return false
	}

	ctx, cancel := timeout()
	defer cancel()
	n, err := client.Exists(ctx, k).Result()
	return err == nil && n > 0
}
