package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "lifecare:reviews"

// Cache кэш публичных списков отзывов в Redis.
// Инвалидация через счетчик версии: после Invalidate старые ключи
// больше не читаются и истекают по TTL.
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
	prefix string
}

// New создает кэш поверх клиента Redis
func New(client redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		prefix: defaultPrefix,
	}
}

// Get читает значение по ключу запроса в dst. Возвращает версию, под которой
// выполнялось чтение: при промахе страницу нужно сохранить через Set с этой версией.
func (c *Cache) Get(ctx context.Context, key string, dst interface{}) (int64, bool, error) {
	version, err := c.version(ctx)
	if err != nil {
		return 0, false, err
	}

	data, err := c.client.Get(ctx, c.listKey(version, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return version, false, nil
	}
	if err != nil {
		return version, false, fmt.Errorf("%w: get %s: %v", ErrCacheRead, key, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return version, false, fmt.Errorf("%w: decode %s: %v", ErrCacheRead, key, err)
	}

	return version, true, nil
}

// Set сохраняет значение под версией, полученной из Get.
// Если с тех пор был Invalidate, запись попадает в устаревшую версию и не читается.
func (c *Cache) Set(ctx context.Context, version int64, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrCacheWrite, key, err)
	}

	if err := c.client.Set(ctx, c.listKey(version, key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrCacheWrite, key, err)
	}

	return nil
}

// Invalidate сбрасывает все закэшированные списки
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, c.versionKey()).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidate, err)
	}
	return nil
}

func (c *Cache) version(ctx context.Context) (int64, error) {
	v, err := c.client.Get(ctx, c.versionKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: version: %v", ErrCacheRead, err)
	}
	return v, nil
}

func (c *Cache) versionKey() string {
	return c.prefix + ":version"
}

func (c *Cache) listKey(version int64, key string) string {
	return fmt.Sprintf("%s:v%d:%s", c.prefix, version, key)
}

// Nop кэш-заглушка, когда Redis выключен
type Nop struct{}

func (Nop) Get(context.Context, string, interface{}) (int64, bool, error) { return 0, false, nil }
func (Nop) Set(context.Context, int64, string, interface{}) error        { return nil }
func (Nop) Invalidate(context.Context) error                             { return nil }
