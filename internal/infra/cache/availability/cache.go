package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/prescriber-availability/internal/domain"
)

// setIfGenerationScript пишет значение, только если поколение не менялось с момента чтения из БД.
// KEYS[1] - ключ расписания, KEYS[2] - ключ поколения; ARGV: значение, ожидаемое поколение, TTL в мс.
var setIfGenerationScript = redis.NewScript(`
local current = tonumber(redis.call("GET", KEYS[2]) or "0")
if current ~= tonumber(ARGV[2]) then
  return 0
end
redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[3])
return 1
`)

// Cache кеш сохранённых расписаний специалистов.
// Значение хранится в том же виде, что и в API: {"availability": [...]}.
//
// Каждое сохранение увеличивает поколение специалиста. Заполнение кеша после чтения из БД
// передаёт поколение, прочитанное до запроса в БД, и не выполняется, если оно устарело.
type Cache struct {
	rdb    redis.Cmdable
	ttl    time.Duration
	prefix string
}

// NewCache создает кеш поверх redis клиента
func NewCache(rdb redis.Cmdable, ttl time.Duration, prefix string) *Cache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if prefix == "" {
		prefix = "availability"
	}
	return &Cache{rdb: rdb, ttl: ttl, prefix: prefix}
}

// Get возвращает расписание из кеша или ErrCacheMiss
func (c *Cache) Get(ctx context.Context, prescriberID int64) (domain.WeeklyAvailability, error) {
	raw, err := c.rdb.Get(ctx, c.key(prescriberID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - %v", ErrCache, err)
	}

	var doc domain.AvailabilityDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: Get - decode prescriber=%d: %v", ErrCache, prescriberID, err)
	}
	return domain.NewAvailabilityDocument(doc.Availability).Availability, nil
}

// Generation возвращает текущее поколение расписания; 0, если сохранений ещё не было
func (c *Cache) Generation(ctx context.Context, prescriberID int64) (int64, error) {
	gen, err := c.rdb.Get(ctx, c.generationKey(prescriberID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Generation - %v", ErrCache, err)
	}
	return gen, nil
}

// Set сохраняет расписание, прочитанное при поколении generation.
// Если с тех пор расписание сохранялось, возвращает ErrStaleGeneration и ничего не пишет.
func (c *Cache) Set(ctx context.Context, prescriberID int64, availability domain.WeeklyAvailability, generation int64) error {
	raw, err := json.Marshal(domain.NewAvailabilityDocument(availability))
	if err != nil {
		return fmt.Errorf("%w: Set - encode prescriber=%d: %v", ErrCache, prescriberID, err)
	}

	keys := []string{c.key(prescriberID), c.generationKey(prescriberID)}
	written, err := setIfGenerationScript.Run(ctx, c.rdb, keys, raw, generation, c.ttl.Milliseconds()).Int64()
	if err != nil {
		return fmt.Errorf("%w: Set - %v", ErrCache, err)
	}
	if written == 0 {
		return fmt.Errorf("%w: prescriber=%d, generation=%d", ErrStaleGeneration, prescriberID, generation)
	}
	return nil
}

// Invalidate увеличивает поколение и удаляет расписание из кеша.
// Вызывается после коммита сохранения.
func (c *Cache) Invalidate(ctx context.Context, prescriberID int64) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, c.generationKey(prescriberID))
		pipe.Del(ctx, c.key(prescriberID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: Invalidate - %v", ErrCache, err)
	}
	return nil
}

func (c *Cache) key(prescriberID int64) string {
	return fmt.Sprintf("%s:%d", c.prefix, prescriberID)
}

func (c *Cache) generationKey(prescriberID int64) string {
	return fmt.Sprintf("%s:gen:%d", c.prefix, prescriberID)
}
