package availability

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/prescriber-availability/internal/domain"
	"github.com/m04kA/prescriber-availability/internal/engine/normalizer"
	cacheAvailability "github.com/m04kA/prescriber-availability/internal/infra/cache/availability"
	"github.com/m04kA/prescriber-availability/internal/service/availability/models"
	"github.com/m04kA/prescriber-availability/pkg/logger"
)

type fakeRepo struct {
	stored   map[int64]domain.WeeklyAvailability
	getCalls int
	getErr   error
	replErr  error
	inTx     bool
	// onGet вызывается до чтения, имитирует конкурентную запись
	onGet func()
}

func (r *fakeRepo) GetByPrescriberID(_ context.Context, id int64) (domain.WeeklyAvailability, error) {
	r.getCalls++
	if r.getErr != nil {
		return nil, r.getErr
	}
	// снимок до конкурентной записи: запрос уже прочитал старые строки
	a, ok := r.stored[id]
	if r.onGet != nil {
		hook := r.onGet
		r.onGet = nil
		hook()
	}
	if ok {
		return a, nil
	}
	return domain.WeeklyAvailability{}, nil
}

func (r *fakeRepo) Replace(ctx context.Context, id int64, a domain.WeeklyAvailability) error {
	r.inTx = ctx.Value(txMarker{}) != nil
	if r.replErr != nil {
		return r.replErr
	}
	r.stored[id] = a
	return nil
}

type fakeCache struct {
	data        map[int64]domain.WeeklyAvailability
	generations map[int64]int64
	getErr      error
	genErr      error
	invalidated []int64
}

func (c *fakeCache) Get(_ context.Context, id int64) (domain.WeeklyAvailability, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	a, ok := c.data[id]
	if !ok {
		return nil, cacheAvailability.ErrCacheMiss
	}
	return a, nil
}

func (c *fakeCache) Generation(_ context.Context, id int64) (int64, error) {
	if c.genErr != nil {
		return 0, c.genErr
	}
	return c.generations[id], nil
}

func (c *fakeCache) Set(_ context.Context, id int64, a domain.WeeklyAvailability, generation int64) error {
	if c.generations[id] != generation {
		return cacheAvailability.ErrStaleGeneration
	}
	c.data[id] = a
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, id int64) error {
	c.generations[id]++
	delete(c.data, id)
	c.invalidated = append(c.invalidated, id)
	return nil
}

type txMarker struct{}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(context.WithValue(ctx, txMarker{}, true))
}

type fakeMetrics struct {
	lookups     map[string]int
	validations int
}

func (m *fakeMetrics) CacheLookup(result string) { m.lookups[result]++ }
func (m *fakeMetrics) ValidationFailed()         { m.validations++ }

type fixture struct {
	svc     *Service
	repo    *fakeRepo
	cache   *fakeCache
	metrics *fakeMetrics
}

func newFixture(withCache bool) *fixture {
	f := &fixture{
		repo:    &fakeRepo{stored: map[int64]domain.WeeklyAvailability{}},
		cache:   &fakeCache{data: map[int64]domain.WeeklyAvailability{}, generations: map[int64]int64{}},
		metrics: &fakeMetrics{lookups: map[string]int{}},
	}
	var cache AvailabilityCache
	if withCache {
		cache = f.cache
	}
	f.svc = NewService(f.repo, cache, normalizer.New(normalizer.Options{}), fakeTxManager{}, f.metrics, logger.NewNop())
	return f
}

func TestService_Get_UsesCache(t *testing.T) {
	f := newFixture(true)
	f.repo.stored[7] = domain.WeeklyAvailability{{Day: "Monday", StartTime: "09:00", EndTime: "17:00"}}
	ctx := context.Background()

	first, err := f.svc.Get(ctx, 7)
	require.NoError(t, err)
	second, err := f.svc.Get(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first.Availability, 1)
	assert.Equal(t, 1, f.repo.getCalls)
	assert.Equal(t, 1, f.metrics.lookups["miss"])
	assert.Equal(t, 1, f.metrics.lookups["hit"])
}

func TestService_Get_CacheErrorFallsBackToRepository(t *testing.T) {
	f := newFixture(true)
	f.cache.getErr = errors.New("redis down")
	f.repo.stored[7] = domain.WeeklyAvailability{{Day: "Monday", StartTime: "09:00", EndTime: "17:00"}}

	resp, err := f.svc.Get(context.Background(), 7)

	require.NoError(t, err)
	assert.Len(t, resp.Availability, 1)
	assert.Equal(t, 1, f.metrics.lookups["error"])
}

func TestService_Get_NoAvailability(t *testing.T) {
	f := newFixture(false)

	resp, err := f.svc.Get(context.Background(), 9)

	require.NoError(t, err)
	assert.NotNil(t, resp.Availability)
	assert.Empty(t, resp.Availability)
}

func TestService_Get_GenerationErrorSkipsFill(t *testing.T) {
	f := newFixture(true)
	f.cache.genErr = errors.New("redis down")
	f.repo.stored[7] = domain.WeeklyAvailability{{Day: "Monday", StartTime: "09:00", EndTime: "17:00"}}

	resp, err := f.svc.Get(context.Background(), 7)

	require.NoError(t, err)
	assert.Len(t, resp.Availability, 1)
	assert.NotContains(t, f.cache.data, int64(7))
}

// Сохранение, завершившееся между чтением из БД и записью в кеш,
// не должно оставить в кеше старое расписание.
func TestService_Get_SaveDuringMissDoesNotCacheStaleData(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	repo := &fakeRepo{stored: map[int64]domain.WeeklyAvailability{
		7: {{Day: "Monday", StartTime: "09:00", EndTime: "17:00"}},
	}}
	cache := cacheAvailability.NewCache(rdb, time.Minute, "test")
	svc := NewService(repo, cache, normalizer.New(normalizer.Options{}), fakeTxManager{}, &fakeMetrics{lookups: map[string]int{}}, logger.NewNop())
	ctx := context.Background()

	repo.onGet = func() {
		_, err := svc.Save(ctx, &models.SaveAvailabilityRequest{
			UserID:       7,
			PrescriberID: 7,
			Availability: json.RawMessage(`[{"day":"Friday","startTime":"10:00","endTime":"14:00"}]`),
		})
		require.NoError(t, err)
	}

	stale, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Monday", stale.Availability[0].Day)
	assert.False(t, mr.Exists("test:7"))

	fresh, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, domain.WeeklyAvailability{{Day: "Friday", StartTime: "10:00", EndTime: "14:00"}}, fresh.Availability)

	cached, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, fresh, cached)
	assert.Equal(t, 2, repo.getCalls)
}

func TestService_Get_RepositoryError(t *testing.T) {
	f := newFixture(false)
	f.repo.getErr = errors.New("db down")

	_, err := f.svc.Get(context.Background(), 7)

	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Save(t *testing.T) {
	f := newFixture(true)
	f.cache.data[7] = domain.WeeklyAvailability{{Day: "Sunday", StartTime: "09:00", EndTime: "10:00"}}

	resp, err := f.svc.Save(context.Background(), &models.SaveAvailabilityRequest{
		UserID:       7,
		PrescriberID: 7,
		Availability: json.RawMessage(`[
			{"day":"monday","startTime":"9:00","endTime":"12:00"},
			{"day":"","startTime":"10:00"},
			{"day":"Wednesday"}
		]`),
	})

	require.NoError(t, err)
	want := domain.WeeklyAvailability{
		{Day: "Monday", StartTime: "09:00", EndTime: "12:00"},
		{Day: "Wednesday", StartTime: "09:00", EndTime: "17:00"},
	}
	assert.Equal(t, want, resp.Availability)
	assert.Equal(t, want, f.repo.stored[7])
	assert.True(t, f.repo.inTx)
	assert.Equal(t, []int64{7}, f.cache.invalidated)
	assert.NotContains(t, f.cache.data, int64(7))
}

func TestService_Save_LegacyShape(t *testing.T) {
	f := newFixture(false)

	resp, err := f.svc.Save(context.Background(), &models.SaveAvailabilityRequest{
		UserID:       7,
		PrescriberID: 7,
		Availability: json.RawMessage(`["Monday","Wednesday"]`),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Availability, 2)
}

func TestService_Save_ValidationError(t *testing.T) {
	f := newFixture(false)

	_, err := f.svc.Save(context.Background(), &models.SaveAvailabilityRequest{
		UserID:       7,
		PrescriberID: 7,
		Availability: json.RawMessage(`[{"day":"Monday","startTime":"17:00","endTime":"09:00"}]`),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, normalizer.ErrValidation)
	var vErr *normalizer.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Issues, 1)
	assert.Empty(t, f.repo.stored)
	assert.Equal(t, 1, f.metrics.validations)
}

func TestService_Save_InertSlotWithInvertedTimes(t *testing.T) {
	f := newFixture(false)

	resp, err := f.svc.Save(context.Background(), &models.SaveAvailabilityRequest{
		UserID:       7,
		PrescriberID: 7,
		Availability: json.RawMessage(`[
			{"day":"Tuesday","startTime":"09:00","endTime":"12:00"},
			{"day":"","startTime":"17:00","endTime":"09:00"}
		]`),
	})

	require.NoError(t, err)
	want := domain.WeeklyAvailability{{Day: "Tuesday", StartTime: "09:00", EndTime: "12:00"}}
	assert.Equal(t, want, resp.Availability)
	assert.Equal(t, want, f.repo.stored[7])
	assert.Zero(t, f.metrics.validations)
}

func TestService_Save_UnreadableShapeKeepsStoredAvailability(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "wrong wrapper key", body: `{"slots":[{"day":"Monday","startTime":"09:00","endTime":"17:00"}]}`},
		{name: "bare string", body: `"Monday"`},
		{name: "number", body: `42`},
		{name: "availability is an object", body: `{"availability":{"day":"Monday"}}`},
		{name: "null", body: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(true)
			stored := domain.WeeklyAvailability{{Day: "Monday", StartTime: "09:00", EndTime: "17:00"}}
			f.repo.stored[7] = stored

			_, err := f.svc.Save(context.Background(), &models.SaveAvailabilityRequest{
				UserID:       7,
				PrescriberID: 7,
				Availability: json.RawMessage(tt.body),
			})

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, stored, f.repo.stored[7])
			assert.Empty(t, f.cache.invalidated)
		})
	}
}

func TestService_Save_EmptyListClearsAvailability(t *testing.T) {
	f := newFixture(false)
	f.repo.stored[7] = domain.WeeklyAvailability{{Day: "Monday", StartTime: "09:00", EndTime: "17:00"}}

	resp, err := f.svc.Save(context.Background(), &models.SaveAvailabilityRequest{
		UserID:       7,
		PrescriberID: 7,
		Availability: json.RawMessage(`{"availability":[]}`),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Availability)
	assert.Empty(t, f.repo.stored[7])
}

func TestService_Save_AccessDenied(t *testing.T) {
	f := newFixture(false)

	_, err := f.svc.Save(context.Background(), &models.SaveAvailabilityRequest{
		UserID:       8,
		PrescriberID: 7,
		Availability: json.RawMessage(`[]`),
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Save_RepositoryError(t *testing.T) {
	f := newFixture(true)
	f.repo.replErr = errors.New("deadlock")

	_, err := f.svc.Save(context.Background(), &models.SaveAvailabilityRequest{
		UserID:       7,
		PrescriberID: 7,
		Availability: json.RawMessage(`["Friday"]`),
	})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, f.cache.invalidated)
}

func TestService_Edit(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()
	draft := json.RawMessage(`[{"day":"Monday","startTime":"09:00","endTime":"12:00"}]`)

	tests := []struct {
		name       string
		req        models.EditAvailabilityRequest
		want       domain.WeeklyAvailability
		wantIssues int
	}{
		{
			name: "toggle existing day off",
			req:  models.EditAvailabilityRequest{Operation: models.OpToggleDay, Draft: draft, Day: "Monday"},
			want: domain.WeeklyAvailability{},
		},
		{
			name: "add split shift",
			req:  models.EditAvailabilityRequest{Operation: models.OpAddSlot, Draft: draft, Day: "Monday"},
			want: domain.WeeklyAvailability{
				{Day: "Monday", StartTime: "09:00", EndTime: "12:00"},
				{Day: "Monday", StartTime: "09:00", EndTime: "17:00"},
			},
		},
		{
			name: "remove out of range is no-op",
			req:  models.EditAvailabilityRequest{Operation: models.OpRemoveSlot, Draft: draft, Day: "Monday", Index: 3},
			want: domain.WeeklyAvailability{{Day: "Monday", StartTime: "09:00", EndTime: "12:00"}},
		},
		{
			name: "inverted update is allowed but reported",
			req: models.EditAvailabilityRequest{
				Operation: models.OpUpdateSlotTime, Draft: draft, Day: "Monday", Index: 0,
				Field: domain.FieldStartTime, Value: "13:00",
			},
			want:       domain.WeeklyAvailability{{Day: "Monday", StartTime: "13:00", EndTime: "12:00"}},
			wantIssues: 1,
		},
		{
			name: "preset replaces draft",
			req:  models.EditAvailabilityRequest{Operation: models.OpApplyPreset, Draft: draft, Preset: "weekends"},
			want: domain.WeeklyAvailability{
				{Day: "Saturday", StartTime: "09:00", EndTime: "17:00"},
				{Day: "Sunday", StartTime: "09:00", EndTime: "17:00"},
			},
		},
		{
			name: "normalize legacy draft",
			req:  models.EditAvailabilityRequest{Operation: models.OpNormalize, Draft: json.RawMessage(`["Tuesday"]`)},
			want: domain.WeeklyAvailability{{Day: "Tuesday", StartTime: "09:00", EndTime: "17:00"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := f.svc.Edit(ctx, &tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Availability)
			assert.Len(t, resp.Issues, tt.wantIssues)
		})
	}
}

func TestService_Edit_InvalidRequests(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	_, err := f.svc.Edit(ctx, &models.EditAvailabilityRequest{Operation: "undo"})
	assert.ErrorIs(t, err, ErrUnknownOperation)

	_, err = f.svc.Edit(ctx, &models.EditAvailabilityRequest{Operation: models.OpToggleDay})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.Edit(ctx, &models.EditAvailabilityRequest{Operation: models.OpUpdateSlotTime, Day: "Monday", Field: "day"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
