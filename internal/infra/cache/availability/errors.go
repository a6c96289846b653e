package availability

import "errors"

var (
	// ErrCacheMiss возвращается, когда расписания нет в кеше
	ErrCacheMiss = errors.New("availability.cache: miss")

	// ErrStaleGeneration возвращается, когда расписание сохранили после чтения из БД
	ErrStaleGeneration = errors.New("availability.cache: stale generation")

	// ErrCache возвращается при ошибках redis или повреждённых данных
	ErrCache = errors.New("availability.cache: redis error")
)
