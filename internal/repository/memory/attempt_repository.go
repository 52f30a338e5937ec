package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// AttemptRepository tracks failed sign-in attempts per email in process
// memory. Entries expire on their own, so a quiet account resets naturally.
type AttemptRepository struct {
	cache  *cache.Cache
	window time.Duration
}

func NewAttemptRepository(window time.Duration) *AttemptRepository {
	c := cache.New(window, 10*time.Minute)
	return &AttemptRepository{
		cache:  c,
		window: window,
	}
}

func (r *AttemptRepository) RecordFailure(email string) int {
	if n, found := r.cache.Get(email); found {
		count := n.(int) + 1
		r.cache.Set(email, count, cache.DefaultExpiration)
		return count
	}
	r.cache.Set(email, 1, cache.DefaultExpiration)
	return 1
}

func (r *AttemptRepository) Failures(email string) int {
	if n, found := r.cache.Get(email); found {
		return n.(int)
	}
	return 0
}

func (r *AttemptRepository) Reset(email string) {
	r.cache.Delete(email)
}
