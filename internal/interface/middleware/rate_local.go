package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// localLimiter keeps one token bucket per key: max tokens, refilled evenly
// over window.
type localLimiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	every   rate.Limit
	buckets map[string]*bucket
	now     func() time.Time
	sweepAt time.Time
}

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

func newLocalLimiter(max int, window time.Duration) *localLimiter {
	return &localLimiter{
		max:     max,
		window:  window,
		every:   rate.Every(window / time.Duration(max)),
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

func (l *localLimiter) check(_ *gin.Context, key string) (limitState, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.every, l.max)}
		l.buckets[key] = b
	}
	b.seen = now

	allowed := b.lim.AllowN(now, 1)
	st := limitState{remaining: int(b.lim.TokensAt(now)), exceeded: !allowed}
	if !allowed {
		// time until one token is back
		wait := time.Duration(float64(time.Second) / float64(l.every))
		st.resetSec = int((wait + time.Second - 1) / time.Second)
	}
	return st, true
}

// sweep drops buckets idle for a full window; they would be full again anyway.
func (l *localLimiter) sweep(now time.Time) {
	if now.Before(l.sweepAt) {
		return
	}
	for k, b := range l.buckets {
		if now.Sub(b.seen) >= l.window {
			delete(l.buckets, k)
		}
	}
	l.sweepAt = now.Add(l.window)
}
