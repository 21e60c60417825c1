// Package ratelimit keeps one token bucket per key with automatic cleanup of idle keys.
package ratelimit

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	maxKeys = 1000
	idleTTL = 5 * time.Minute
)

// Limiter is a keyed rate limiter.
type Limiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New allows requestsPerMin events per key per minute. A fresh key gets the
// whole minute's quota at once; it then refills one event every minute/requestsPerMin.
func New(requestsPerMin int) *Limiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 60
	}
	return &Limiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxKeys, nil, idleTTL),
		rate:     rate.Every(time.Minute / time.Duration(requestsPerMin)),
		burst:    requestsPerMin,
	}
}

// Allow reports whether one more event for key fits in its bucket.
func (l *Limiter) Allow(key string) bool {
	limiter, ok := l.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
