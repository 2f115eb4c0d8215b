package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/edukshare-max/fastapi-backend/internal/apierror"
)

// ipEntry tracks request counts per IP within a sliding window.
type ipEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

// limiter is a sliding-window per-IP rate limiter. Two instances exist:
// one for the whole API and a stricter one for the login endpoints.
type limiter struct {
	entries map[string]*ipEntry
	mu      sync.Mutex
	limit   int
	window  time.Duration
	message string
}

func newLimiter(limit int, window time.Duration, message string) *limiter {
	l := &limiter{
		entries: make(map[string]*ipEntry),
		limit:   limit,
		window:  window,
		message: message,
	}
	go l.purgeLoop()
	return l
}

func (l *limiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		l.mu.Lock()
		entry, ok := l.entries[ip]
		if !ok {
			entry = &ipEntry{}
			l.entries[ip] = entry
		}
		l.mu.Unlock()

		entry.mu.Lock()
		defer entry.mu.Unlock()

		now := time.Now()
		if now.After(entry.windowEnd) {
			entry.count = 0
			entry.windowEnd = now.Add(l.window)
		}

		entry.count++
		if entry.count > l.limit {
			c.Header("Retry-After", entry.windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.message))
			return
		}
		c.Next()
	}
}

// purgeLoop removes expired entries so IPs that never return do not
// accumulate forever.
func (l *limiter) purgeLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		purged := 0
		l.mu.Lock()
		for ip, entry := range l.entries {
			entry.mu.Lock()
			if now.After(entry.windowEnd) {
				delete(l.entries, ip)
				purged++
			}
			entry.mu.Unlock()
		}
		remaining := len(l.entries)
		l.mu.Unlock()

		if purged > 0 {
			log.Debug().
				Int("purged", purged).
				Int("remaining", remaining).
				Msg("rate limiter entries purged")
		}
	}
}

// RateLimiter limits general API traffic per IP per minute.
func RateLimiter(limit int) gin.HandlerFunc {
	return newLimiter(limit, time.Minute,
		"Demasiadas peticiones desde esta IP, intente de nuevo más tarde.").handler()
}

// LoginRateLimiter applies a stricter per-IP limit to the login endpoints.
func LoginRateLimiter(limit int) gin.HandlerFunc {
	return newLimiter(limit, time.Minute,
		"Demasiados intentos de login. Intente en 1 minuto.").handler()
}
