package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/inventario-console/internal/application/dto"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter limita peticiones por IP de cliente (login y registro).
type IPRateLimiter struct {
	perMinute int
	mu        sync.Mutex
	clients   map[string]*clientLimiter
}

// NewIPRateLimiter construye el limitador; perMinute <= 0 usa 10.
func NewIPRateLimiter(perMinute int) *IPRateLimiter {
	if perMinute <= 0 {
		perMinute = 10
	}
	return &IPRateLimiter{perMinute: perMinute, clients: map[string]*clientLimiter{}}
}

// Handler middleware Fiber: 429 cuando la IP agota su cupo.
func (m *IPRateLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !m.allow(c.IP()) {
			c.Set(fiber.HeaderRetryAfter, "60")
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code: "RATE_LIMITED", Message: "demasiados intentos, espere un momento",
			})
		}
		return c.Next()
	}
}

func (m *IPRateLimiter) allow(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	cl, ok := m.clients[ip]
	if !ok {
		cl = &clientLimiter{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(m.perMinute)), m.perMinute),
		}
		m.clients[ip] = cl
	}
	cl.lastSeen = now
	m.gcLocked(now)
	return cl.limiter.AllowN(now, 1)
}

func (m *IPRateLimiter) gcLocked(now time.Time) {
	if len(m.clients) < 1000 {
		return
	}
	cutoff := now.Add(-10 * time.Minute)
	for ip, cl := range m.clients {
		if cl.lastSeen.Before(cutoff) {
			delete(m.clients, ip)
		}
	}
}
