package server

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

func cors(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// clientLimiters holds a token bucket per client address.
type clientLimiters struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	limit   rate.Limit
	burst   int
	sweep   time.Time
}

type clientLimiter struct {
	lim  *rate.Limiter
	seen time.Time
}

const limiterIdle = 3 * time.Minute

func newClientLimiters(perSecond float64, burst int) *clientLimiters {
	if burst < 1 {
		burst = 1
	}
	return &clientLimiters{
		clients: make(map[string]*clientLimiter),
		limit:   rate.Limit(perSecond),
		burst:   burst,
		sweep:   time.Now(),
	}
}

func (cl *clientLimiters) allow(addr string, now time.Time) bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	if now.Sub(cl.sweep) > limiterIdle {
		for k, c := range cl.clients {
			if now.Sub(c.seen) > limiterIdle {
				delete(cl.clients, k)
			}
		}
		cl.sweep = now
	}
	c, ok := cl.clients[addr]
	if !ok {
		c = &clientLimiter{lim: rate.NewLimiter(cl.limit, cl.burst)}
		cl.clients[addr] = c
	}
	c.seen = now
	return c.lim.AllowN(now, 1)
}

func rateLimit(h http.Handler, perSecond float64, burst int) http.Handler {
	if perSecond <= 0 {
		return h
	}
	cl := newClientLimiters(perSecond, burst)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !cl.allow(clientAddr(r), time.Now()) {
			writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "Rate limit exceeded"})
			return
		}
		h.ServeHTTP(w, r)
	})
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

type ctxKey int

const (
	logKey ctxKey = iota
	userKey
)

// logEntry returns the request scoped logger.
func logEntry(ctx context.Context) *logrus.Entry {
	if e, ok := ctx.Value(logKey).(*logrus.Entry); ok {
		return e
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if sr.status == 0 {
		sr.status = http.StatusOK
	}
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += n
	return n, err
}

func logRequests(h http.Handler, log *logrus.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		entry := log.WithFields(logrus.Fields{
			"request_id": id,
			"method":     r.Method,
			"path":       r.URL.Path,
			"remote":     clientAddr(r),
		})
		w.Header().Set("X-Request-Id", id)
		rec := &statusRecorder{ResponseWriter: w}
		start := time.Now()
		h.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), logKey, entry)))
		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		entry.WithFields(logrus.Fields{
			"status":   rec.status,
			"bytes":    rec.bytes,
			"duration": time.Since(start).String(),
		}).Debug("request")
	})
}

// requireAuth rejects requests without a session. API requests get a JSON
// 401, page requests are redirected to the login page.
func (s *Server) requireAuth(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := s.sessions.user(r)
		if !ok {
			if strings.HasPrefix(r.URL.Path, "/api/") {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
				return
			}
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		ctx := context.WithValue(r.Context(), userKey, u)
		ctx = context.WithValue(ctx, logKey, logEntry(ctx).WithField("user", u.Username))
		h(w, r.WithContext(ctx))
	}
}

// requireRole rejects requests whose session user lacks role.
func (s *Server) requireRole(role Role, h http.HandlerFunc) http.HandlerFunc {
	return s.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		if u := requestUser(r); u.Role != role {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		h(w, r)
	})
}

func requestUser(r *http.Request) User {
	u, _ := r.Context().Value(userKey).(User)
	return u
}
