package mockapi

import (
	"net/http"
	"sync"
	"time"

	"carexpert/models"
	"carexpert/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// rateLimiterStore holds a map of client IPs to their rate limiters.
type rateLimiterStore struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
}

var limiterStore = &rateLimiterStore{
	limiters: make(map[string]*rate.Limiter),
}

// getLimiter returns the rate limiter for a given IP, creating one if it doesn't exist.
func (s *rateLimiterStore) getLimiter(ip string, perMin int) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin)
		s.limiters[ip] = limiter
	}
	return limiter
}

// RateLimitMiddleware limits requests per client IP.
func RateLimitMiddleware(perMin int) gin.HandlerFunc {
	if perMin <= 0 {
		perMin = 100
	}
	return func(c *gin.Context) {
		logger := utils.GetLogger()
		ip := c.ClientIP()
		limiter := limiterStore.getLimiter(ip, perMin)
		if !limiter.Allow() {
			logger.Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}

const claimsKey = "sessionClaims"

// AuthMiddleware validates the session cookie and stores its claims on the
// context. Requests without a valid session get the envelope-shaped 401 the
// real backend sends.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err != nil || token == "" {
			abortEnvelope(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		claims, err := utils.ValidateToken(token)
		if err != nil {
			abortEnvelope(c, http.StatusUnauthorized, "Session expired, please login again")
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRole gates a route group to one role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := sessionFrom(c)
		if claims == nil || claims.Role != role {
			abortEnvelope(c, http.StatusForbidden, "You are not allowed to perform this action")
			return
		}
		c.Next()
	}
}

func sessionFrom(c *gin.Context) *utils.SessionClaims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*utils.SessionClaims)
	return claims
}

func abortEnvelope(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, models.Envelope{
		StatusCode: status,
		Message:    message,
		Success:    false,
	})
}
