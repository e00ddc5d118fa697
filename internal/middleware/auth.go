// Package middleware guards the API with an optional owner session. The shop
// runs single-user on one device; when OWNER_PASSCODE is unset the API is
// open (local mode), otherwise every /api route requires a bearer token
// issued by the login endpoint.
package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"backend/pkg/response"
)

const sessionTTL = 24 * time.Hour

var (
	passcodeHash []byte

	ErrAuthDisabled    = errors.New("owner passcode not configured")
	ErrInvalidPasscode = errors.New("invalid passcode")
)

// GetJWTSecret reads the session signing secret, with a development fallback.
func GetJWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if os.Getenv("GIN_MODE") == "release" {
			panic("FATAL: JWT_SECRET environment variable is required in release mode")
		}
		secret = "default_super_secret_key" // Development fallback only — DO NOT use in production
	}
	return []byte(secret)
}

// InitOwnerAuth hashes the configured passcode once at startup. Returns
// whether auth is enabled.
func InitOwnerAuth() bool {
	passcode := os.Getenv("OWNER_PASSCODE")
	if passcode == "" {
		passcodeHash = nil
		return false
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		panic("FATAL: failed to hash owner passcode: " + err.Error())
	}
	passcodeHash = hash
	return true
}

// Enabled reports whether owner auth is active.
func Enabled() bool {
	return passcodeHash != nil
}

// Login checks the passcode and issues a signed session token.
func Login(passcode string) (string, error) {
	if !Enabled() {
		return "", ErrAuthDisabled
	}
	if err := bcrypt.CompareHashAndPassword(passcodeHash, []byte(passcode)); err != nil {
		return "", ErrInvalidPasscode
	}
	claims := jwt.MapClaims{
		"sub": "owner",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(GetJWTSecret())
}

func validToken(tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return GetJWTSecret(), nil
	})
	return err == nil && token.Valid
}

// RequireOwner validates the bearer token on API routes. A no-op when auth is
// disabled.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Enabled() {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
			return
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid authorization format. Expected 'Bearer <token>'"))
			return
		}
		if !validToken(parts[1]) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid token"))
			return
		}
		c.Next()
	}
}

// RequireOwnerQueryToken guards the websocket endpoint, which cannot send
// headers from a browser; the token rides in the query string instead.
func RequireOwnerQueryToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Enabled() {
			c.Next()
			return
		}
		if !validToken(c.Query("token")) {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}
