// Package auth checks request tokens. There are two token forms: regular
// callers present sha512(account + login + salt); the admin presents
// sha512(YYYYMMDDHH + adminSalt), which is only good for the current local
// hour.
package auth

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"scoring-api/internal/scoring/request"
)

// Default salts, kept from the legacy deployment; override via config.
const (
	DefaultSalt      = "Otus"
	DefaultAdminSalt = "42"
)

// adminHourLayout formats the hour window the admin token is bound to.
const adminHourLayout = "2006010215"

// Checker validates envelope tokens against the configured salts.
type Checker struct {
	salt      string
	adminSalt string
	now       func() time.Time
}

// Option configures a Checker.
type Option func(*Checker)

// WithClock overrides the time source; tests pin the admin hour window.
func WithClock(now func() time.Time) Option {
	return func(c *Checker) {
		c.now = now
	}
}

// New builds a Checker. Empty salts fall back to the defaults.
func New(salt, adminSalt string, opts ...Option) *Checker {
	c := &Checker{salt: salt, adminSalt: adminSalt, now: time.Now}
	if c.salt == "" {
		c.salt = DefaultSalt
	}
	if c.adminSalt == "" {
		c.adminSalt = DefaultAdminSalt
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check reports whether the envelope token matches the expected digest.
// Any mismatch, including an empty token, fails closed.
func (c *Checker) Check(req *request.MethodRequest) bool {
	var expected string
	if req.IsAdmin() {
		expected = Digest(c.now().Format(adminHourLayout) + c.adminSalt)
	} else {
		expected = Digest(req.Account + req.Login + c.salt)
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(req.Token)) == 1
}

// Digest returns the hex SHA-512 of s. Exported so tests and clients can
// mint valid tokens.
func Digest(s string) string {
	sum := sha512.Sum512([]byte(s))
	return hex.EncodeToString(sum[:])
}

// AdminToken returns the admin token valid at the given time.
func AdminToken(adminSalt string, at time.Time) string {
	if adminSalt == "" {
		adminSalt = DefaultAdminSalt
	}
	return Digest(at.Format(adminHourLayout) + adminSalt)
}

// UserToken returns the token a regular caller must present.
func UserToken(account, login, salt string) string {
	if salt == "" {
		salt = DefaultSalt
	}
	return Digest(account + login + salt)
}
