// Package service implements the trimmed admin-only JWT issuer.
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/headuck/gophonelite/platform/config"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type Service struct {
	cfg config.AuthServiceConfig
}

func New(cfg config.AuthServiceConfig) *Service {
	return &Service{cfg: cfg}
}

// SignIn validates username/password against the single configured admin
// account and, on success, issues a signed access token carrying the
// "admin" role. There is no user store: the admin credential is the only
// account this trimmed context knows about.
func (s *Service) SignIn(username, password string) (string, error) {
	if username != s.cfg.GetAdminUsername() {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.GetAdminPasswordHash()), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.issueAccessToken(username)
}

// adminSubjectNamespace scopes the deterministic admin UUID away from any
// other UUIDv5 namespace this service might one day mint identities under.
var adminSubjectNamespace = uuid.MustParse("6f2f0f1a-5c9f-4a3d-8f36-6a8a2b6b6b6b")

func (s *Service) issueAccessToken(subject string) (string, error) {
	now := time.Now()
	// httpkit.AuthRequired parses the "sub" claim as a UUID; the trimmed
	// admin account has no user-table row to draw a real one from, so it
	// is derived deterministically from the username instead.
	subjectID := uuid.NewSHA1(adminSubjectNamespace, []byte(subject))
	claims := jwt.MapClaims{
		"sub":   subjectID.String(),
		"type":  "access",
		"roles": []string{"admin"},
		"iat":   now.Unix(),
		"exp":   now.Add(s.cfg.GetAccessTokenTTL()).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.GetJWTAccessSecret()))
}
