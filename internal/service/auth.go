package service

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"filesmanager/internal/password"
	"filesmanager/internal/repository"
	"filesmanager/internal/session"
)

// AuthService opens and closes sessions.
type AuthService interface {
	// Connect checks the Basic credentials in authorization and returns a new session token.
	Connect(ctx context.Context, authorization string) (string, error)

	// Disconnect ends the session identified by token.
	Disconnect(ctx context.Context, token string) error
}

type authService struct {
	users    repository.UserRepository
	sessions session.Store
	auth     *Authorizer
	timeout  time.Duration
}

func NewAuthService(users repository.UserRepository, sessions session.Store, auth *Authorizer, timeout time.Duration) AuthService {
	return &authService{users: users, sessions: sessions, auth: auth, timeout: timeout}
}

func (s *authService) Connect(ctx context.Context, authorization string) (string, error) {
	email, pass, ok := parseBasic(authorization)
	if !ok {
		return "", ErrUnauthorized
	}

	ctx, cancel := bounded(ctx, s.timeout)
	defer cancel()

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrUnauthorized
		}
		return "", err
	}
	if !password.Verify(pass, u.PasswordHash) {
		return "", ErrUnauthorized
	}

	token := uuid.NewString()
	if err := s.sessions.Set(ctx, token, u.ID); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}

func (s *authService) Disconnect(ctx context.Context, token string) error {
	ctx, cancel := bounded(ctx, s.timeout)
	defer cancel()

	if _, err := s.auth.ResolveUser(ctx, token); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, token)
}

// parseBasic extracts the credentials of a "Basic base64(email:password)" header.
func parseBasic(header string) (email, pass string, ok bool) {
	const prefix = "Basic "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", "", false
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(header[len(prefix):]))
	if err != nil {
		return "", "", false
	}
	email, pass, ok = strings.Cut(string(raw), ":")
	if !ok || email == "" {
		return "", "", false
	}
	return email, pass, true
}
