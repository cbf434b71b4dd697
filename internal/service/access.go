package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"filesmanager/internal/model"
	"filesmanager/internal/repository"
	"filesmanager/internal/session"
)

// AccessMode is the kind of operation being authorized against a file.
type AccessMode int

const (
	AccessReadMetadata AccessMode = iota
	AccessWrite
	AccessReadContent
)

// Decision is the outcome of an authorization check. UserID is the acting user
// when the token resolved, empty otherwise.
type Decision struct {
	Allow  bool
	UserID string
}

// Authorizer resolves session tokens to users and decides per-file access.
type Authorizer struct {
	sessions session.Store
	users    repository.UserRepository
}

func NewAuthorizer(sessions session.Store, users repository.UserRepository) *Authorizer {
	return &Authorizer{sessions: sessions, users: users}
}

// ResolveUser returns the id of the user owning token. Unknown or expired tokens,
// and tokens whose user no longer exists, yield ErrUnauthorized.
func (a *Authorizer) ResolveUser(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}
	userID, err := a.sessions.Get(ctx, token)
	if errors.Is(err, session.ErrNotFound) {
		return "", ErrUnauthorized
	}
	if err != nil {
		return "", fmt.Errorf("session lookup: %w", err)
	}

	if _, err := a.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrUnauthorized
		}
		return "", fmt.Errorf("user lookup: %w", err)
	}
	return userID, nil
}

// Authorize decides whether the bearer of token may perform mode on f.
// Public content is served without touching the session store. For content reads
// a missing or invalid token is a denial rather than ErrUnauthorized, so callers
// can answer "not found" without confirming the file exists.
func (a *Authorizer) Authorize(ctx context.Context, token string, f *model.File, mode AccessMode) (Decision, error) {
	if mode == AccessReadContent && f.IsPublic {
		return Decision{Allow: true}, nil
	}

	userID, err := a.ResolveUser(ctx, token)
	if errors.Is(err, ErrUnauthorized) && mode == AccessReadContent {
		return Decision{}, nil
	}
	if err != nil {
		return Decision{}, err
	}
	return Decide(mode, userID, f), nil
}

// Decide applies the access rules for an already resolved user (empty for anonymous).
func Decide(mode AccessMode, userID string, f *model.File) Decision {
	d := Decision{UserID: userID}
	switch mode {
	case AccessReadContent:
		d.Allow = f.IsPublic || (userID != "" && userID == f.UserID)
	default:
		d.Allow = userID != "" && userID == f.UserID
	}
	return d
}
