package service

import (
	"context"
	"time"

	"filesmanager/internal/repository"
	"filesmanager/internal/session"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Status reports whether the metadata store and the session cache are reachable.
type Status struct {
	DB    bool `json:"db"`
	Cache bool `json:"cache"`
}

type Stats struct {
	Users int `json:"users"`
	Files int `json:"files"`
}

// StatsService exposes backend status and record counts.
type StatsService interface {
	Status(ctx context.Context) Status
	Stats(ctx context.Context) (*Stats, error)
}

type statsService struct {
	db       Pinger
	sessions session.Store
	users    repository.UserRepository
	files    repository.FileRepository
	timeout  time.Duration
}

func NewStatsService(db Pinger, sessions session.Store, users repository.UserRepository, files repository.FileRepository, timeout time.Duration) StatsService {
	return &statsService{db: db, sessions: sessions, users: users, files: files, timeout: timeout}
}

func (s *statsService) Status(ctx context.Context) Status {
	ctx, cancel := bounded(ctx, s.timeout)
	defer cancel()

	return Status{
		DB:    s.db.PingContext(ctx) == nil,
		Cache: s.sessions.Ping(ctx) == nil,
	}
}

func (s *statsService) Stats(ctx context.Context) (*Stats, error) {
	ctx, cancel := bounded(ctx, s.timeout)
	defer cancel()

	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	files, err := s.files.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{Users: users, Files: files}, nil
}
