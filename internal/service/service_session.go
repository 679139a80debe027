// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/store"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/models"
)

// sessionService implements SessionService on top of a SessionRepository.
// Cookie values are "<id>.<hex hmac>" signed with the session secret.
type sessionService struct {
	sessionRepository store.SessionRepository
	ids               *utils.UUIDGenerator

	secret   string
	duration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

func NewSessionService(sessionRepository store.SessionRepository, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		ids:               utils.NewUUIDGenerator(),
		secret:            cfg.SessionSecret,
		duration:          cfg.SessionDuration,
		now:               time.Now,
		logger:            logger,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, user models.User) (models.Session, string, error) {
	now := s.now().UTC()
	session := models.Session{
		ID:        s.ids.Generate(),
		UserID:    user.UserID,
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.duration),
	}

	if err := s.sessionRepository.CreateSession(ctx, session); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.UserID).Msg("error storing session")
		return models.Session{}, "", fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return session, utils.SignString(session.ID, s.secret), nil
}

func (s *sessionService) ResolveSession(ctx context.Context, cookieValue string) (models.Session, error) {
	id, ok := utils.VerifySignedString(cookieValue, s.secret)
	if !ok {
		logger.FromContext(ctx).Debug().Msg("session cookie signature mismatch")
		return models.Session{}, ErrSessionNotFound
	}

	session, err := s.sessionRepository.FindActiveSession(ctx, id, s.now())
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, ErrSessionNotFound
		}
		return models.Session{}, fmt.Errorf("error resolving session: %w", err)
	}

	return session, nil
}

func (s *sessionService) DestroySession(ctx context.Context, id string) error {
	if err := s.sessionRepository.DeleteSession(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Msg("error deleting session")
		return fmt.Errorf("error destroying session: %w", err)
	}

	return nil
}

func (s *sessionService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.sessionRepository.DeleteExpiredSessions(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("error purging expired sessions: %w", err)
	}

	return n, nil
}
