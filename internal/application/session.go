package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"liveline/internal/domain"
	"liveline/internal/domain/entities"
	"liveline/internal/ports/output"
)

// Identity is what the hosted auth provider asserts about the caller.
type Identity struct {
	UserID      string
	Email       string
	DisplayName string
	AvatarURL   string
}

// SessionService is the explicit session-lifecycle object: it verifies the
// provider's bearer token and provisions the creator profile once per
// session start. Provisioning is idempotent; it is not buried in an auth
// state listener.
type SessionService struct {
	influencerRepo output.InfluencerRepository
	secret         []byte

	mu      sync.Mutex
	ensured map[string]bool // user ids provisioned by this process
}

func NewSessionService(influencerRepo output.InfluencerRepository, secret string) *SessionService {
	return &SessionService{
		influencerRepo: influencerRepo,
		secret:         []byte(secret),
		ensured:        make(map[string]bool),
	}
}

// StartSession verifies the token and makes sure the creator profile exists.
// The profile write runs once per user per process; replays are cheap map
// lookups.
func (s *SessionService) StartSession(ctx context.Context, token string) (Identity, error) {
	id, err := s.VerifyToken(token)
	if err != nil {
		return Identity{}, err
	}

	s.mu.Lock()
	done := s.ensured[id.UserID]
	s.mu.Unlock()
	if done {
		return id, nil
	}

	if err := s.EnsureProfile(ctx, id); err != nil {
		return Identity{}, err
	}
	s.mu.Lock()
	s.ensured[id.UserID] = true
	s.mu.Unlock()
	return id, nil
}

// VerifyToken checks the HS256 signature and extracts the identity claims.
// Issuing tokens belongs to the hosted provider; only the shared secret is
// known here.
func (s *SessionService) VerifyToken(token string) (Identity, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Identity{}, domain.ErrInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, domain.ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Identity{}, domain.ErrInvalidToken
	}
	id := Identity{UserID: sub}
	id.Email, _ = claims["email"].(string)
	id.DisplayName, _ = claims["name"].(string)
	id.AvatarURL, _ = claims["picture"].(string)
	return id, nil
}

// EnsureProfile upserts the Influencer row for id. Safe to call any number of
// times, including concurrently from two instances.
func (s *SessionService) EnsureProfile(ctx context.Context, id Identity) error {
	displayName := id.DisplayName
	if displayName == "" {
		displayName = id.Email
	}
	influencer := &entities.Influencer{
		UserID:      id.UserID,
		DisplayName: displayName,
		Email:       id.Email,
		AvatarURL:   id.AvatarURL,
	}
	if err := s.influencerRepo.Upsert(ctx, influencer); err != nil {
		return fmt.Errorf("ensure profile: %w", err)
	}
	return nil
}
