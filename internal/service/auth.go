package service

import (
	"context"
	"time"

	"ticketfoot/internal/apperrors"
	"ticketfoot/internal/auth"
	"ticketfoot/internal/cache"
	"ticketfoot/internal/logger"
	"ticketfoot/internal/models"
	"ticketfoot/internal/repository"
)

type AuthService struct {
	userRepo     *repository.UserRepository
	tokenManager *auth.TokenManager
	valkey       *cache.ValkeyClient
}

func NewAuthService(userRepo *repository.UserRepository, tokenManager *auth.TokenManager, valkey *cache.ValkeyClient) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tokenManager: tokenManager,
		valkey:       valkey,
	}
}

// Login verifies the credentials and issues a fresh session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.UserProfile, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Internal("failed to look up user", err)
	}
	if user == nil || !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, apperrors.Unauthorized("email ou mot de passe incorrect")
	}

	token, err := s.tokenManager.Issue(user.ID)
	if err != nil {
		return nil, apperrors.Internal("failed to issue session token", err)
	}

	profile := models.ProfileFrom(user)
	profile.Token = token
	return &profile, nil
}

// ResolveUser maps a session token to its user. It fails with an auth error
// when the token is malformed, expired, revoked, or points at a deleted user.
func (s *AuthService) ResolveUser(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokenManager.Parse(token)
	if err != nil {
		return nil, apperrors.Unauthorized("session invalide ou expirée")
	}

	if s.valkey != nil {
		revoked, err := s.valkey.IsTokenRevoked(ctx, claims.TokenID)
		if err != nil {
			// Revocation store being down must not lock every user out.
			logger.WithContext(ctx).Warn("Revocation check failed, allowing token", "error", err)
		} else if revoked {
			return nil, apperrors.Unauthorized("session révoquée")
		}
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.Internal("failed to look up user", err)
	}
	if user == nil {
		return nil, apperrors.Unauthorized("session invalide ou expirée")
	}

	return user, nil
}

// Session validates a token and returns the profile with the token echoed
// back, mirroring the login response shape.
func (s *AuthService) Session(ctx context.Context, token string) (*models.UserProfile, error) {
	user, err := s.ResolveUser(ctx, token)
	if err != nil {
		return nil, err
	}

	profile := models.ProfileFrom(user)
	profile.Token = token
	return &profile, nil
}

// Profile returns the public profile for a token. Unknown users surface as
// not-found rather than unauthorized on this read-only lookup.
func (s *AuthService) Profile(ctx context.Context, token string) (*models.UserProfile, error) {
	user, err := s.ResolveUser(ctx, token)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindUnauthorized {
			return nil, apperrors.NotFound("utilisateur non trouvé")
		}
		return nil, err
	}

	profile := models.ProfileFrom(user)
	return &profile, nil
}

// Logout revokes the token's session id until the token would have expired
// anyway.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokenManager.Parse(token)
	if err != nil {
		return apperrors.Unauthorized("session invalide ou expirée")
	}

	if s.valkey == nil {
		return apperrors.Internal("revocation store unavailable", nil)
	}

	ttl := claims.RemainingTTL(time.Now().UTC())
	if err := s.valkey.RevokeToken(ctx, claims.TokenID, ttl); err != nil {
		return apperrors.Internal("failed to revoke session", err)
	}

	return nil
}
