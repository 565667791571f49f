package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finchat/finchat-backend/internal/auth"
	"github.com/finchat/finchat-backend/internal/domain"
)

// Refresh performs token rotation and returns new access/refresh tokens.
// A token that is missing, revoked, or expired yields ErrUnauthorized;
// reuse of a rotated token is logged as a warning.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash := auth.HashToken(input.RefreshToken)

	token, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh token reuse attempted")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	if token.IsRevoked() || token.IsExpired(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted user",
				slog.String("user_id", token.UserID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	// Rotation is atomic: the old token is revoked and the new one stored
	// in the same transaction, so a crash cannot leave the user tokenless.
	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tokens.RevokeByID(txCtx, token.ID); err != nil {
			return err
		}
		result, err = s.issueTokens(txCtx, user)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh rotate token: %w", err)
	}
	return result, nil
}
