package service

import (
	"context"

	"github.com/bluearnk/bluearnk-api/internal/auth/dto"
	autherror "github.com/bluearnk/bluearnk-api/internal/errors"
	authconstant "github.com/bluearnk/bluearnk-api/pkg/constant"
)

// Administrative operations. Role enforcement happens at the route level;
// these methods only validate inputs and touch the stores.

func (s *AuthService) ListUsers(ctx context.Context) ([]dto.UserOutput, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UserOutput, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserOutput(&users[i]))
	}
	return out, nil
}

func (s *AuthService) UpdateUserRole(ctx context.Context, userID string, input dto.UpdateRoleInput) error {
	switch input.Role {
	case authconstant.RoleAdmin, authconstant.RoleStaff, authconstant.RoleClient:
	default:
		return autherror.ErrRoleDenied
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	return s.users.UpdateRole(ctx, userID, input.Role)
}

// SetUserStatus flips the soft active flag. Users are never hard-deleted;
// deactivation also force-revokes the user's sessions.
func (s *AuthService) SetUserStatus(ctx context.Context, userID string, input dto.UpdateStatusInput) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	if err := s.users.SetActive(ctx, userID, input.Active); err != nil {
		return err
	}
	if !input.Active {
		return s.tokens.RevokeAllRefreshTokensByUserID(ctx, userID)
	}
	return nil
}

func (s *AuthService) GetUserSessions(ctx context.Context, userID string) ([]dto.SessionOutput, error) {
	sessions, err := s.tokens.GetSessionsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SessionOutput, 0, len(sessions))
	for _, rt := range sessions {
		out = append(out, dto.SessionOutput{
			ID:        rt.ID,
			IPAddress: rt.IPAddress,
			UserAgent: rt.UserAgent,
			CreatedAt: rt.CreatedAt,
			ExpiresAt: rt.ExpiresAt,
		})
	}
	return out, nil
}

func (s *AuthService) ForceLogout(ctx context.Context, userID string) error {
	return s.tokens.RevokeAllRefreshTokensByUserID(ctx, userID)
}
