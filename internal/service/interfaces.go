package service

import (
	"context"

	"github.com/MKhiriev/go-auth-api/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, email string, password string) (models.User, error)
	Login(ctx context.Context, email string, password string) (models.User, error)
	Profile(ctx context.Context, userID string) (models.Profile, error)
	ChangePassword(ctx context.Context, userID string, currentPassword string, newPassword string) (models.User, error)
}
