// internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "igrejaku_backend/internals/features/users/user/model"
)

type UpdateProfileRequest struct {
	UserName *string `json:"user_name" validate:"omitempty,min=3,max=80"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type ChangeRoleRequest struct {
	UserRole string `json:"user_role" validate:"required"`
}

type UserResponse struct {
	UserID       uuid.UUID  `json:"user_id"`
	UserName     string     `json:"user_name"`
	UserEmail    string     `json:"user_email"`
	UserRole     string     `json:"user_role"`
	UserChurchID *uuid.UUID `json:"user_church_id,omitempty"`
	UserIsActive bool       `json:"user_is_active"`
	CreatedAt    time.Time  `json:"created_at"`
}

func NewUserResponse(m *userModel.UserModel) *UserResponse {
	return &UserResponse{
		UserID:       m.UserID,
		UserName:     m.UserName,
		UserEmail:    m.UserEmail,
		UserRole:     m.UserRole,
		UserChurchID: m.UserChurchID,
		UserIsActive: m.UserIsActive,
		CreatedAt:    m.UserCreatedAt,
	}
}

func NewUserResponseList(models []userModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(models))
	for i := range models {
		out = append(out, *NewUserResponse(&models[i]))
	}
	return out
}
