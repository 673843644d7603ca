// internals/features/users/auth/dto/auth_dto.go
package dto

type RegisterRequest struct {
	UserName     string `json:"user_name" validate:"required,min=3,max=80"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
	ChurchID     string `json:"church_id" validate:"required,uuid"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}
