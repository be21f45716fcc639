package dto

type RegisterRequestDTO struct {
	ExternalUserID string `json:"external_user_id" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
	UserID  string `json:"user_id,omitempty"`
}
