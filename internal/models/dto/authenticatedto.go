package dto

type AuthenticateRequestDTO struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthenticateResponseDTO struct {
	Message string `json:"message"`
}
