package dto

// GetTokenRequestDTO carries credentials for the Siyavula get-token endpoint.
// Region and Curriculum are optional; the handler applies the configured
// defaults when they are empty.
type GetTokenRequestDTO struct {
	Username   string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required"`
	Region     string `json:"region" validate:"omitempty"`
	Curriculum string `json:"curriculum" validate:"omitempty"`
}

type VerifyTokenRequestDTO struct {
	ClientToken string `json:"client_token" validate:"required"`
	UserToken   string `json:"user_token" validate:"required"`
}
