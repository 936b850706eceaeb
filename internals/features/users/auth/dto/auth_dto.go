package dto

type LoginRequest struct {
	// username, email o RUT (con o sin puntuación)
	Identificador string `json:"identificador" validate:"required,max=255"`
	Password      string `json:"password" validate:"required,max=72"`
}

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Rol      string `json:"rol" validate:"omitempty,oneof=admin socio"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	UserName    string `json:"user_name"`
	SocioID     string `json:"socio_id,omitempty"`
	SocioRUT    string `json:"socio_rut,omitempty"`
}
