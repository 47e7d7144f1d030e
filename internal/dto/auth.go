package dto

type UserLoginRequestDTO struct {
	Key string `json:"key" example:"2b1b44a2-8a10-4c0e-92d5-4f0c6e6b43f1"`
}

type UserLoginResponseDTO struct {
	Token string `json:"token"`
	User  UserResponseDTO `json:"user"`
}

type AdminLoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type AdminLoginResponseDTO struct {
	Token string `json:"token"`
	Admin AdminResponseDTO `json:"admin"`
}

type AdminRegisterRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}
