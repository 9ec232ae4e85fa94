package dto

type SignupRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,max=64"`
}

type SignupResponseDTO struct {
	Message string `json:"message"`
}
