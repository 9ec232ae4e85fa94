package dto

type ChangePasswordRequestDTO struct {
	OldPassword     string `json:"oldPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,max=64"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type ChangePasswordResponseDTO struct {
	Message string `json:"message"`
}
