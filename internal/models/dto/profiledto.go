package dto

// ProfileUpdateRequestDTO carries the editable profile fields. Username and
// password are deliberately not part of this DTO: the HTTP boundary is the
// key allow-list for profile patches.
type ProfileUpdateRequestDTO struct {
	FullName    *string `json:"fullName,omitempty" validate:"omitempty,max=128"`
	Diet        *string `json:"diet,omitempty" validate:"omitempty,max=512"`
	Allergies   *string `json:"allergies,omitempty" validate:"omitempty,max=512"`
	Preferences *string `json:"preferences,omitempty" validate:"omitempty,max=512"`
}

type ProfileUpdateResponseDTO struct {
	Message string `json:"message"`
}
