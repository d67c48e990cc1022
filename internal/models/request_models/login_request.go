package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	DisplayName string `json:"display_name" binding:"required,min=2,max=150"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	PreferredLanguage *string `json:"preferred_language" binding:"omitempty,oneof=vi en"`
	TravelPreferences *string `json:"travel_preferences" binding:"omitempty,max=2000"`
}
