package response_models

type AccountLoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

type AccountResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type ProfileResponse struct {
	Account           AccountResponse `json:"account"`
	PreferredLanguage string          `json:"preferred_language"`
	TravelPreferences string          `json:"travel_preferences"`
}
