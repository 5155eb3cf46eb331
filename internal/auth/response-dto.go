package auth

import "skybook/internal/users"

// represents the authentication response
type AuthResponse struct {
	User         users.UserResponse `json:"user"`
	AccessToken  string             `json:"access_token"`
	RefreshToken string             `json:"refresh_token"`
	ExpiresIn    int64              `json:"expires_in"`
}
