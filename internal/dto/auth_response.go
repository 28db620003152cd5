package dto

type LoginResponse struct {
	TokenResponse
}

type RefreshTokenResponse struct {
	TokenResponse
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
