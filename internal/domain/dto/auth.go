package dto

// TokenResponse is returned when an API key is exchanged for a JWT.
//
// @Description Short-lived bearer token
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"Bearer"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"900"`
} // @name TokenResponse

// Claims identifies the API client a token was issued to.
type Claims struct {
	Client string `json:"client"`
}
