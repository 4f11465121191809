package models

// Credentials is the body of a sign-in request
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Token is the opaque login response of the store API.
// Only its presence matters to the application.
type Token struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
