package store

// Credentials is the request body of the API key login.
type Credentials struct {
	UserName string `json:"userName"`
	APIKey   string `json:"apiKey"`
}

// LoginResponse is returned by the API key login endpoint.
// Token is null when the login is rejected.
type LoginResponse struct {
	Token        *string `json:"token"`
	Success      bool    `json:"success"`
	ErrorCode    int     `json:"errorCode"`
	ErrorMessage *string `json:"errorMessage"`
}

// ValidateResponse is returned by the session validation endpoint.
type ValidateResponse struct {
	NewToken     *string `json:"newToken"`
	Success      bool    `json:"success"`
	ErrorCode    int     `json:"errorCode"`
	ErrorMessage *string `json:"errorMessage"`
}
