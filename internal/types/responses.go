package types

// ------------------------------
// Response Types
// ------------------------------

// LoginResponse covers the token key variants different backend versions
// have used for the same value.
type LoginResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
	AuthToken   string `json:"authToken"`
}

// BearerToken returns the first populated token variant, or "".
func (r LoginResponse) BearerToken() string {
	switch {
	case r.Token != "":
		return r.Token
	case r.AccessToken != "":
		return r.AccessToken
	default:
		return r.AuthToken
	}
}

// HealthResponse is the service-root health probe body.
type HealthResponse struct {
	Status string `json:"status,omitempty"`
}
