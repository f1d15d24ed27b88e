package session

// Session is the persisted credential state for the authenticated user.
// At most one session is current at a time; AccessToken is replaced on
// refresh, the whole value is replaced on login and dropped on logout.
type Session struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	UserID       string `json:"userId"`
	Role         string `json:"role"`
}

// IsZero reports whether the session holds no credentials.
func (s Session) IsZero() bool {
	return s.AccessToken == "" && s.RefreshToken == ""
}
