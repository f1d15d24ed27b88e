package model

// Role values the backend issues with a session.
const (
	RoleUser         = "USER"
	RolePractitioner = "PRACTITIONER"
	RoleAdmin        = "ADMIN"
)

// User is a marketplace account profile.
type User struct {
	ID        string `json:"userId"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}
