package domains

import "time"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type Account struct {
	ID         int64      `json:"id"`
	FullName   string     `json:"full_name"`
	Email      string     `json:"email"`
	Password   string     `json:"-"`
	Role       string     `json:"role"`
	CreatedAt  time.Time  `json:"created_at"`
	DisabledAt *time.Time `json:"disabled_at,omitempty"`
}

func (a Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Session is a stored refresh session; expired rows are purged by the
// janitor and deleted on sight when presented.
type Session struct {
	Token     string    `json:"-"`
	AccountID int64     `json:"account_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
