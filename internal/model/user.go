package model

const (
	// RoleAdmin grants access to the admin dashboard routes.
	RoleAdmin = "admin"
	// RoleUser is the default role for new signups.
	RoleUser = "user"
)

// User is a stored user record. The password is kept as plain text.
//
// Seq is the SQL row key and records list order; it never leaves the database.
// ID is not unique, so two records created in the same millisecond share it.
type User struct {
	Seq         uint64 `json:"-" gorm:"primaryKey;autoIncrement"`
	ID          string `json:"id" gorm:"size:64;not null;index"`
	Username    string `json:"username" gorm:"size:255;not null"`
	Email       string `json:"email" gorm:"size:255;not null;index"` // unique by convention only
	Password    string `json:"password" gorm:"size:255;not null"`
	PhoneNumber string `json:"phoneNumber,omitempty" gorm:"size:64"`
	Role        string `json:"role,omitempty" gorm:"size:16"`
}

// SafeUser is a user record without its password. It is what leaves the server,
// both in response bodies and in the session cookie.
type SafeUser struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role"`
}

// Safe returns the record with the password stripped.
func (u User) Safe() SafeUser {
	role := u.Role
	if role == "" {
		role = RoleUser
	}
	return SafeUser{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        role,
	}
}

// IsAdmin reports whether the user carries the admin role.
func (u SafeUser) IsAdmin() bool {
	return u.Role == RoleAdmin
}
