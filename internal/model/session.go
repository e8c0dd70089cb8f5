package model

import "time"

// Session is a browser session. Token is the cookie value; Bearer is the
// backend access token issued at login.
type Session struct {
	ID          int64     `json:"id"`
	Token       string    `json:"token"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	FullName    string    `json:"full_name"`
	Role        string    `json:"role"`
	YearOfBirth string    `json:"year_of_birth"`
	Bearer      string    `json:"-"`
	ExpiresAt   time.Time `json:"expires_at"`
	CreatedAt   time.Time `json:"created_at"`
}
