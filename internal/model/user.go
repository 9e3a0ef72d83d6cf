package model

import "time"

type User struct {
	ID           int64
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Session is an issued bearer token.
type Session struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
}
