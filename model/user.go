package model

import "time"

// User holds the account data relevant to the application. The password
// hash never leaves the db and auth packages.
type User struct {
	Id           int64     `db:"id,omitempty" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Avatar       string    `db:"-" json:"avatar"`
	CreatedAt    time.Time `db:"created_at,omitempty" json:"createdAt"`
}
