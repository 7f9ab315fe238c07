package domain

import "time"

type User struct {
	Id        UserId
	Email     Email
	Nick      string
	PassHash  []byte
	Role      Role
	CreatedAt time.Time
}

type Credentials struct {
	Email    Email
	Password Password
}

// ProfileImg is the single profile image attached to a user. The record is
// always present once the user exists; "no image" is the configured default
// URL, not an absent row.
type ProfileImg struct {
	UserId    UserId
	Url       string
	UpdatedAt time.Time
}
