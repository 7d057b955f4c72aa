package domain

import "time"

// Credentials are what survives between runs to restore a session without a password.
type Credentials struct {
	Token    string
	Username string
	SavedAt  time.Time
}

func (c Credentials) Empty() bool {
	return c.Token == "" || c.Username == ""
}
