package domain

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// AdminCredentials holds the single back-office account.
type AdminCredentials struct {
	Username     string
	PasswordHash []byte
}

func (a AdminCredentials) Matches(username, password string) (bool, error) {
	if len(a.PasswordHash) == 0 || username != a.Username {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(password))
	if err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, err
		}
	}

	return true, nil
}
