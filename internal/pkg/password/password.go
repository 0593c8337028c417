package password

import (
	"car-rental/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmpty    = errs.New("password is empty")
	ErrTooLong  = errs.New("password exceeds 72 bytes")
	ErrMismatch = errs.New("password does not match")
)

const (
	Cost = bcrypt.DefaultCost
	// bcrypt ignores everything past this length
	maxBytes = 72
)

func HashPassword(plain string) (string, error) {
	if err := checkInput(plain); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", errs.Wrap(err, "bcrypt hash")
	}
	return string(hash), nil
}

// ComparePassword returns ErrMismatch for a wrong password and a wrapped error
// when the stored hash itself is unusable.
func ComparePassword(hash, plain string) error {
	if err := checkInput(plain); err != nil {
		return err
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Wrap(err, "bcrypt compare")
	}
}

func checkInput(plain string) error {
	switch {
	case plain == "":
		return ErrEmpty
	case len(plain) > maxBytes:
		return ErrTooLong
	}
	return nil
}
