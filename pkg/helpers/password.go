package helpers

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes the plain text password with bcrypt. The hash is the
// only credential form that ever reaches storage.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword compares a stored bcrypt hash with a submitted password.
func CheckPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
