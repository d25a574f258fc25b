package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a booking-account password with bcrypt at the
// given cost.  Only the hash is ever stored in the users table.
func HashPassword(plain string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt hash.
// Used on login; the caller maps a false result to a uniform 401.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
