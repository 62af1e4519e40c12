package utils

import "golang.org/x/crypto/bcrypt" // Password hashing

// HashPassword derives a salted one-way hash of the raw password. The raw
// value is never stored.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the raw password matches the stored hash.
// bcrypt's comparison is constant time.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
