package account

import "golang.org/x/crypto/bcrypt"

// MinPasswordLen is the minimum accepted raw password length, enforced on
// creation and on password change.
const MinPasswordLen = 6

// HashPassword hashes a raw password with bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword reports whether password matches hash. bcrypt performs the
// comparison in constant time.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
