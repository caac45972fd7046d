package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt only reads the first 72 bytes of its input. Both hashing and
// verification truncate identically, otherwise long passwords that were
// accepted at registration would spuriously fail to log in.
const maxPasswordBytes = 72

func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// HashPassword hashes the password with bcrypt at the default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncatePassword(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the password matches the stored hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password)) == nil
}
