package utils

import "golang.org/x/crypto/bcrypt"

// Cost 12 keeps a login comparison well under the request budget while
// staying above the bcrypt default. Raising it only affects new hashes;
// stored credentials keep the cost they were created with.
const bcryptCost = 12

// HashPassword hashes an account password for storage
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// ComparePassword reports whether the plain password matches the stored
// hash. It never distinguishes why a comparison failed.
func ComparePassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
