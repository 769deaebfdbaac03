package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost coût de hachage (12 = compromis sécurité/latence login)
const bcryptCost = 12

// HashPassword hash un mot de passe avec bcrypt (salt intégré au hash)
func HashPassword(password string) (string, error) {
	if len(password) == 0 {
		return "", fmt.Errorf("mot de passe vide")
	}

	// bcrypt tronque silencieusement au-delà de 72 bytes
	if len(password) > 72 {
		return "", fmt.Errorf("mot de passe trop long: maximum 72 caractères")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("impossible de hasher le mot de passe: %w", err)
	}

	return string(hashed), nil
}

// VerifyPassword vérifie un mot de passe contre son hash bcrypt
func VerifyPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
