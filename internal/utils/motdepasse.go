package utils

import "golang.org/x/crypto/bcrypt"

func HacherMotDePasse(motDePasse string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(motDePasse), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerifierMotDePasse(motDePasse, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(motDePasse)) == nil
}
