package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenererJetonJWT crée le bearer JWT : id utilisateur, liste de rôles,
// émission et expiration.
func GenererJetonJWT(secret string, utilisateurID int, roles []string, duree time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"utilisateur_id": utilisateurID,
		"roles":          roles,
		"exp":            time.Now().Add(duree).Unix(),
		"iat":            time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
