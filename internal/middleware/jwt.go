package middleware

import (
	"context"
	"net/http"
	"strings"

	"luxew/internal/logger"
	"luxew/internal/reqctx"
	"luxew/internal/utils/helpers"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// AuthJWT exige un bearer JWT valide et place l'id utilisateur et les rôles
// dans le contexte de la requête.
func AuthJWT(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			ctx, err := contexteDepuisJeton(r, secret)
			if err != nil {
				logger.WithCtx(r.Context()).Warn("AuthJWT : jeton refusé", zap.Error(err))
				helpers.Erreur(w, http.StatusUnauthorized, "jeton manquant, invalide ou expiré")
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthJWTOptionnel décode le jeton s'il est présent mais laisse passer les
// requêtes anonymes : utilisé par les listings publics qui personnalisent
// leurs drapeaux peutModifier/peutSupprimer.
func AuthJWTOptionnel(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ctx, err := contexteDepuisJeton(r, secret); err == nil {
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func contexteDepuisJeton(r *http.Request, secret string) (ctx context.Context, err error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, jwt.ErrTokenMalformed
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(strings.TrimPrefix(authHeader, "Bearer "), claims,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	utilisateurID, ok := claims["utilisateur_id"].(float64)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	var roles []string
	if bruts, ok := claims["roles"].([]interface{}); ok {
		for _, b := range bruts {
			if role, ok := b.(string); ok {
				roles = append(roles, role)
			}
		}
	}

	ctx = reqctx.WithUtilisateurID(r.Context(), int(utilisateurID))
	ctx = reqctx.WithRoles(ctx, roles)
	return ctx, nil
}
