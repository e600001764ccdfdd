package middleware

import (
	"net/http"

	"luxew/internal/logger"
	"luxew/internal/reqctx"
	"luxew/internal/utils/helpers"

	"go.uber.org/zap"
)

// RolesAutorises n'accepte que les requêtes dont l'un des rôles du jeton
// figure dans la liste. À chaîner après AuthJWT.
func RolesAutorises(rolesAutorises ...string) func(http.Handler) http.Handler {
	autorise := make(map[string]struct{}, len(rolesAutorises))
	for _, role := range rolesAutorises {
		autorise[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roles, ok := reqctx.GetRoles(r.Context())
			if !ok {
				helpers.Erreur(w, http.StatusForbidden, "rôle introuvable dans le jeton")
				return
			}
			for _, role := range roles {
				if _, trouve := autorise[role]; trouve {
					next.ServeHTTP(w, r)
					return
				}
			}

			utilisateurID, _ := reqctx.GetUtilisateurID(r.Context())
			logger.WithCtx(r.Context()).Warn("Accès refusé : rôle insuffisant",
				zap.Int("utilisateur_id", utilisateurID),
				zap.Strings("roles", roles),
			)
			helpers.Erreur(w, http.StatusForbidden, "accès interdit")
		})
	}
}
