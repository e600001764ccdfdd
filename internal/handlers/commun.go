package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"luxew/internal/models"
	"luxew/internal/reqctx"
	"luxew/internal/services"
	"luxew/internal/utils/helpers"

	"github.com/gorilla/mux"
)

// acteurDepuisCtx reconstruit l'acteur courant depuis le contexte rempli par
// le middleware JWT ; anonyme (id 0, aucun rôle) sinon.
func acteurDepuisCtx(r *http.Request) models.Acteur {
	id, _ := reqctx.GetUtilisateurID(r.Context())
	roles, _ := reqctx.GetRoles(r.Context())
	return models.Acteur{ID: id, Roles: roles}
}

// repondreErreur traduit la taxonomie d'erreurs des services en enveloppe
// {"erreur": ...} : 401/403/404 via les sentinelles, 400 par défaut.
func repondreErreur(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNonAutorise):
		helpers.Erreur(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrInterdit):
		helpers.Erreur(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrIntrouvable):
		helpers.Erreur(w, http.StatusNotFound, err.Error())
	default:
		helpers.Erreur(w, http.StatusBadRequest, err.Error())
	}
}

func idDepuisVars(r *http.Request, nom string) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)[nom])
	if err != nil || id < 1 {
		return 0, errors.New("identifiant invalide")
	}
	return id, nil
}

// pagination lit page et limite de la query string (1 et 10 par défaut).
// Une valeur absente ou non numérique retombe sur le défaut ; un entier
// explicite inférieur à 1 est une erreur.
func pagination(r *http.Request) (page, limite int, err error) {
	page, limite = 1, 10
	if v, errConv := strconv.Atoi(r.URL.Query().Get("page")); errConv == nil {
		if v < 1 {
			return 0, 0, errors.New("paramètres de pagination invalides")
		}
		page = v
	}
	if v, errConv := strconv.Atoi(r.URL.Query().Get("limite")); errConv == nil {
		if v < 1 {
			return 0, 0, errors.New("paramètres de pagination invalides")
		}
		limite = v
	}
	return page, limite, nil
}

func formatXMLDemande(r *http.Request) bool {
	return r.URL.Query().Get("format") == "xml"
}
