package handlers

import (
	"encoding/json"
	"net/http"

	"luxew/internal/models"
	"luxew/internal/services"
	"luxew/internal/utils/helpers"
)

// UtilisateurHandler expose l'administration des comptes ; toutes les routes
// sont derrière RolesAutorises("admin").
type UtilisateurHandler struct {
	svc *services.UtilisateurService
}

func NewUtilisateurHandler(svc *services.UtilisateurService) *UtilisateurHandler {
	return &UtilisateurHandler{svc: svc}
}

// Lister
// @Summary      Liste des utilisateurs
// @Tags         utilisateurs
// @Produce      json
// @Success      200  {array}  models.Utilisateur
// @Security     BearerAuth
// @Router       /utilisateurs [get]
func (h *UtilisateurHandler) Lister(w http.ResponseWriter, r *http.Request) {
	utilisateurs, err := h.svc.Lister(r.Context())
	if err != nil {
		repondreErreur(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, utilisateurs)
}

// ListerRoles
// @Summary      Liste des rôles connus
// @Tags         utilisateurs
// @Produce      json
// @Success      200  {array}  models.Role
// @Security     BearerAuth
// @Router       /roles [get]
func (h *UtilisateurHandler) ListerRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.svc.ListerRoles(r.Context())
	if err != nil {
		repondreErreur(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, roles)
}

// Creer
// @Summary      Créer un utilisateur
// @Description  Création par un administrateur ; tout rôle connu est accepté, admin compris
// @Tags         utilisateurs
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreerUtilisateurRequest  true  "Données du compte"
// @Success      201   {object}  models.Utilisateur
// @Failure      400   {object}  helpers.ReponseErreur
// @Security     BearerAuth
// @Router       /utilisateurs/creer [post]
func (h *UtilisateurHandler) Creer(w http.ResponseWriter, r *http.Request) {
	var req models.CreerUtilisateurRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Erreur(w, http.StatusBadRequest, "corps JSON invalide")
		return
	}

	u, err := h.svc.Creer(r.Context(), req)
	if err != nil {
		repondreErreur(w, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, u)
}

// Modifier
// @Summary      Modifier un utilisateur
// @Description  Pseudo, email et rôle ; l'unicité exclut le compte édité
// @Tags         utilisateurs
// @Accept       json
// @Produce      json
// @Param        body  body      models.ModifierUtilisateurRequest  true  "Id + champs à modifier"
// @Success      200   {object}  map[string]bool
// @Failure      404   {object}  helpers.ReponseErreur
// @Security     BearerAuth
// @Router       /utilisateurs/modifier [post]
func (h *UtilisateurHandler) Modifier(w http.ResponseWriter, r *http.Request) {
	var req models.ModifierUtilisateurRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Erreur(w, http.StatusBadRequest, "corps JSON invalide")
		return
	}
	if req.ID < 1 {
		helpers.Erreur(w, http.StatusBadRequest, "id d'utilisateur invalide")
		return
	}

	if err := h.svc.Modifier(r.Context(), req); err != nil {
		repondreErreur(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]bool{"succes": true})
}

// Supprimer
// @Summary      Supprimer un utilisateur
// @Description  Un administrateur ne peut pas supprimer son propre compte
// @Tags         utilisateurs
// @Produce      json
// @Param        body  body  models.SupprimerUtilisateurRequest  true  "Id de l'utilisateur"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  helpers.ReponseErreur
// @Security     BearerAuth
// @Router       /utilisateurs/supprimer [post]
func (h *UtilisateurHandler) Supprimer(w http.ResponseWriter, r *http.Request) {
	var req models.SupprimerUtilisateurRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Erreur(w, http.StatusBadRequest, "corps JSON invalide")
		return
	}
	if req.ID < 1 {
		helpers.Erreur(w, http.StatusBadRequest, "id d'utilisateur invalide")
		return
	}

	if err := h.svc.Supprimer(r.Context(), acteurDepuisCtx(r), req.ID); err != nil {
		repondreErreur(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]bool{"succes": true})
}
