package handlers

import (
	"encoding/json"
	"net/http"

	"luxew/internal/models"
	"luxew/internal/services"
	"luxew/internal/utils/helpers"
)

// JetonHandler gère les jetons API longue durée (interface SOAP) ; routes
// admin uniquement.
type JetonHandler struct {
	svc *services.JetonService
}

func NewJetonHandler(svc *services.JetonService) *JetonHandler {
	return &JetonHandler{svc: svc}
}

// Lister
// @Summary      Liste des jetons API
// @Tags         jetons
// @Produce      json
// @Success      200  {array}  models.Jeton
// @Security     BearerAuth
// @Router       /jetons [get]
func (h *JetonHandler) Lister(w http.ResponseWriter, r *http.Request) {
	jetons, err := h.svc.Lister(r.Context())
	if err != nil {
		repondreErreur(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, jetons)
}

// Creer
// @Summary      Émettre un jeton API
// @Description  Jeton opaque (UUID) lié à un utilisateur, valable de 1 à 365 jours
// @Tags         jetons
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreerJetonRequest  true  "utilisateurId + dureeValidite (jours)"
// @Success      201   {object}  models.Jeton
// @Failure      400   {object}  helpers.ReponseErreur
// @Security     BearerAuth
// @Router       /jetons/creer [post]
func (h *JetonHandler) Creer(w http.ResponseWriter, r *http.Request) {
	var req models.CreerJetonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Erreur(w, http.StatusBadRequest, "corps JSON invalide")
		return
	}

	j, err := h.svc.Creer(r.Context(), req)
	if err != nil {
		repondreErreur(w, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, j)
}

// Supprimer
// @Summary      Révoquer un jeton API
// @Tags         jetons
// @Accept       json
// @Produce      json
// @Param        body  body      models.SupprimerJetonRequest  true  "Valeur du jeton à révoquer"
// @Success      200   {object}  map[string]bool
// @Failure      404   {object}  helpers.ReponseErreur
// @Security     BearerAuth
// @Router       /jetons/supprimer [post]
func (h *JetonHandler) Supprimer(w http.ResponseWriter, r *http.Request) {
	var req models.SupprimerJetonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Erreur(w, http.StatusBadRequest, "corps JSON invalide")
		return
	}

	if err := h.svc.Supprimer(r.Context(), req.Jeton); err != nil {
		repondreErreur(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]bool{"succes": true})
}
