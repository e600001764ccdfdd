package handlers

import (
	"encoding/json"
	"net/http"

	"luxew/internal/logger"
	"luxew/internal/models"
	"luxew/internal/services"
	"luxew/internal/utils/helpers"

	"go.uber.org/zap"
)

type AuthHandler struct {
	svc *services.AuthService
}

func NewAuthHandler(svc *services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Inscription
// @Summary      Inscription d'un utilisateur
// @Description  Crée un compte (rôle visiteur ou editeur) et renvoie un jeton JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      models.InscriptionRequest  true  "Données d'inscription"
// @Success      201   {object}  models.ConnexionResponse
// @Failure      400   {object}  helpers.ReponseErreur
// @Router       /inscription [post]
func (h *AuthHandler) Inscription(w http.ResponseWriter, r *http.Request) {
	var req models.InscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("JSON d'inscription illisible", zap.Error(err))
		helpers.Erreur(w, http.StatusBadRequest, "corps JSON invalide")
		return
	}

	resp, err := h.svc.Inscrire(r.Context(), req)
	if err != nil {
		repondreErreur(w, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, resp)
}

// Connexion
// @Summary      Connexion
// @Description  Vérifie email + mot de passe et renvoie un jeton JWT porteur des rôles
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      models.ConnexionRequest  true  "Identifiants"
// @Success      200   {object}  models.ConnexionResponse
// @Failure      401   {object}  helpers.ReponseErreur
// @Router       /connexion [post]
func (h *AuthHandler) Connexion(w http.ResponseWriter, r *http.Request) {
	var req models.ConnexionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Erreur(w, http.StatusBadRequest, "corps JSON invalide")
		return
	}

	resp, err := h.svc.Connecter(r.Context(), req)
	if err != nil {
		helpers.Erreur(w, http.StatusUnauthorized, err.Error())
		return
	}
	helpers.JSON(w, http.StatusOK, resp)
}

// Deconnexion
// @Summary      Déconnexion
// @Description  Le JWT étant sans état côté serveur, le client jette simplement son jeton
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Security     BearerAuth
// @Router       /deconnexion [post]
func (h *AuthHandler) Deconnexion(w http.ResponseWriter, r *http.Request) {
	acteur := acteurDepuisCtx(r)
	logger.WithCtx(r.Context()).Info("Déconnexion", zap.Int("utilisateur_id", acteur.ID))
	helpers.JSON(w, http.StatusOK, map[string]bool{"succes": true})
}
