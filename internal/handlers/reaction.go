package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"luxew/internal/models"
	"luxew/internal/services"
	"luxew/internal/utils/helpers"
)

type ReactionHandler struct {
	svc *services.ReactionService
}

func NewReactionHandler(svc *services.ReactionService) *ReactionHandler {
	return &ReactionHandler{svc: svc}
}

// Toggle
// @Summary      Poser ou retirer une réaction
// @Description  Bascule like/unlike sur un article OU un commentaire : ajout si absente, retrait si identique, changement de type sinon
// @Tags         reactions
// @Accept       json
// @Produce      json
// @Param        body  body      models.ToggleReactionRequest  true  "type (like|unlike) + articleId OU commentaireId"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  helpers.ReponseErreur
// @Security     BearerAuth
// @Router       /reactions/creer [post]
func (h *ReactionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req models.ToggleReactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Erreur(w, http.StatusBadRequest, "corps JSON invalide")
		return
	}

	action, bilan, err := h.svc.Toggle(r.Context(), acteurDepuisCtx(r), req)
	if err != nil {
		repondreErreur(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]interface{}{
		"succes":    true,
		"action":    action,
		"reactions": bilan,
	})
}

// ReactionUtilisateur
// @Summary      Réaction courante de l'utilisateur
// @Description  Renvoie la réaction de l'utilisateur connecté sur la cible (articleId OU commentaireId en query), null s'il n'en a pas
// @Tags         reactions
// @Produce      json
// @Param        articleId      query  int  false  "Id de l'article cible"
// @Param        commentaireId  query  int  false  "Id du commentaire cible"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  helpers.ReponseErreur
// @Security     BearerAuth
// @Router       /reactions/utilisateur [get]
func (h *ReactionHandler) ReactionUtilisateur(w http.ResponseWriter, r *http.Request) {
	articleID, err := idOptionnel(r, "articleId")
	if err != nil {
		helpers.Erreur(w, http.StatusBadRequest, err.Error())
		return
	}
	commentaireID, err := idOptionnel(r, "commentaireId")
	if err != nil {
		helpers.Erreur(w, http.StatusBadRequest, err.Error())
		return
	}

	reaction, err := h.svc.ReactionUtilisateur(r.Context(), acteurDepuisCtx(r), articleID, commentaireID)
	if err != nil {
		repondreErreur(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]interface{}{"reaction": reaction})
}

// Supprimer
// @Summary      Supprimer une réaction
// @Description  Propriétaire ou admin
// @Tags         reactions
// @Produce      json
// @Param        id  path  int  true  "Id de la réaction"
// @Success      200  {object}  map[string]bool
// @Failure      403  {object}  helpers.ReponseErreur
// @Security     BearerAuth
// @Router       /reactions/{id}/supprimer [delete]
func (h *ReactionHandler) Supprimer(w http.ResponseWriter, r *http.Request) {
	id, err := idDepuisVars(r, "id")
	if err != nil {
		helpers.Erreur(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.Supprimer(r.Context(), acteurDepuisCtx(r), id); err != nil {
		repondreErreur(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]bool{"succes": true})
}

// BilanArticle
// @Summary      Bilan des réactions d'un article
// @Description  Comptes agrégés par type, public
// @Tags         reactions
// @Produce      json
// @Param        id  path  int  true  "Id de l'article"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  helpers.ReponseErreur
// @Router       /reactions/article/{id} [get]
func (h *ReactionHandler) BilanArticle(w http.ResponseWriter, r *http.Request) {
	id, err := idDepuisVars(r, "id")
	if err != nil {
		helpers.Erreur(w, http.StatusBadRequest, err.Error())
		return
	}

	bilan, err := h.svc.BilanArticle(r.Context(), id)
	if err != nil {
		repondreErreur(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]interface{}{"succes": true, "reactions": bilan})
}

// BilanCommentaire
// @Summary      Bilan des réactions d'un commentaire
// @Description  Comptes agrégés par type, public
// @Tags         reactions
// @Produce      json
// @Param        id  path  int  true  "Id du commentaire"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  helpers.ReponseErreur
// @Router       /reactions/commentaire/{id} [get]
func (h *ReactionHandler) BilanCommentaire(w http.ResponseWriter, r *http.Request) {
	id, err := idDepuisVars(r, "id")
	if err != nil {
		helpers.Erreur(w, http.StatusBadRequest, err.Error())
		return
	}

	bilan, err := h.svc.BilanCommentaire(r.Context(), id)
	if err != nil {
		repondreErreur(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]interface{}{"succes": true, "reactions": bilan})
}

// idOptionnel lit un identifiant facultatif de la query string : nil s'il
// est absent, erreur s'il est présent mais invalide.
func idOptionnel(r *http.Request, nom string) (*int, error) {
	brut := r.URL.Query().Get(nom)
	if brut == "" {
		return nil, nil
	}
	id, err := strconv.Atoi(brut)
	if err != nil || id < 1 {
		return nil, fmt.Errorf("paramètre %s invalide", nom)
	}
	return &id, nil
}
