package handlers

import (
	"encoding/json"
	"net/http"

	"luxew/internal/models"
	"luxew/internal/services"
	"luxew/internal/utils/helpers"
)

type CommentaireHandler struct {
	svc *services.CommentaireService
}

func NewCommentaireHandler(svc *services.CommentaireService) *CommentaireHandler {
	return &CommentaireHandler{svc: svc}
}

// ListerParArticle
// @Summary      Commentaires d'un article
// @Description  Arbre des commentaires : racines chronologiques, réponses imbriquées, bilan de réactions par nœud
// @Tags         commentaires
// @Produce      json
// @Param        articleId  path  int  true  "Id de l'article"
// @Success      200  {array}   models.Commentaire
// @Failure      404  {object}  helpers.ReponseErreur
// @Router       /commentaires/{articleId} [get]
func (h *CommentaireHandler) ListerParArticle(w http.ResponseWriter, r *http.Request) {
	articleID, err := idDepuisVars(r, "articleId")
	if err != nil {
		helpers.Erreur(w, http.StatusBadRequest, err.Error())
		return
	}

	arbre, err := h.svc.ListerParArticle(r.Context(), articleID)
	if err != nil {
		repondreErreur(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, arbre)
}

// Creer
// @Summary      Poster un commentaire
// @Description  Commentaire racine ou réponse (parentId) sur un article ; le parent doit appartenir au même article
// @Tags         commentaires
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreerCommentaireRequest  true  "Contenu, articleId, parentId optionnel"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  helpers.ReponseErreur
// @Security     BearerAuth
// @Router       /commentaires/creer [post]
func (h *CommentaireHandler) Creer(w http.ResponseWriter, r *http.Request) {
	var req models.CreerCommentaireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Erreur(w, http.StatusBadRequest, "corps JSON invalide")
		return
	}

	id, err := h.svc.Creer(r.Context(), acteurDepuisCtx(r), req)
	if err != nil {
		repondreErreur(w, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, map[string]interface{}{"succes": true, "id": id})
}

// Modifier
// @Summary      Modifier un commentaire
// @Description  Réservé à l'auteur du commentaire
// @Tags         commentaires
// @Accept       json
// @Produce      json
// @Param        id    path      int                                true  "Id du commentaire"
// @Param        body  body      models.ModifierCommentaireRequest  true  "Nouveau contenu"
// @Success      200   {object}  map[string]bool
// @Failure      403   {object}  helpers.ReponseErreur
// @Security     BearerAuth
// @Router       /commentaires/{id}/modifier [post]
func (h *CommentaireHandler) Modifier(w http.ResponseWriter, r *http.Request) {
	id, err := idDepuisVars(r, "id")
	if err != nil {
		helpers.Erreur(w, http.StatusBadRequest, err.Error())
		return
	}
	var req models.ModifierCommentaireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Erreur(w, http.StatusBadRequest, "corps JSON invalide")
		return
	}

	if err := h.svc.Modifier(r.Context(), acteurDepuisCtx(r), id, req.Contenu); err != nil {
		repondreErreur(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]bool{"succes": true})
}

// Supprimer
// @Summary      Supprimer un commentaire
// @Description  Auteur ou admin ; les réponses et réactions suivent en cascade
// @Tags         commentaires
// @Produce      json
// @Param        id  path  int  true  "Id du commentaire"
// @Success      200  {object}  map[string]bool
// @Failure      403  {object}  helpers.ReponseErreur
// @Security     BearerAuth
// @Router       /commentaires/{id}/supprimer [delete]
func (h *CommentaireHandler) Supprimer(w http.ResponseWriter, r *http.Request) {
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
