package handlers

import (
	"encoding/json"
	"net/http"

	"luxew/internal/models"
	"luxew/internal/services"
	"luxew/internal/utils/helpers"
)

type CategorieHandler struct {
	svc *services.CategorieService
}

func NewCategorieHandler(svc *services.CategorieService) *CategorieHandler {
	return &CategorieHandler{svc: svc}
}

// Lister
// @Summary      Liste des catégories
// @Description  Toutes les catégories triées par libellé ; format=xml pour un rendu XML
// @Tags         categories
// @Produce      json
// @Param        format  query  string  false  "xml pour un rendu XML"
// @Success      200  {array}  models.Categorie
// @Router       /categories [get]
func (h *CategorieHandler) Lister(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Lister(r.Context())
	if err != nil {
		repondreErreur(w, err)
		return
	}

	if formatXMLDemande(r) {
		out := models.CategoriesXML{Categories: []models.CategorieXML{}}
		for _, c := range categories {
			out.Categories = append(out.Categories, models.CategorieXML{ID: c.ID, Libelle: c.Libelle})
		}
		helpers.XML(w, http.StatusOK, out)
		return
	}
	helpers.JSON(w, http.StatusOK, categories)
}

// ListerArticles
// @Summary      Articles d'une catégorie
// @Description  Articles liés à la catégorie, paginés, avec médias et réactions ; format=xml pour un rendu XML réduit
// @Tags         categories
// @Produce      json
// @Param        id      path   int     true   "Id de la catégorie"
// @Param        page    query  int     false  "Page"
// @Param        limite  query  int     false  "Taille de page"
// @Param        format  query  string  false  "xml pour un rendu XML"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  helpers.ReponseErreur
// @Router       /categories/{id}/articles [get]
func (h *CategorieHandler) ListerArticles(w http.ResponseWriter, r *http.Request) {
	id, err := idDepuisVars(r, "id")
	if err != nil {
		helpers.Erreur(w, http.StatusBadRequest, err.Error())
		return
	}
	page, limite, err := pagination(r)
	if err != nil {
		helpers.Erreur(w, http.StatusBadRequest, err.Error())
		return
	}

	categorie, articles, err := h.svc.ListerArticles(r.Context(), acteurDepuisCtx(r), id, page, limite)
	if err != nil {
		repondreErreur(w, err)
		return
	}

	if formatXMLDemande(r) {
		out := models.ArticlesCategorieXML{Articles: []models.ArticleCategorieXML{}}
		for _, a := range articles {
			out.Articles = append(out.Articles, models.ArticleCategorieXML{
				ID: a.ID, Titre: a.Titre, Contenu: a.Contenu,
			})
		}
		helpers.XML(w, http.StatusOK, out)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]interface{}{
		"categorie": categorie,
		"articles":  articles,
	})
}

// Creer
// @Summary      Créer une catégorie
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreerCategorieRequest  true  "Libellé"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  helpers.ReponseErreur
// @Security     BearerAuth
// @Router       /categories/creer [post]
func (h *CategorieHandler) Creer(w http.ResponseWriter, r *http.Request) {
	var req models.CreerCategorieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Erreur(w, http.StatusBadRequest, "corps JSON invalide")
		return
	}

	id, err := h.svc.Creer(r.Context(), req.Libelle)
	if err != nil {
		repondreErreur(w, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, map[string]interface{}{"succes": true, "id": id})
}

// Modifier
// @Summary      Modifier une catégorie
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path      int                           true  "Id de la catégorie"
// @Param        body  body      models.CreerCategorieRequest  true  "Nouveau libellé"
// @Success      200   {object}  map[string]bool
// @Failure      404   {object}  helpers.ReponseErreur
// @Security     BearerAuth
// @Router       /categories/{id}/modifier [put]
func (h *CategorieHandler) Modifier(w http.ResponseWriter, r *http.Request) {
	id, err := idDepuisVars(r, "id")
	if err != nil {
		helpers.Erreur(w, http.StatusBadRequest, err.Error())
		return
	}
	var req models.CreerCategorieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Erreur(w, http.StatusBadRequest, "corps JSON invalide")
		return
	}

	if err := h.svc.Modifier(r.Context(), id, req.Libelle); err != nil {
		repondreErreur(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]bool{"succes": true})
}

// Supprimer
// @Summary      Supprimer une catégorie
// @Description  Retire les liens avec les articles puis la catégorie ; les articles survivent
// @Tags         categories
// @Produce      json
// @Param        id  path  int  true  "Id de la catégorie"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  helpers.ReponseErreur
// @Security     BearerAuth
// @Router       /categories/{id}/supprimer [delete]
func (h *CategorieHandler) Supprimer(w http.ResponseWriter, r *http.Request) {
	id, err := idDepuisVars(r, "id")
	if err != nil {
		helpers.Erreur(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.Supprimer(r.Context(), id); err != nil {
		repondreErreur(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]bool{"succes": true})
}
