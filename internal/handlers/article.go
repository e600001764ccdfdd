package handlers

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"luxew/internal/logger"
	"luxew/internal/models"
	"luxew/internal/services"
	"luxew/internal/utils/helpers"

	"go.uber.org/zap"
)

// Taille maximale acceptée pour le formulaire multipart (médias compris).
const tailleMaxFormulaire = 32 << 20

type ArticleHandler struct {
	svc *services.ArticleService
}

func NewArticleHandler(svc *services.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// Lister
// @Summary      Liste paginée des articles
// @Description  Articles avec auteur, catégories, médias, bilan de réactions et drapeaux de possession ; format=xml pour un rendu XML
// @Tags         articles
// @Produce      json
// @Param        page    query  int     false  "Page (défaut 1)"
// @Param        limite  query  int     false  "Taille de page (défaut 10)"
// @Param        format  query  string  false  "xml pour un rendu XML"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  helpers.ReponseErreur
// @Router       /articles [get]
func (h *ArticleHandler) Lister(w http.ResponseWriter, r *http.Request) {
	page, limite, err := pagination(r)
	if err != nil {
		helpers.Erreur(w, http.StatusBadRequest, err.Error())
		return
	}

	articles, categories, err := h.svc.Lister(r.Context(), acteurDepuisCtx(r), page, limite)
	if err != nil {
		repondreErreur(w, err)
		return
	}

	if formatXMLDemande(r) {
		helpers.XML(w, http.StatusOK, articlesVersXML(articles))
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]interface{}{
		"articles":   articles,
		"categories": categories,
	})
}

// ListerParAuteur
// @Summary      Articles d'un auteur
// @Tags         articles
// @Produce      json
// @Param        id      path   int  true   "Id de l'auteur"
// @Param        page    query  int  false  "Page"
// @Param        limite  query  int  false  "Taille de page"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  helpers.ReponseErreur
// @Router       /articles/auteur/{id} [get]
func (h *ArticleHandler) ListerParAuteur(w http.ResponseWriter, r *http.Request) {
	auteurID, err := idDepuisVars(r, "id")
	if err != nil {
		helpers.Erreur(w, http.StatusBadRequest, err.Error())
		return
	}
	page, limite, err := pagination(r)
	if err != nil {
		helpers.Erreur(w, http.StatusBadRequest, err.Error())
		return
	}

	articles, err := h.svc.ListerParAuteur(r.Context(), acteurDepuisCtx(r), auteurID, page, limite)
	if err != nil {
		repondreErreur(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]interface{}{"articles": articles})
}

// Obtenir
// @Summary      Détail d'un article
// @Tags         articles
// @Produce      json
// @Param        id  path  int  true  "Id de l'article"
// @Success      200  {object}  models.Article
// @Failure      404  {object}  helpers.ReponseErreur
// @Router       /articles/{id} [get]
func (h *ArticleHandler) Obtenir(w http.ResponseWriter, r *http.Request) {
	id, err := idDepuisVars(r, "id")
	if err != nil {
		helpers.Erreur(w, http.StatusBadRequest, err.Error())
		return
	}

	article, err := h.svc.Obtenir(r.Context(), acteurDepuisCtx(r), id)
	if err != nil {
		repondreErreur(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, article)
}

// Creer
// @Summary      Créer un article
// @Description  Formulaire multipart : titre, contenu, categories[] (ids), medias[] (fichiers image/audio/video)
// @Tags         articles
// @Accept       mpfd
// @Produce      json
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  helpers.ReponseErreur
// @Security     BearerAuth
// @Router       /articles/creer [post]
func (h *ArticleHandler) Creer(w http.ResponseWriter, r *http.Request) {
	req, err := lireFormulaireArticle(r)
	if err != nil {
		helpers.Erreur(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.svc.Creer(r.Context(), acteurDepuisCtx(r), *req)
	if err != nil {
		repondreErreur(w, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, map[string]interface{}{"succes": true, "id": id})
}

// Modifier
// @Summary      Modifier un article
// @Description  Mêmes champs que la création ; les médias fournis remplacent les anciens
// @Tags         articles
// @Accept       mpfd
// @Produce      json
// @Param        id  path  int  true  "Id de l'article"
// @Success      200  {object}  map[string]bool
// @Failure      403  {object}  helpers.ReponseErreur
// @Failure      404  {object}  helpers.ReponseErreur
// @Security     BearerAuth
// @Router       /articles/{id}/modifier [post]
func (h *ArticleHandler) Modifier(w http.ResponseWriter, r *http.Request) {
	id, err := idDepuisVars(r, "id")
	if err != nil {
		helpers.Erreur(w, http.StatusBadRequest, err.Error())
		return
	}
	req, err := lireFormulaireArticle(r)
	if err != nil {
		helpers.Erreur(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.Modifier(r.Context(), acteurDepuisCtx(r), id, *req); err != nil {
		repondreErreur(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]bool{"succes": true})
}

// Supprimer
// @Summary      Supprimer un article
// @Description  Supprime l'article et en cascade ses médias, liens de catégories, commentaires et réactions
// @Tags         articles
// @Produce      json
// @Param        id  path  int  true  "Id de l'article"
// @Success      200  {object}  map[string]bool
// @Failure      403  {object}  helpers.ReponseErreur
// @Failure      404  {object}  helpers.ReponseErreur
// @Security     BearerAuth
// @Router       /articles/{id}/supprimer [post]
func (h *ArticleHandler) Supprimer(w http.ResponseWriter, r *http.Request) {
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

// lireFormulaireArticle extrait titre, contenu, ids de catégories et
// fichiers médias du formulaire multipart. Les clés "categories[]" et
// "medias[]" sont acceptées avec ou sans crochets.
func lireFormulaireArticle(r *http.Request) (*models.CreerArticleRequest, error) {
	if err := r.ParseMultipartForm(tailleMaxFormulaire); err != nil {
		logger.WithCtx(r.Context()).Warn("Formulaire multipart illisible", zap.Error(err))
		return nil, err
	}

	req := &models.CreerArticleRequest{
		Titre:   r.FormValue("titre"),
		Contenu: r.FormValue("contenu"),
	}

	bruts := r.Form["categories[]"]
	if len(bruts) == 0 {
		bruts = r.Form["categories"]
	}
	for _, brut := range bruts {
		id, err := strconv.Atoi(brut)
		if err != nil {
			return nil, err
		}
		req.Categories = append(req.Categories, id)
	}

	if r.MultipartForm != nil {
		fichiers := r.MultipartForm.File["medias[]"]
		if len(fichiers) == 0 {
			fichiers = r.MultipartForm.File["medias"]
		}
		for _, en := range fichiers {
			f, err := en.Open()
			if err != nil {
				return nil, err
			}
			contenu, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return nil, err
			}
			req.Medias = append(req.Medias, models.FichierMedia{
				Nom:      en.Filename,
				TypeMime: en.Header.Get("Content-Type"),
				Contenu:  contenu,
			})
		}
	}
	return req, nil
}

func articlesVersXML(articles []*models.Article) models.ArticlesXML {
	out := models.ArticlesXML{Articles: []models.ArticleXML{}}
	for _, a := range articles {
		bilans := make([]models.BilanReactionXML, 0, len(a.Reactions))
		for _, b := range a.Reactions {
			bilans = append(bilans, models.BilanReactionXML{Type: b.Type, Nombre: b.Nombre})
		}
		out.Articles = append(out.Articles, models.ArticleXML{
			ID:            a.ID,
			Titre:         a.Titre,
			Contenu:       a.Contenu,
			DateCreation:  a.DateCreation.Format(time.RFC3339),
			PeutModifier:  a.PeutModifier,
			PeutSupprimer: a.PeutSupprimer,
			Reactions:     models.ReactionsXML{Reactions: bilans},
		})
	}
	return out
}
