package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"luxew/internal/models"
)

// Répertoires en mémoire pour les tests de services.

func ptrInt(v int) *int { return &v }

type mockArticleRepo struct {
	articles   map[int]*models.Article
	liens      map[int][]int // articleId -> categorieIds
	medias     map[int][]models.Media
	prochainID int
	supprimes  []int
}

func newMockArticleRepo() *mockArticleRepo {
	return &mockArticleRepo{
		articles: make(map[int]*models.Article),
		liens:    make(map[int][]int),
		medias:   make(map[int][]models.Media),
	}
}

func (m *mockArticleRepo) Creer(_ context.Context, a *models.Article, categorieIDs []int) (int, error) {
	m.prochainID++
	a.ID = m.prochainID
	a.DateCreation = time.Now()
	m.articles[a.ID] = a
	m.liens[a.ID] = categorieIDs
	return a.ID, nil
}

func (m *mockArticleRepo) ObtenirPagine(_ context.Context, limite, offset int) ([]*models.Article, error) {
	ids := make([]int, 0, len(m.articles))
	for id := range m.articles {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	var liste []*models.Article
	for i, id := range ids {
		if i < offset || len(liste) >= limite {
			continue
		}
		liste = append(liste, m.articles[id])
	}
	return liste, nil
}

func (m *mockArticleRepo) ObtenirParID(_ context.Context, id int) (*models.Article, error) {
	a, ok := m.articles[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return a, nil
}

func (m *mockArticleRepo) ObtenirParAuteur(_ context.Context, auteurID, limite, offset int) ([]*models.Article, error) {
	var liste []*models.Article
	for _, a := range m.articles {
		if a.AuteurID == auteurID {
			liste = append(liste, a)
		}
	}
	return liste, nil
}

func (m *mockArticleRepo) Modifier(_ context.Context, a *models.Article, categorieIDs []int) error {
	if _, ok := m.articles[a.ID]; !ok {
		return errors.New("no rows")
	}
	m.articles[a.ID] = a
	m.liens[a.ID] = categorieIDs
	return nil
}

func (m *mockArticleRepo) Supprimer(_ context.Context, id int) error {
	if _, ok := m.articles[id]; !ok {
		return errors.New("no rows")
	}
	delete(m.articles, id)
	delete(m.liens, id)
	delete(m.medias, id)
	m.supprimes = append(m.supprimes, id)
	return nil
}

func (m *mockArticleRepo) Existe(_ context.Context, id int) (bool, error) {
	_, ok := m.articles[id]
	return ok, nil
}

func (m *mockArticleRepo) ObtenirCategoriesArticle(_ context.Context, articleID int) ([]models.Categorie, error) {
	categories := []models.Categorie{}
	for _, id := range m.liens[articleID] {
		categories = append(categories, models.Categorie{ID: id, Libelle: fmt.Sprintf("categorie-%d", id)})
	}
	return categories, nil
}

func (m *mockArticleRepo) ObtenirMediasArticle(_ context.Context, articleID int) ([]models.Media, error) {
	return append([]models.Media{}, m.medias[articleID]...), nil
}

func (m *mockArticleRepo) AjouterMedia(_ context.Context, media *models.Media) error {
	media.ID = len(m.medias[media.ArticleID]) + 1
	m.medias[media.ArticleID] = append(m.medias[media.ArticleID], *media)
	return nil
}

func (m *mockArticleRepo) SupprimerMediasArticle(_ context.Context, articleID int) error {
	delete(m.medias, articleID)
	return nil
}

type mockCategorieRepo struct {
	categories map[int]models.Categorie
	prochainID int
}

func newMockCategorieRepo(libelles ...string) *mockCategorieRepo {
	m := &mockCategorieRepo{categories: make(map[int]models.Categorie)}
	for _, l := range libelles {
		m.prochainID++
		m.categories[m.prochainID] = models.Categorie{ID: m.prochainID, Libelle: l}
	}
	return m
}

func (m *mockCategorieRepo) ObtenirToutes(_ context.Context) ([]models.Categorie, error) {
	liste := []models.Categorie{}
	for _, c := range m.categories {
		liste = append(liste, c)
	}
	sort.Slice(liste, func(i, j int) bool { return liste[i].Libelle < liste[j].Libelle })
	return liste, nil
}

func (m *mockCategorieRepo) ObtenirParID(_ context.Context, id int) (*models.Categorie, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return &c, nil
}

func (m *mockCategorieRepo) LibelleExiste(_ context.Context, libelle string, excludeID int) (bool, error) {
	for _, c := range m.categories {
		if c.ID != excludeID && strings.EqualFold(c.Libelle, libelle) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockCategorieRepo) Creer(_ context.Context, libelle string) (int, error) {
	m.prochainID++
	m.categories[m.prochainID] = models.Categorie{ID: m.prochainID, Libelle: libelle}
	return m.prochainID, nil
}

func (m *mockCategorieRepo) Modifier(_ context.Context, id int, libelle string) error {
	c, ok := m.categories[id]
	if !ok {
		return errors.New("no rows")
	}
	c.Libelle = libelle
	m.categories[id] = c
	return nil
}

func (m *mockCategorieRepo) Supprimer(_ context.Context, id int) error {
	delete(m.categories, id)
	return nil
}

func (m *mockCategorieRepo) ObtenirArticlesParCategorie(_ context.Context, categorieID, limite, offset int) ([]*models.Article, error) {
	return nil, nil
}

func (m *mockCategorieRepo) Existe(_ context.Context, id int) (bool, error) {
	_, ok := m.categories[id]
	return ok, nil
}

type mockReactionRepo struct {
	reactions  map[int]*models.Reaction
	prochainID int
}

func newMockReactionRepo() *mockReactionRepo {
	return &mockReactionRepo{reactions: make(map[int]*models.Reaction)}
}

func (m *mockReactionRepo) Creer(_ context.Context, re *models.Reaction) (int, error) {
	m.prochainID++
	re.ID = m.prochainID
	m.reactions[re.ID] = re
	return re.ID, nil
}

func (m *mockReactionRepo) ModifierType(_ context.Context, id int, nouveauType string) error {
	r, ok := m.reactions[id]
	if !ok {
		return errors.New("no rows")
	}
	r.Type = nouveauType
	return nil
}

func (m *mockReactionRepo) Supprimer(_ context.Context, id int) error {
	if _, ok := m.reactions[id]; !ok {
		return errors.New("no rows")
	}
	delete(m.reactions, id)
	return nil
}

func (m *mockReactionRepo) ObtenirParID(_ context.Context, id int) (*models.Reaction, error) {
	r, ok := m.reactions[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return r, nil
}

func (m *mockReactionRepo) ObtenirPourUtilisateur(_ context.Context, utilisateurID int, articleID, commentaireID *int) (*models.Reaction, error) {
	for _, r := range m.reactions {
		if r.UtilisateurID != utilisateurID {
			continue
		}
		if articleID != nil && r.ArticleID != nil && *r.ArticleID == *articleID {
			return r, nil
		}
		if commentaireID != nil && r.CommentaireID != nil && *r.CommentaireID == *commentaireID {
			return r, nil
		}
	}
	return nil, nil
}

func (m *mockReactionRepo) BilanParArticle(_ context.Context, articleID int) ([]models.BilanReaction, error) {
	return m.bilan(func(r *models.Reaction) bool {
		return r.ArticleID != nil && *r.ArticleID == articleID
	}), nil
}

func (m *mockReactionRepo) BilanParCommentaire(_ context.Context, commentaireID int) ([]models.BilanReaction, error) {
	return m.bilan(func(r *models.Reaction) bool {
		return r.CommentaireID != nil && *r.CommentaireID == commentaireID
	}), nil
}

func (m *mockReactionRepo) bilan(cible func(*models.Reaction) bool) []models.BilanReaction {
	comptes := map[string]int{}
	for _, r := range m.reactions {
		if cible(r) {
			comptes[r.Type]++
		}
	}
	bilan := []models.BilanReaction{}
	for _, t := range []string{models.ReactionLike, models.ReactionUnlike} {
		if n, ok := comptes[t]; ok {
			bilan = append(bilan, models.BilanReaction{Type: t, Nombre: n})
		}
	}
	return bilan
}

type mockCommentaireRepo struct {
	commentaires map[int]*models.Commentaire
	prochainID   int
}

func newMockCommentaireRepo() *mockCommentaireRepo {
	return &mockCommentaireRepo{commentaires: make(map[int]*models.Commentaire)}
}

func (m *mockCommentaireRepo) ObtenirParArticle(_ context.Context, articleID int) ([]*models.Commentaire, error) {
	var liste []*models.Commentaire
	for _, c := range m.commentaires {
		if c.ArticleID == articleID {
			liste = append(liste, c)
		}
	}
	sort.Slice(liste, func(i, j int) bool { return liste[i].ID < liste[j].ID })
	return liste, nil
}

func (m *mockCommentaireRepo) ObtenirParID(_ context.Context, id int) (*models.Commentaire, error) {
	c, ok := m.commentaires[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return c, nil
}

func (m *mockCommentaireRepo) Creer(_ context.Context, c *models.Commentaire) (int, error) {
	m.prochainID++
	c.ID = m.prochainID
	c.DateCreation = time.Now()
	m.commentaires[c.ID] = c
	return c.ID, nil
}

func (m *mockCommentaireRepo) Modifier(_ context.Context, id int, contenu string) error {
	c, ok := m.commentaires[id]
	if !ok {
		return errors.New("no rows")
	}
	c.Contenu = contenu
	return nil
}

func (m *mockCommentaireRepo) Supprimer(_ context.Context, id int) error {
	if _, ok := m.commentaires[id]; !ok {
		return errors.New("no rows")
	}
	delete(m.commentaires, id)
	return nil
}

func (m *mockCommentaireRepo) ExisteSurArticle(_ context.Context, commentaireID, articleID int) (bool, error) {
	c, ok := m.commentaires[commentaireID]
	return ok && c.ArticleID == articleID, nil
}

// mockStockage évite tout appel réseau : l'URL renvoyée est dérivée du
// public_id demandé.
type mockStockage struct {
	televersements []string
}

func (m *mockStockage) Televerser(_ context.Context, fichier models.FichierMedia, publicID string) (string, error) {
	m.televersements = append(m.televersements, fichier.Nom)
	return "https://medias.example/" + publicID, nil
}
