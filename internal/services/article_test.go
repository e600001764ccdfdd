package services

import (
	"context"
	"testing"

	"luxew/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func articleFixture(t *testing.T) (*ArticleService, *mockArticleRepo, *mockCategorieRepo, *mockStockage) {
	t.Helper()
	articles := newMockArticleRepo()
	categories := newMockCategorieRepo("Sport", "Culture")
	reactions := newMockReactionRepo()
	stockage := &mockStockage{}
	return NewArticleService(articles, categories, reactions, stockage), articles, categories, stockage
}

func TestCreerArticle(t *testing.T) {
	svc, articles, _, stockage := articleFixture(t)
	editeur := models.Acteur{ID: 3, Roles: []string{models.RoleEditeur}}

	id, err := svc.Creer(context.Background(), editeur, models.CreerArticleRequest{
		Titre:      "Grand titre",
		Contenu:    "<p>Du contenu.</p>",
		Categories: []int{1, 2},
		Medias: []models.FichierMedia{
			{Nom: "photo.jpg", TypeMime: "image/jpeg", Contenu: []byte("...")},
		},
	})
	require.NoError(t, err)

	a := articles.articles[id]
	require.NotNil(t, a)
	assert.Equal(t, 3, a.AuteurID)
	assert.Equal(t, []int{1, 2}, articles.liens[id])
	assert.Equal(t, []string{"photo.jpg"}, stockage.televersements)
	require.Len(t, articles.medias[id], 1)
	assert.Equal(t, models.MediaImage, articles.medias[id][0].Type)
}

func TestCreerArticle_ChampsManquants(t *testing.T) {
	svc, articles, _, _ := articleFixture(t)
	editeur := models.Acteur{ID: 3, Roles: []string{models.RoleEditeur}}

	_, err := svc.Creer(context.Background(), editeur, models.CreerArticleRequest{Titre: "  ", Contenu: "x"})
	assert.Error(t, err)
	_, err = svc.Creer(context.Background(), editeur, models.CreerArticleRequest{Titre: "x", Contenu: ""})
	assert.Error(t, err)
	assert.Empty(t, articles.articles)
}

// Un id de catégorie inconnu fait échouer la création entière : aucun
// article partiel ne doit apparaître.
func TestCreerArticle_CategorieInconnue(t *testing.T) {
	svc, articles, _, _ := articleFixture(t)
	editeur := models.Acteur{ID: 3, Roles: []string{models.RoleEditeur}}

	_, err := svc.Creer(context.Background(), editeur, models.CreerArticleRequest{
		Titre: "Titre", Contenu: "Contenu", Categories: []int{1, 999},
	})
	assert.Error(t, err)
	assert.Empty(t, articles.articles)
}

func TestModifierArticle_Possession(t *testing.T) {
	svc, _, _, _ := articleFixture(t)
	auteur := models.Acteur{ID: 3, Roles: []string{models.RoleEditeur}}
	autreEditeur := models.Acteur{ID: 4, Roles: []string{models.RoleEditeur}}
	admin := models.Acteur{ID: 5, Roles: []string{models.RoleAdmin}}

	id, err := svc.Creer(context.Background(), auteur, models.CreerArticleRequest{
		Titre: "Original", Contenu: "Contenu",
	})
	require.NoError(t, err)

	maj := models.CreerArticleRequest{Titre: "Maj", Contenu: "Contenu"}
	assert.ErrorIs(t, svc.Modifier(context.Background(), autreEditeur, id, maj), ErrInterdit)
	assert.NoError(t, svc.Modifier(context.Background(), auteur, id, maj))
	assert.NoError(t, svc.Modifier(context.Background(), admin, id, maj))
}

func TestSupprimerArticle_Possession(t *testing.T) {
	svc, articles, _, _ := articleFixture(t)
	auteur := models.Acteur{ID: 3, Roles: []string{models.RoleEditeur}}
	autreEditeur := models.Acteur{ID: 4, Roles: []string{models.RoleEditeur}}

	id, err := svc.Creer(context.Background(), auteur, models.CreerArticleRequest{
		Titre: "À supprimer", Contenu: "Contenu",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Supprimer(context.Background(), autreEditeur, id), ErrInterdit)
	assert.NoError(t, svc.Supprimer(context.Background(), auteur, id))
	assert.Contains(t, articles.supprimes, id)
}

func TestObtenirArticle_Drapeaux(t *testing.T) {
	svc, _, _, _ := articleFixture(t)
	auteur := models.Acteur{ID: 3, Roles: []string{models.RoleEditeur}}

	id, err := svc.Creer(context.Background(), auteur, models.CreerArticleRequest{
		Titre: "Titre", Contenu: "Contenu",
	})
	require.NoError(t, err)

	// Pour l'auteur : modifiable.
	a, err := svc.Obtenir(context.Background(), auteur, id)
	require.NoError(t, err)
	assert.True(t, a.PeutModifier)
	assert.True(t, a.PeutSupprimer)

	// Pour un visiteur anonyme : non.
	a, err = svc.Obtenir(context.Background(), models.Acteur{}, id)
	require.NoError(t, err)
	assert.False(t, a.PeutModifier)
	assert.False(t, a.PeutSupprimer)
}

func TestDeterminerTypeMedia(t *testing.T) {
	assert.Equal(t, models.MediaImage, DeterminerTypeMedia("image/png"))
	assert.Equal(t, models.MediaAudio, DeterminerTypeMedia("audio/mpeg"))
	assert.Equal(t, models.MediaVideo, DeterminerTypeMedia("video/mp4"))
	// Type inconnu : image par défaut.
	assert.Equal(t, models.MediaImage, DeterminerTypeMedia("application/octet-stream"))
}

func TestLister_PaginationInvalide(t *testing.T) {
	svc, _, _, _ := articleFixture(t)

	_, _, err := svc.Lister(context.Background(), models.Acteur{}, 0, 10)
	assert.Error(t, err)
	_, _, err = svc.Lister(context.Background(), models.Acteur{}, 1, 0)
	assert.Error(t, err)
}
