package services

import (
	"context"
	"testing"

	"luxew/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categorieFixture(t *testing.T) (*CategorieService, *mockCategorieRepo) {
	t.Helper()
	categories := newMockCategorieRepo("Sport")
	return NewCategorieService(categories, newMockArticleRepo(), newMockReactionRepo()), categories
}

func TestCreerCategorie(t *testing.T) {
	svc, categories := categorieFixture(t)

	id, err := svc.Creer(context.Background(), "  Culture  ")
	require.NoError(t, err)
	assert.Equal(t, "Culture", categories.categories[id].Libelle)
}

func TestCreerCategorie_LibelleTropCourt(t *testing.T) {
	svc, _ := categorieFixture(t)

	_, err := svc.Creer(context.Background(), "X")
	assert.Error(t, err)
}

// L'unicité du libellé ignore la casse.
func TestCreerCategorie_DoublonInsensibleALaCasse(t *testing.T) {
	svc, _ := categorieFixture(t)

	_, err := svc.Creer(context.Background(), "SPORT")
	assert.Error(t, err)
}

// En modification, l'unicité exclut la catégorie éditée : reposer son
// propre libellé n'est pas un doublon.
func TestModifierCategorie_ExclutLaLigneEditee(t *testing.T) {
	svc, categories := categorieFixture(t)

	assert.NoError(t, svc.Modifier(context.Background(), 1, "Sport"))
	assert.NoError(t, svc.Modifier(context.Background(), 1, "Sports"))
	assert.Equal(t, "Sports", categories.categories[1].Libelle)
}

func TestModifierCategorie_Introuvable(t *testing.T) {
	svc, _ := categorieFixture(t)

	err := svc.Modifier(context.Background(), 999, "Culture")
	assert.ErrorIs(t, err, ErrIntrouvable)
}

func TestSupprimerCategorie(t *testing.T) {
	svc, categories := categorieFixture(t)

	require.NoError(t, svc.Supprimer(context.Background(), 1))
	assert.Empty(t, categories.categories)

	err := svc.Supprimer(context.Background(), 1)
	assert.ErrorIs(t, err, ErrIntrouvable)
}

func TestListerArticlesCategorie_Introuvable(t *testing.T) {
	svc, _ := categorieFixture(t)

	_, _, err := svc.ListerArticles(context.Background(), models.Acteur{}, 999, 1, 10)
	assert.ErrorIs(t, err, ErrIntrouvable)
}
