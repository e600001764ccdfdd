package services

import (
	"context"
	"testing"

	"luxew/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstruireArbre(t *testing.T) {
	// Liste plate triée par dateCreation : 1 et 4 sont des racines, 2 et 3
	// répondent à 1, 5 répond à 2.
	plats := []*models.Commentaire{
		{ID: 1},
		{ID: 2, ParentID: ptrInt(1)},
		{ID: 3, ParentID: ptrInt(1)},
		{ID: 4},
		{ID: 5, ParentID: ptrInt(2)},
	}

	racines := ConstruireArbre(plats)
	require.Len(t, racines, 2)
	assert.Equal(t, 1, racines[0].ID)
	assert.Equal(t, 4, racines[1].ID)

	require.Len(t, racines[0].SousCommentaires, 2)
	assert.Equal(t, 2, racines[0].SousCommentaires[0].ID)
	assert.Equal(t, 3, racines[0].SousCommentaires[1].ID)

	require.Len(t, racines[0].SousCommentaires[0].SousCommentaires, 1)
	assert.Equal(t, 5, racines[0].SousCommentaires[0].SousCommentaires[0].ID)

	assert.Empty(t, racines[1].SousCommentaires)
}

func TestConstruireArbre_ParentManquant(t *testing.T) {
	// Un orphelin (parent absent de la liste) est promu racine.
	plats := []*models.Commentaire{
		{ID: 10, ParentID: ptrInt(99)},
	}
	racines := ConstruireArbre(plats)
	require.Len(t, racines, 1)
	assert.Equal(t, 10, racines[0].ID)
}

func commentaireFixture(t *testing.T) (*CommentaireService, *mockCommentaireRepo) {
	t.Helper()
	articles := newMockArticleRepo()
	commentaires := newMockCommentaireRepo()
	reactions := newMockReactionRepo()

	_, err := articles.Creer(context.Background(), &models.Article{Titre: "t", Contenu: "c", AuteurID: 1}, nil)
	require.NoError(t, err)

	return NewCommentaireService(commentaires, articles, reactions), commentaires
}

func TestCreerCommentaire(t *testing.T) {
	svc, _ := commentaireFixture(t)

	id, err := svc.Creer(context.Background(), models.Acteur{ID: 5}, models.CreerCommentaireRequest{
		Contenu: "premier !", ArticleID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, id)
}

func TestCreerCommentaire_ParentAutreArticle(t *testing.T) {
	svc, commentaires := commentaireFixture(t)

	// Parent rattaché à un article différent.
	parentID, err := commentaires.Creer(context.Background(), &models.Commentaire{
		Contenu: "ailleurs", UtilisateurID: 1, ArticleID: 42,
	})
	require.NoError(t, err)

	_, err = svc.Creer(context.Background(), models.Acteur{ID: 5}, models.CreerCommentaireRequest{
		Contenu: "réponse", ArticleID: 1, ParentID: ptrInt(parentID),
	})
	assert.Error(t, err)
}

func TestCreerCommentaire_ArticleIntrouvable(t *testing.T) {
	svc, _ := commentaireFixture(t)

	_, err := svc.Creer(context.Background(), models.Acteur{ID: 5}, models.CreerCommentaireRequest{
		Contenu: "où ça ?", ArticleID: 999,
	})
	assert.ErrorIs(t, err, ErrIntrouvable)
}

func TestModifierCommentaire_ProprietaireSeul(t *testing.T) {
	svc, _ := commentaireFixture(t)

	id, err := svc.Creer(context.Background(), models.Acteur{ID: 5}, models.CreerCommentaireRequest{
		Contenu: "texte", ArticleID: 1,
	})
	require.NoError(t, err)

	err = svc.Modifier(context.Background(), models.Acteur{ID: 6}, id, "piraté")
	assert.ErrorIs(t, err, ErrInterdit)

	assert.NoError(t, svc.Modifier(context.Background(), models.Acteur{ID: 5}, id, "corrigé"))
}

func TestSupprimerCommentaire_ProprietaireOuAdmin(t *testing.T) {
	svc, _ := commentaireFixture(t)
	acteur := models.Acteur{ID: 5}

	id, err := svc.Creer(context.Background(), acteur, models.CreerCommentaireRequest{
		Contenu: "à supprimer", ArticleID: 1,
	})
	require.NoError(t, err)

	err = svc.Supprimer(context.Background(), models.Acteur{ID: 6}, id)
	assert.ErrorIs(t, err, ErrInterdit)

	admin := models.Acteur{ID: 9, Roles: []string{models.RoleAdmin}}
	assert.NoError(t, svc.Supprimer(context.Background(), admin, id))
}

func TestListerParArticle_ArbreEtBilans(t *testing.T) {
	articles := newMockArticleRepo()
	commentaires := newMockCommentaireRepo()
	reactions := newMockReactionRepo()
	svc := NewCommentaireService(commentaires, articles, reactions)

	_, err := articles.Creer(context.Background(), &models.Article{Titre: "t", Contenu: "c", AuteurID: 1}, nil)
	require.NoError(t, err)

	racineID, err := commentaires.Creer(context.Background(), &models.Commentaire{
		Contenu: "racine", UtilisateurID: 1, ArticleID: 1,
	})
	require.NoError(t, err)
	_, err = commentaires.Creer(context.Background(), &models.Commentaire{
		Contenu: "réponse", UtilisateurID: 2, ArticleID: 1, ParentID: ptrInt(racineID),
	})
	require.NoError(t, err)

	_, err = reactions.Creer(context.Background(), &models.Reaction{
		UtilisateurID: 3, CommentaireID: ptrInt(racineID), Type: models.ReactionLike,
	})
	require.NoError(t, err)

	arbre, err := svc.ListerParArticle(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, arbre, 1)
	assert.Len(t, arbre[0].SousCommentaires, 1)
	require.Len(t, arbre[0].Reactions, 1)
	assert.Equal(t, 1, arbre[0].Reactions[0].Nombre)
}
