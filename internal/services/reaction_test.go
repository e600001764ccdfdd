package services

import (
	"context"
	"testing"

	"luxew/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reactionFixture(t *testing.T) (*ReactionService, *mockReactionRepo, *mockArticleRepo, *mockCommentaireRepo) {
	t.Helper()
	reactions := newMockReactionRepo()
	articles := newMockArticleRepo()
	commentaires := newMockCommentaireRepo()

	_, err := articles.Creer(context.Background(), &models.Article{Titre: "t", Contenu: "c", AuteurID: 1}, nil)
	require.NoError(t, err)

	return NewReactionService(reactions, articles, commentaires), reactions, articles, commentaires
}

// Séquence complète de la bascule : ajout, changement de type, retrait.
func TestToggle_Cycle(t *testing.T) {
	svc, _, _, _ := reactionFixture(t)
	acteur := models.Acteur{ID: 7, Roles: []string{models.RoleVisiteur}}
	req := models.ToggleReactionRequest{Type: models.ReactionLike, ArticleID: ptrInt(1)}

	action, bilan, err := svc.Toggle(context.Background(), acteur, req)
	require.NoError(t, err)
	assert.Equal(t, models.ActionAjoutee, action)
	require.Len(t, bilan, 1)
	assert.Equal(t, models.ReactionLike, bilan[0].Type)
	assert.Equal(t, 1, bilan[0].Nombre)

	// Type opposé : la réaction existante change de type, pas de doublon.
	req.Type = models.ReactionUnlike
	action, bilan, err = svc.Toggle(context.Background(), acteur, req)
	require.NoError(t, err)
	assert.Equal(t, models.ActionModifiee, action)
	require.Len(t, bilan, 1)
	assert.Equal(t, models.ReactionUnlike, bilan[0].Type)

	// Même type à nouveau : retrait.
	action, bilan, err = svc.Toggle(context.Background(), acteur, req)
	require.NoError(t, err)
	assert.Equal(t, models.ActionSupprimee, action)
	assert.Empty(t, bilan)
}

func TestToggle_CibleExclusive(t *testing.T) {
	svc, _, _, _ := reactionFixture(t)
	acteur := models.Acteur{ID: 7}

	// Ni article ni commentaire.
	_, _, err := svc.Toggle(context.Background(), acteur, models.ToggleReactionRequest{Type: models.ReactionLike})
	assert.Error(t, err)

	// Les deux à la fois.
	_, _, err = svc.Toggle(context.Background(), acteur, models.ToggleReactionRequest{
		Type: models.ReactionLike, ArticleID: ptrInt(1), CommentaireID: ptrInt(1),
	})
	assert.Error(t, err)
}

func TestToggle_TypeInvalide(t *testing.T) {
	svc, _, _, _ := reactionFixture(t)

	_, _, err := svc.Toggle(context.Background(), models.Acteur{ID: 7}, models.ToggleReactionRequest{
		Type: "adore", ArticleID: ptrInt(1),
	})
	assert.Error(t, err)
}

func TestToggle_CibleIntrouvable(t *testing.T) {
	svc, _, _, _ := reactionFixture(t)

	_, _, err := svc.Toggle(context.Background(), models.Acteur{ID: 7}, models.ToggleReactionRequest{
		Type: models.ReactionLike, ArticleID: ptrInt(999),
	})
	assert.ErrorIs(t, err, ErrIntrouvable)
}

func TestToggle_SurCommentaire(t *testing.T) {
	svc, reactions, _, commentaires := reactionFixture(t)
	id, err := commentaires.Creer(context.Background(), &models.Commentaire{
		Contenu: "bonjour", UtilisateurID: 1, ArticleID: 1,
	})
	require.NoError(t, err)

	action, bilan, err := svc.Toggle(context.Background(), models.Acteur{ID: 7}, models.ToggleReactionRequest{
		Type: models.ReactionUnlike, CommentaireID: ptrInt(id),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ActionAjoutee, action)
	require.Len(t, bilan, 1)
	assert.Equal(t, 1, len(reactions.reactions))
}

func TestSupprimerReaction_Proprietaire(t *testing.T) {
	svc, reactions, _, _ := reactionFixture(t)
	proprietaire := models.Acteur{ID: 7}
	autre := models.Acteur{ID: 8}
	admin := models.Acteur{ID: 9, Roles: []string{models.RoleAdmin}}

	_, _, err := svc.Toggle(context.Background(), proprietaire, models.ToggleReactionRequest{
		Type: models.ReactionLike, ArticleID: ptrInt(1),
	})
	require.NoError(t, err)

	var id int
	for rid := range reactions.reactions {
		id = rid
	}

	// Un autre utilisateur ne peut pas la retirer.
	assert.ErrorIs(t, svc.Supprimer(context.Background(), autre, id), ErrInterdit)
	// L'admin, si.
	assert.NoError(t, svc.Supprimer(context.Background(), admin, id))
}

func TestBilanArticle_Public(t *testing.T) {
	svc, _, _, _ := reactionFixture(t)

	_, _, err := svc.Toggle(context.Background(), models.Acteur{ID: 7}, models.ToggleReactionRequest{
		Type: models.ReactionLike, ArticleID: ptrInt(1),
	})
	require.NoError(t, err)
	_, _, err = svc.Toggle(context.Background(), models.Acteur{ID: 8}, models.ToggleReactionRequest{
		Type: models.ReactionUnlike, ArticleID: ptrInt(1),
	})
	require.NoError(t, err)

	bilan, err := svc.BilanArticle(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, bilan, 2)

	_, err = svc.BilanArticle(context.Background(), 42)
	assert.ErrorIs(t, err, ErrIntrouvable)
}
