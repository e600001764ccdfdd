package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"luxew/internal/logger"
	"luxew/internal/models"
	"luxew/internal/repository"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type CommentaireService struct {
	commentaires repository.CommentaireRepo
	articles     repository.ArticleRepo
	reactions    repository.ReactionRepo
	policy       *bluemonday.Policy
}

func NewCommentaireService(commentaires repository.CommentaireRepo, articles repository.ArticleRepo, reactions repository.ReactionRepo) *CommentaireService {
	return &CommentaireService{
		commentaires: commentaires,
		articles:     articles,
		reactions:    reactions,
		policy:       bluemonday.StrictPolicy(),
	}
}

// ListerParArticle renvoie l'arbre des commentaires d'un article : les
// racines dans l'ordre chronologique, chaque nœud portant son pseudo, son
// bilan de réactions et ses sous-commentaires.
func (s *CommentaireService) ListerParArticle(ctx context.Context, articleID int) ([]*models.Commentaire, error) {
	log := logger.WithCtx(ctx)

	existe, err := s.articles.Existe(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la vérification de l'article : %w", err)
	}
	if !existe {
		return nil, fmt.Errorf("article non trouvé : %w", ErrIntrouvable)
	}

	plats, err := s.commentaires.ObtenirParArticle(ctx, articleID)
	if err != nil {
		log.Error("Erreur récupération des commentaires (repo)", zap.Int("article_id", articleID), zap.Error(err))
		return nil, fmt.Errorf("erreur lors de la récupération des commentaires : %w", err)
	}

	for _, c := range plats {
		bilan, err := s.reactions.BilanParCommentaire(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("erreur lors de la récupération des réactions : %w", err)
		}
		c.Reactions = bilan
	}

	return ConstruireArbre(plats), nil
}

// ConstruireArbre transforme la liste plate (triée par dateCreation ASC) en
// forêt : l'ordre chronologique est préservé à chaque niveau. Un commentaire
// dont le parent manque est promu racine plutôt que perdu.
func ConstruireArbre(plats []*models.Commentaire) []*models.Commentaire {
	parID := make(map[int]*models.Commentaire, len(plats))
	for _, c := range plats {
		c.SousCommentaires = []*models.Commentaire{}
		parID[c.ID] = c
	}

	racines := []*models.Commentaire{}
	for _, c := range plats {
		if c.ParentID != nil {
			if parent, ok := parID[*c.ParentID]; ok {
				parent.SousCommentaires = append(parent.SousCommentaires, c)
				continue
			}
		}
		racines = append(racines, c)
	}
	return racines
}

// Creer : tout utilisateur authentifié peut commenter ; un parent doit
// appartenir au même article.
func (s *CommentaireService) Creer(ctx context.Context, acteur models.Acteur, req models.CreerCommentaireRequest) (int, error) {
	log := logger.WithCtx(ctx)
	log.Info("Création de commentaire (service)",
		zap.Int("article_id", req.ArticleID), zap.Int("acteur_id", acteur.ID))

	contenu := strings.TrimSpace(req.Contenu)
	if contenu == "" {
		return 0, errors.New("le contenu du commentaire est obligatoire")
	}
	contenu = s.policy.Sanitize(contenu)

	existe, err := s.articles.Existe(ctx, req.ArticleID)
	if err != nil {
		return 0, fmt.Errorf("erreur lors de la vérification de l'article : %w", err)
	}
	if !existe {
		return 0, fmt.Errorf("article non trouvé : %w", ErrIntrouvable)
	}

	if req.ParentID != nil {
		surArticle, err := s.commentaires.ExisteSurArticle(ctx, *req.ParentID, req.ArticleID)
		if err != nil {
			return 0, fmt.Errorf("erreur lors de la vérification du commentaire parent : %w", err)
		}
		if !surArticle {
			return 0, errors.New("le commentaire parent n'appartient pas à cet article")
		}
	}

	c := &models.Commentaire{
		Contenu:       contenu,
		UtilisateurID: acteur.ID,
		ArticleID:     req.ArticleID,
		ParentID:      req.ParentID,
	}
	id, err := s.commentaires.Creer(ctx, c)
	if err != nil {
		log.Error("Erreur création du commentaire (repo)", zap.Error(err))
		return 0, fmt.Errorf("échec de la création du commentaire : %w", err)
	}

	log.Info("Commentaire créé", zap.Int("commentaire_id", id))
	return id, nil
}

// Modifier : réservé à l'auteur du commentaire, admin inclus seulement s'il
// en est le propriétaire.
func (s *CommentaireService) Modifier(ctx context.Context, acteur models.Acteur, id int, contenu string) error {
	log := logger.WithCtx(ctx)

	c, err := s.commentaires.ObtenirParID(ctx, id)
	if err != nil {
		return fmt.Errorf("commentaire non trouvé : %w", ErrIntrouvable)
	}
	if c.UtilisateurID != acteur.ID {
		log.Warn("Modification de commentaire refusée",
			zap.Int("commentaire_id", id), zap.Int("acteur_id", acteur.ID))
		return fmt.Errorf("vous ne pouvez modifier que vos propres commentaires : %w", ErrInterdit)
	}

	contenu = strings.TrimSpace(contenu)
	if contenu == "" {
		return errors.New("le contenu du commentaire est obligatoire")
	}

	if err := s.commentaires.Modifier(ctx, id, s.policy.Sanitize(contenu)); err != nil {
		log.Error("Erreur modification du commentaire (repo)", zap.Int("commentaire_id", id), zap.Error(err))
		return fmt.Errorf("échec de la modification du commentaire : %w", err)
	}

	log.Info("Commentaire modifié", zap.Int("commentaire_id", id))
	return nil
}

// Supprimer : propriétaire ou admin ; les réponses et réactions suivent en
// cascade.
func (s *CommentaireService) Supprimer(ctx context.Context, acteur models.Acteur, id int) error {
	log := logger.WithCtx(ctx)

	c, err := s.commentaires.ObtenirParID(ctx, id)
	if err != nil {
		return fmt.Errorf("commentaire non trouvé : %w", ErrIntrouvable)
	}
	if !acteur.EstProprietaire(c.UtilisateurID) {
		log.Warn("Suppression de commentaire refusée",
			zap.Int("commentaire_id", id), zap.Int("acteur_id", acteur.ID))
		return fmt.Errorf("vous ne pouvez supprimer que vos propres commentaires : %w", ErrInterdit)
	}

	if err := s.commentaires.Supprimer(ctx, id); err != nil {
		log.Error("Erreur suppression du commentaire (repo)", zap.Int("commentaire_id", id), zap.Error(err))
		return fmt.Errorf("échec de la suppression du commentaire : %w", err)
	}

	log.Info("Commentaire supprimé", zap.Int("commentaire_id", id))
	return nil
}
