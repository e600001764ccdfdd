package services

import (
	"context"
	"errors"
	"fmt"

	"luxew/internal/logger"
	"luxew/internal/models"
	"luxew/internal/repository"

	"go.uber.org/zap"
)

type ReactionService struct {
	reactions    repository.ReactionRepo
	articles     repository.ArticleRepo
	commentaires repository.CommentaireRepo
}

func NewReactionService(reactions repository.ReactionRepo, articles repository.ArticleRepo, commentaires repository.CommentaireRepo) *ReactionService {
	return &ReactionService{reactions: reactions, articles: articles, commentaires: commentaires}
}

// Toggle applique la machine à états des réactions pour l'acteur sur UNE
// cible (article ou commentaire, exclusif) :
//   - aucune réaction existante  -> insertion, action "ajoutee"
//   - même type déjà posé        -> suppression, action "supprimee"
//   - type opposé déjà posé      -> bascule, action "modifiee"
//
// Renvoie l'action effectuée puis le bilan à jour de la cible.
func (s *ReactionService) Toggle(ctx context.Context, acteur models.Acteur, req models.ToggleReactionRequest) (string, []models.BilanReaction, error) {
	log := logger.WithCtx(ctx)

	if req.Type != models.ReactionLike && req.Type != models.ReactionUnlike {
		return "", nil, errors.New("type de réaction invalide (like ou unlike attendu)")
	}
	if (req.ArticleID == nil) == (req.CommentaireID == nil) {
		return "", nil, errors.New("une réaction cible soit un article soit un commentaire")
	}

	if err := s.verifierCible(ctx, req.ArticleID, req.CommentaireID); err != nil {
		return "", nil, err
	}

	existante, err := s.reactions.ObtenirPourUtilisateur(ctx, acteur.ID, req.ArticleID, req.CommentaireID)
	if err != nil {
		log.Error("Erreur recherche de la réaction existante (repo)", zap.Error(err))
		return "", nil, fmt.Errorf("erreur lors de la recherche de la réaction : %w", err)
	}

	var action string
	switch {
	case existante == nil:
		r := &models.Reaction{
			UtilisateurID: acteur.ID,
			ArticleID:     req.ArticleID,
			CommentaireID: req.CommentaireID,
			Type:          req.Type,
		}
		if _, err := s.reactions.Creer(ctx, r); err != nil {
			log.Error("Erreur création de la réaction (repo)", zap.Error(err))
			return "", nil, fmt.Errorf("échec de l'ajout de la réaction : %w", err)
		}
		action = models.ActionAjoutee

	case existante.Type == req.Type:
		if err := s.reactions.Supprimer(ctx, existante.ID); err != nil {
			log.Error("Erreur suppression de la réaction (repo)", zap.Error(err))
			return "", nil, fmt.Errorf("échec du retrait de la réaction : %w", err)
		}
		action = models.ActionSupprimee

	default:
		if err := s.reactions.ModifierType(ctx, existante.ID, req.Type); err != nil {
			log.Error("Erreur bascule de la réaction (repo)", zap.Error(err))
			return "", nil, fmt.Errorf("échec de la bascule de la réaction : %w", err)
		}
		action = models.ActionModifiee
	}

	bilan, err := s.bilanCible(ctx, req.ArticleID, req.CommentaireID)
	if err != nil {
		return "", nil, err
	}

	log.Info("Réaction basculée",
		zap.String("action", action),
		zap.String("type", req.Type),
		zap.Int("acteur_id", acteur.ID),
	)
	return action, bilan, nil
}

// ReactionUtilisateur renvoie la réaction courante de l'acteur sur la cible,
// nil s'il n'en a pas.
func (s *ReactionService) ReactionUtilisateur(ctx context.Context, acteur models.Acteur, articleID, commentaireID *int) (*models.Reaction, error) {
	if (articleID == nil) == (commentaireID == nil) {
		return nil, errors.New("une réaction cible soit un article soit un commentaire")
	}
	r, err := s.reactions.ObtenirPourUtilisateur(ctx, acteur.ID, articleID, commentaireID)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche de la réaction : %w", err)
	}
	return r, nil
}

// BilanArticle : comptes agrégés par type pour un article, accès public.
func (s *ReactionService) BilanArticle(ctx context.Context, articleID int) ([]models.BilanReaction, error) {
	if err := s.verifierCible(ctx, &articleID, nil); err != nil {
		return nil, err
	}
	return s.bilanCible(ctx, &articleID, nil)
}

// BilanCommentaire : comptes agrégés par type pour un commentaire.
func (s *ReactionService) BilanCommentaire(ctx context.Context, commentaireID int) ([]models.BilanReaction, error) {
	if err := s.verifierCible(ctx, nil, &commentaireID); err != nil {
		return nil, err
	}
	return s.bilanCible(ctx, nil, &commentaireID)
}

// Supprimer : propriétaire de la réaction ou admin.
func (s *ReactionService) Supprimer(ctx context.Context, acteur models.Acteur, id int) error {
	log := logger.WithCtx(ctx)

	r, err := s.reactions.ObtenirParID(ctx, id)
	if err != nil {
		return fmt.Errorf("réaction non trouvée : %w", ErrIntrouvable)
	}
	if !acteur.EstProprietaire(r.UtilisateurID) {
		log.Warn("Suppression de réaction refusée",
			zap.Int("reaction_id", id), zap.Int("acteur_id", acteur.ID))
		return fmt.Errorf("vous ne pouvez supprimer que vos propres réactions : %w", ErrInterdit)
	}

	if err := s.reactions.Supprimer(ctx, id); err != nil {
		log.Error("Erreur suppression de la réaction (repo)", zap.Int("reaction_id", id), zap.Error(err))
		return fmt.Errorf("échec de la suppression de la réaction : %w", err)
	}
	return nil
}

func (s *ReactionService) verifierCible(ctx context.Context, articleID, commentaireID *int) error {
	if articleID != nil {
		existe, err := s.articles.Existe(ctx, *articleID)
		if err != nil {
			return fmt.Errorf("erreur lors de la vérification de l'article : %w", err)
		}
		if !existe {
			return fmt.Errorf("article non trouvé : %w", ErrIntrouvable)
		}
		return nil
	}
	if _, err := s.commentaires.ObtenirParID(ctx, *commentaireID); err != nil {
		return fmt.Errorf("commentaire non trouvé : %w", ErrIntrouvable)
	}
	return nil
}

func (s *ReactionService) bilanCible(ctx context.Context, articleID, commentaireID *int) ([]models.BilanReaction, error) {
	var (
		bilan []models.BilanReaction
		err   error
	)
	if articleID != nil {
		bilan, err = s.reactions.BilanParArticle(ctx, *articleID)
	} else {
		bilan, err = s.reactions.BilanParCommentaire(ctx, *commentaireID)
	}
	if err != nil {
		return nil, fmt.Errorf("erreur lors du calcul du bilan de réactions : %w", err)
	}
	return bilan, nil
}
