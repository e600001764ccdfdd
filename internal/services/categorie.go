package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"luxew/internal/logger"
	"luxew/internal/models"
	"luxew/internal/repository"

	"go.uber.org/zap"
)

type CategorieService struct {
	categories repository.CategorieRepo
	articles   repository.ArticleRepo
	reactions  repository.ReactionRepo
}

func NewCategorieService(categories repository.CategorieRepo, articles repository.ArticleRepo, reactions repository.ReactionRepo) *CategorieService {
	return &CategorieService{categories: categories, articles: articles, reactions: reactions}
}

func (s *CategorieService) Lister(ctx context.Context) ([]models.Categorie, error) {
	categories, err := s.categories.ObtenirToutes(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("Erreur récupération des catégories (repo)", zap.Error(err))
		return nil, fmt.Errorf("erreur lors de la récupération des catégories : %w", err)
	}
	return categories, nil
}

func (s *CategorieService) Obtenir(ctx context.Context, id int) (*models.Categorie, error) {
	c, err := s.categories.ObtenirParID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catégorie non trouvée : %w", ErrIntrouvable)
	}
	return c, nil
}

// Creer : libellé d'au moins 2 caractères, unique sans tenir compte de la
// casse.
func (s *CategorieService) Creer(ctx context.Context, libelle string) (int, error) {
	log := logger.WithCtx(ctx)

	libelle = strings.TrimSpace(libelle)
	if err := s.validerLibelle(ctx, libelle, 0); err != nil {
		log.Warn("Validation de catégorie échouée", zap.String("libelle", libelle), zap.Error(err))
		return 0, err
	}

	id, err := s.categories.Creer(ctx, libelle)
	if err != nil {
		log.Error("Erreur création de la catégorie (repo)", zap.Error(err))
		return 0, fmt.Errorf("échec de la création de la catégorie : %w", err)
	}

	log.Info("Catégorie créée", zap.Int("categorie_id", id), zap.String("libelle", libelle))
	return id, nil
}

// Modifier : l'unicité du libellé exclut la catégorie en cours d'édition.
func (s *CategorieService) Modifier(ctx context.Context, id int, libelle string) error {
	log := logger.WithCtx(ctx)

	if _, err := s.categories.ObtenirParID(ctx, id); err != nil {
		return fmt.Errorf("catégorie non trouvée : %w", ErrIntrouvable)
	}

	libelle = strings.TrimSpace(libelle)
	if err := s.validerLibelle(ctx, libelle, id); err != nil {
		log.Warn("Validation de catégorie échouée", zap.Int("categorie_id", id), zap.Error(err))
		return err
	}

	if err := s.categories.Modifier(ctx, id, libelle); err != nil {
		log.Error("Erreur modification de la catégorie (repo)", zap.Int("categorie_id", id), zap.Error(err))
		return fmt.Errorf("échec de la modification de la catégorie : %w", err)
	}

	log.Info("Catégorie modifiée", zap.Int("categorie_id", id), zap.String("libelle", libelle))
	return nil
}

// Supprimer retire d'abord les liens article-catégorie puis la ligne ; les
// articles eux-mêmes survivent.
func (s *CategorieService) Supprimer(ctx context.Context, id int) error {
	log := logger.WithCtx(ctx)

	if _, err := s.categories.ObtenirParID(ctx, id); err != nil {
		return fmt.Errorf("catégorie non trouvée : %w", ErrIntrouvable)
	}

	if err := s.categories.Supprimer(ctx, id); err != nil {
		log.Error("Erreur suppression de la catégorie (repo)", zap.Int("categorie_id", id), zap.Error(err))
		return fmt.Errorf("échec de la suppression de la catégorie : %w", err)
	}

	log.Info("Catégorie supprimée", zap.Int("categorie_id", id))
	return nil
}

// ListerArticles : articles d'une catégorie, paginés, avec leurs médias et
// leur bilan de réactions.
func (s *CategorieService) ListerArticles(ctx context.Context, acteur models.Acteur, categorieID, page, limite int) (*models.Categorie, []*models.Article, error) {
	if page < 1 || limite < 1 {
		return nil, nil, errors.New("paramètres de pagination invalides")
	}

	c, err := s.categories.ObtenirParID(ctx, categorieID)
	if err != nil {
		return nil, nil, fmt.Errorf("catégorie non trouvée : %w", ErrIntrouvable)
	}

	articles, err := s.categories.ObtenirArticlesParCategorie(ctx, categorieID, limite, (page-1)*limite)
	if err != nil {
		logger.WithCtx(ctx).Error("Erreur récupération des articles de la catégorie (repo)",
			zap.Int("categorie_id", categorieID), zap.Error(err))
		return nil, nil, fmt.Errorf("erreur lors de la récupération des articles : %w", err)
	}

	for _, a := range articles {
		medias, err := s.articles.ObtenirMediasArticle(ctx, a.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("erreur lors de la récupération des médias : %w", err)
		}
		bilan, err := s.reactions.BilanParArticle(ctx, a.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("erreur lors de la récupération des réactions : %w", err)
		}
		a.Medias = medias
		a.Reactions = bilan
		peut := acteur.EstAdmin() || (acteur.ARole(models.RoleEditeur) && acteur.ID == a.AuteurID)
		a.PeutModifier = peut
		a.PeutSupprimer = peut
	}

	return c, articles, nil
}

func (s *CategorieService) validerLibelle(ctx context.Context, libelle string, excludeID int) error {
	if utf8.RuneCountInString(libelle) < 2 {
		return errors.New("le libellé doit contenir au moins 2 caractères")
	}
	existe, err := s.categories.LibelleExiste(ctx, libelle, excludeID)
	if err != nil {
		return fmt.Errorf("erreur lors de la vérification du libellé : %w", err)
	}
	if existe {
		return errors.New("une catégorie avec ce libellé existe déjà")
	}
	return nil
}
