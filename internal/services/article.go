package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"luxew/internal/logger"
	"luxew/internal/models"
	"luxew/internal/repository"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type ArticleService struct {
	articles   repository.ArticleRepo
	categories repository.CategorieRepo
	reactions  repository.ReactionRepo
	stockage   StockageMedias
	policy     *bluemonday.Policy
}

func NewArticleService(
	articles repository.ArticleRepo,
	categories repository.CategorieRepo,
	reactions repository.ReactionRepo,
	stockage StockageMedias,
) *ArticleService {
	p := bluemonday.UGCPolicy()
	p.AllowElements("img")
	p.AllowAttrs("src", "alt").OnElements("img")
	return &ArticleService{
		articles:   articles,
		categories: categories,
		reactions:  reactions,
		stockage:   stockage,
		policy:     p,
	}
}

// PeutModifier : admin agit sur tout ; un éditeur uniquement sur ses
// propres articles ; mêmes règles pour la suppression.
func (s *ArticleService) PeutModifier(acteur models.Acteur, article *models.Article) bool {
	if acteur.EstAdmin() {
		return true
	}
	return acteur.ARole(models.RoleEditeur) && acteur.ID == article.AuteurID
}

// Lister : page paginée, enrichie : pseudo de l'auteur, catégories, médias,
// bilan de réactions et drapeaux peutModifier/peutSupprimer pour l'acteur.
func (s *ArticleService) Lister(ctx context.Context, acteur models.Acteur, page, limite int) ([]*models.Article, []models.Categorie, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Liste des articles (service)", zap.Int("page", page), zap.Int("limite", limite))

	if page < 1 || limite < 1 {
		return nil, nil, errors.New("paramètres de pagination invalides")
	}
	offset := (page - 1) * limite

	articles, err := s.articles.ObtenirPagine(ctx, limite, offset)
	if err != nil {
		log.Error("Erreur récupération des articles (repo)", zap.Error(err))
		return nil, nil, fmt.Errorf("erreur lors de la récupération des articles : %w", err)
	}

	for _, a := range articles {
		if err := s.enrichir(ctx, acteur, a); err != nil {
			return nil, nil, err
		}
	}

	categories, err := s.categories.ObtenirToutes(ctx)
	if err != nil {
		log.Error("Erreur récupération des catégories (repo)", zap.Error(err))
		return nil, nil, fmt.Errorf("erreur lors de la récupération des catégories : %w", err)
	}

	log.Debug("Articles listés", zap.Int("count", len(articles)))
	return articles, categories, nil
}

func (s *ArticleService) ListerParAuteur(ctx context.Context, acteur models.Acteur, auteurID, page, limite int) ([]*models.Article, error) {
	if page < 1 || limite < 1 {
		return nil, errors.New("paramètres de pagination invalides")
	}
	articles, err := s.articles.ObtenirParAuteur(ctx, auteurID, limite, (page-1)*limite)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la récupération des articles par auteur : %w", err)
	}
	for _, a := range articles {
		if err := s.enrichir(ctx, acteur, a); err != nil {
			return nil, err
		}
	}
	return articles, nil
}

// Obtenir : détail complet (médias, catégories, bilan, drapeaux).
func (s *ArticleService) Obtenir(ctx context.Context, acteur models.Acteur, id int) (*models.Article, error) {
	log := logger.WithCtx(ctx)

	a, err := s.articles.ObtenirParID(ctx, id)
	if err != nil {
		log.Warn("Article non trouvé (repo)", zap.Int("article_id", id), zap.Error(err))
		return nil, fmt.Errorf("article non trouvé : %w", ErrIntrouvable)
	}
	if err := s.enrichir(ctx, acteur, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Creer valide titre/contenu, vérifie TOUTES les catégories avant la moindre
// insertion (échec global sinon), insère article + liens en transaction puis
// téléverse les médias.
func (s *ArticleService) Creer(ctx context.Context, acteur models.Acteur, req models.CreerArticleRequest) (int, error) {
	log := logger.WithCtx(ctx)
	log.Info("Création d'article (service)",
		zap.String("titre", strings.TrimSpace(req.Titre)),
		zap.Int("categories_count", len(req.Categories)),
		zap.Int("medias_count", len(req.Medias)),
	)

	titre, contenu, err := s.validerChamps(req)
	if err != nil {
		log.Warn("Validation échouée", zap.Error(err))
		return 0, err
	}

	if err := s.verifierCategories(ctx, req.Categories); err != nil {
		log.Warn("Catégorie invalide", zap.Error(err))
		return 0, err
	}

	a := &models.Article{Titre: titre, Contenu: contenu, AuteurID: acteur.ID}
	id, err := s.articles.Creer(ctx, a, req.Categories)
	if err != nil {
		log.Error("Erreur création de l'article (repo)", zap.Error(err))
		return 0, fmt.Errorf("échec de la création de l'article : %w", err)
	}

	if err := s.televerserMedias(ctx, id, req.Medias); err != nil {
		return 0, err
	}

	log.Info("Article créé", zap.Int("article_id", id))
	return id, nil
}

// Modifier : mêmes validations que la création ; remplace l'ensemble des
// catégories et, si de nouveaux médias sont fournis, remplace les médias.
func (s *ArticleService) Modifier(ctx context.Context, acteur models.Acteur, id int, req models.CreerArticleRequest) error {
	log := logger.WithCtx(ctx)
	log.Info("Modification d'article (service)", zap.Int("article_id", id))

	a, err := s.articles.ObtenirParID(ctx, id)
	if err != nil {
		log.Warn("Article à modifier non trouvé (repo)", zap.Int("article_id", id), zap.Error(err))
		return fmt.Errorf("article non trouvé : %w", ErrIntrouvable)
	}
	if !s.PeutModifier(acteur, a) {
		log.Warn("Modification refusée : pas propriétaire",
			zap.Int("article_id", id), zap.Int("acteur_id", acteur.ID))
		return fmt.Errorf("vous ne pouvez modifier que vos propres articles : %w", ErrInterdit)
	}

	titre, contenu, err := s.validerChamps(req)
	if err != nil {
		return err
	}
	if err := s.verifierCategories(ctx, req.Categories); err != nil {
		return err
	}

	a.Titre = titre
	a.Contenu = contenu
	if err := s.articles.Modifier(ctx, a, req.Categories); err != nil {
		log.Error("Erreur modification de l'article (repo)", zap.Int("article_id", id), zap.Error(err))
		return fmt.Errorf("échec de la modification de l'article : %w", err)
	}

	if len(req.Medias) > 0 {
		if err := s.articles.SupprimerMediasArticle(ctx, id); err != nil {
			log.Error("Erreur remplacement des médias (repo)", zap.Int("article_id", id), zap.Error(err))
			return fmt.Errorf("échec du remplacement des médias : %w", err)
		}
		if err := s.televerserMedias(ctx, id, req.Medias); err != nil {
			return err
		}
	}

	log.Info("Article modifié", zap.Int("article_id", id))
	return nil
}

// Supprimer : cascade transactionnelle complète (médias, catégories,
// commentaires, réactions, article).
func (s *ArticleService) Supprimer(ctx context.Context, acteur models.Acteur, id int) error {
	log := logger.WithCtx(ctx)
	log.Info("Suppression d'article (service)", zap.Int("article_id", id))

	a, err := s.articles.ObtenirParID(ctx, id)
	if err != nil {
		log.Warn("Article à supprimer non trouvé (repo)", zap.Int("article_id", id), zap.Error(err))
		return fmt.Errorf("article non trouvé : %w", ErrIntrouvable)
	}
	if !s.PeutModifier(acteur, a) {
		log.Warn("Suppression refusée : pas propriétaire",
			zap.Int("article_id", id), zap.Int("acteur_id", acteur.ID))
		return fmt.Errorf("vous ne pouvez supprimer que vos propres articles : %w", ErrInterdit)
	}

	if err := s.articles.Supprimer(ctx, id); err != nil {
		log.Error("Erreur suppression de l'article (repo)", zap.Int("article_id", id), zap.Error(err))
		return fmt.Errorf("échec de la suppression de l'article : %w", err)
	}

	log.Info("Article supprimé", zap.Int("article_id", id))
	return nil
}

// DeterminerTypeMedia classe un type MIME déclaré en image/audio/video ;
// les types inconnus retombent sur image.
func DeterminerTypeMedia(typeMime string) string {
	switch {
	case strings.Contains(typeMime, "audio"):
		return models.MediaAudio
	case strings.Contains(typeMime, "video"):
		return models.MediaVideo
	default:
		return models.MediaImage
	}
}

func (s *ArticleService) validerChamps(req models.CreerArticleRequest) (titre, contenu string, err error) {
	titre = strings.TrimSpace(req.Titre)
	contenu = strings.TrimSpace(req.Contenu)
	if titre == "" || contenu == "" {
		return "", "", errors.New("champs titre ou contenu manquants")
	}
	return titre, s.policy.Sanitize(contenu), nil
}

func (s *ArticleService) verifierCategories(ctx context.Context, categorieIDs []int) error {
	for _, categorieID := range categorieIDs {
		if categorieID <= 0 {
			return errors.New("id de catégorie invalide")
		}
		existe, err := s.categories.Existe(ctx, categorieID)
		if err != nil {
			return fmt.Errorf("erreur lors de la vérification de la catégorie : %w", err)
		}
		if !existe {
			return errors.New("id de catégorie invalide ou catégorie non trouvée")
		}
	}
	return nil
}

func (s *ArticleService) televerserMedias(ctx context.Context, articleID int, fichiers []models.FichierMedia) error {
	log := logger.WithCtx(ctx)
	for i, f := range fichiers {
		publicID := fmt.Sprintf("media_%d_%d_%d", articleID, time.Now().Unix(), i)
		url, err := s.stockage.Televerser(ctx, f, publicID)
		if err != nil {
			log.Error("Erreur upload du média", zap.String("fichier", f.Nom), zap.Error(err))
			return fmt.Errorf("échec de l'upload du média : %w", err)
		}
		m := &models.Media{
			ArticleID:   articleID,
			Type:        DeterminerTypeMedia(f.TypeMime),
			URL:         url,
			Description: f.Nom,
		}
		if err := s.articles.AjouterMedia(ctx, m); err != nil {
			log.Error("Erreur enregistrement du média (repo)", zap.String("fichier", f.Nom), zap.Error(err))
			return fmt.Errorf("échec de l'enregistrement du média : %w", err)
		}
	}
	return nil
}

// enrichir attache pseudo auteur (déjà joint), catégories, médias, bilan de
// réactions et drapeaux de possession.
func (s *ArticleService) enrichir(ctx context.Context, acteur models.Acteur, a *models.Article) error {
	categories, err := s.articles.ObtenirCategoriesArticle(ctx, a.ID)
	if err != nil {
		return fmt.Errorf("erreur lors de la récupération des catégories : %w", err)
	}
	medias, err := s.articles.ObtenirMediasArticle(ctx, a.ID)
	if err != nil {
		return fmt.Errorf("erreur lors de la récupération des médias : %w", err)
	}
	bilan, err := s.reactions.BilanParArticle(ctx, a.ID)
	if err != nil {
		return fmt.Errorf("erreur lors de la récupération des réactions : %w", err)
	}

	a.Categories = categories
	a.Medias = medias
	a.Reactions = bilan
	peut := s.PeutModifier(acteur, a)
	a.PeutModifier = peut
	a.PeutSupprimer = peut
	return nil
}
