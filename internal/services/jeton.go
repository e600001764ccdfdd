package services

import (
	"context"
	"errors"
	"fmt"

	"luxew/internal/logger"
	"luxew/internal/models"
	"luxew/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JetonService gère les jetons API longue durée utilisés par l'interface
// d'administration SOAP.
type JetonService struct {
	jetons       repository.JetonRepo
	utilisateurs repository.UtilisateurRepo
}

func NewJetonService(jetons repository.JetonRepo, utilisateurs repository.UtilisateurRepo) *JetonService {
	return &JetonService{jetons: jetons, utilisateurs: utilisateurs}
}

// Creer émet un jeton opaque (UUID) pour un utilisateur existant, valable
// entre 1 et 365 jours.
func (s *JetonService) Creer(ctx context.Context, req models.CreerJetonRequest) (*models.Jeton, error) {
	log := logger.WithCtx(ctx)

	if req.DureeValidite < 1 || req.DureeValidite > 365 {
		return nil, errors.New("la durée de validité doit être comprise entre 1 et 365 jours")
	}
	if _, err := s.utilisateurs.ObtenirParID(ctx, req.UtilisateurID); err != nil {
		return nil, fmt.Errorf("utilisateur non trouvé : %w", ErrIntrouvable)
	}

	j, err := s.jetons.Creer(ctx, req.UtilisateurID, uuid.NewString(), req.DureeValidite)
	if err != nil {
		log.Error("Erreur création du jeton (repo)", zap.Error(err))
		return nil, fmt.Errorf("échec de la création du jeton : %w", err)
	}

	log.Info("Jeton API créé",
		zap.Int("utilisateur_id", req.UtilisateurID),
		zap.Int("duree_jours", req.DureeValidite),
	)
	return j, nil
}

func (s *JetonService) Lister(ctx context.Context) ([]*models.Jeton, error) {
	jetons, err := s.jetons.ObtenirTous(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("Erreur récupération des jetons (repo)", zap.Error(err))
		return nil, fmt.Errorf("erreur lors de la récupération des jetons : %w", err)
	}
	return jetons, nil
}

func (s *JetonService) Supprimer(ctx context.Context, jeton string) error {
	log := logger.WithCtx(ctx)

	if jeton == "" {
		return errors.New("le jeton est obligatoire")
	}
	if err := s.jetons.Supprimer(ctx, jeton); err != nil {
		if errors.Is(err, repository.ErrJetonIntrouvable) {
			return fmt.Errorf("jeton non trouvé : %w", ErrIntrouvable)
		}
		log.Error("Erreur suppression du jeton (repo)", zap.Error(err))
		return fmt.Errorf("échec de la suppression du jeton : %w", err)
	}

	log.Info("Jeton API supprimé")
	return nil
}

// Authentifier résout un jeton opaque en acteur (id + rôles) ; utilisé par
// la couche SOAP.
func (s *JetonService) Authentifier(ctx context.Context, jeton string) (*models.Acteur, error) {
	if jeton == "" {
		return nil, fmt.Errorf("jeton manquant : %w", ErrNonAutorise)
	}
	utilisateurID, err := s.jetons.ObtenirUtilisateurParJeton(ctx, jeton)
	if err != nil {
		if errors.Is(err, repository.ErrJetonIntrouvable) {
			return nil, fmt.Errorf("jeton invalide ou expiré : %w", ErrNonAutorise)
		}
		return nil, fmt.Errorf("erreur lors de la validation du jeton : %w", err)
	}
	roles, err := s.utilisateurs.ObtenirRoles(ctx, utilisateurID)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la récupération des rôles : %w", err)
	}
	return &models.Acteur{ID: utilisateurID, Roles: roles}, nil
}
