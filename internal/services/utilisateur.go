package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"luxew/internal/logger"
	"luxew/internal/models"
	"luxew/internal/repository"
	"luxew/internal/utils"

	"go.uber.org/zap"
)

// UtilisateurService porte les opérations d'administration des comptes :
// contrairement à l'inscription publique, un admin peut attribuer n'importe
// quel rôle connu, admin compris.
type UtilisateurService struct {
	repo repository.UtilisateurRepo
}

func NewUtilisateurService(repo repository.UtilisateurRepo) *UtilisateurService {
	return &UtilisateurService{repo: repo}
}

func (s *UtilisateurService) Lister(ctx context.Context) ([]*models.Utilisateur, error) {
	utilisateurs, err := s.repo.ObtenirTous(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("Erreur récupération des utilisateurs (repo)", zap.Error(err))
		return nil, fmt.Errorf("erreur lors de la récupération des utilisateurs : %w", err)
	}
	return utilisateurs, nil
}

func (s *UtilisateurService) Obtenir(ctx context.Context, id int) (*models.Utilisateur, error) {
	u, err := s.repo.ObtenirParID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("utilisateur non trouvé : %w", ErrIntrouvable)
	}
	return u, nil
}

func (s *UtilisateurService) ListerRoles(ctx context.Context) ([]models.Role, error) {
	roles, err := s.repo.ObtenirTousRoles(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("Erreur récupération des rôles (repo)", zap.Error(err))
		return nil, fmt.Errorf("erreur lors de la récupération des rôles : %w", err)
	}
	return roles, nil
}

// Creer : création par un admin, tout rôle connu accepté.
func (s *UtilisateurService) Creer(ctx context.Context, req models.CreerUtilisateurRequest) (*models.Utilisateur, error) {
	log := logger.WithCtx(ctx)

	pseudo := strings.TrimSpace(req.Pseudo)
	email := strings.TrimSpace(req.Email)
	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = models.RoleVisiteur
	}

	if err := s.validerIdentite(pseudo, email); err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(req.MotDePasse) < 6 {
		return nil, errors.New("le mot de passe doit contenir au moins 6 caractères")
	}
	if existe, err := s.repo.RoleExiste(ctx, role); err != nil || !existe {
		if err != nil {
			log.Error("Erreur vérification du rôle", zap.Error(err))
		}
		return nil, errors.New("rôle inconnu")
	}

	if existe, err := s.repo.PseudoExiste(ctx, pseudo); existe || err != nil {
		if err != nil {
			log.Error("Erreur vérification du pseudo", zap.Error(err))
		}
		return nil, errors.New("pseudo déjà utilisé")
	}
	if existe, err := s.repo.EmailExiste(ctx, email); existe || err != nil {
		if err != nil {
			log.Error("Erreur vérification de l'email", zap.Error(err))
		}
		return nil, errors.New("email déjà utilisé")
	}

	hash, err := utils.HacherMotDePasse(req.MotDePasse)
	if err != nil {
		log.Error("Erreur hachage du mot de passe", zap.Error(err))
		return nil, err
	}

	u := &models.Utilisateur{Pseudo: pseudo, Email: email, MotDePasse: hash}
	if err := s.repo.Creer(ctx, u, role); err != nil {
		log.Error("Erreur création de l'utilisateur (repo)", zap.Error(err))
		return nil, fmt.Errorf("échec de la création de l'utilisateur : %w", err)
	}

	log.Info("Utilisateur créé par un administrateur",
		zap.Int("utilisateur_id", u.ID), zap.String("role", role))
	return u, nil
}

// Modifier change pseudo, email et rôle ; l'unicité exclut l'utilisateur
// en cours d'édition.
func (s *UtilisateurService) Modifier(ctx context.Context, req models.ModifierUtilisateurRequest) error {
	log := logger.WithCtx(ctx)

	u, err := s.repo.ObtenirParID(ctx, req.ID)
	if err != nil {
		return fmt.Errorf("utilisateur non trouvé : %w", ErrIntrouvable)
	}

	pseudo := strings.TrimSpace(req.Pseudo)
	email := strings.TrimSpace(req.Email)
	if pseudo == "" {
		pseudo = u.Pseudo
	}
	if email == "" {
		email = u.Email
	}
	if err := s.validerIdentite(pseudo, email); err != nil {
		return err
	}

	if autre, err := s.repo.ObtenirParPseudo(ctx, pseudo); err == nil && autre.ID != req.ID {
		return errors.New("pseudo déjà utilisé")
	}
	if autre, err := s.repo.ObtenirParEmail(ctx, email); err == nil && autre.ID != req.ID {
		return errors.New("email déjà utilisé")
	}

	// Toute la validation, rôle compris, précède la première écriture : un
	// rôle inconnu ne doit pas laisser un pseudo ou un email déjà modifié.
	role := strings.TrimSpace(req.Role)
	if role != "" {
		if existe, err := s.repo.RoleExiste(ctx, role); err != nil || !existe {
			return errors.New("rôle inconnu")
		}
	}

	if err := s.repo.Modifier(ctx, req.ID, pseudo, email); err != nil {
		log.Error("Erreur modification de l'utilisateur (repo)", zap.Int("utilisateur_id", req.ID), zap.Error(err))
		return fmt.Errorf("échec de la modification de l'utilisateur : %w", err)
	}

	if role != "" {
		if err := s.repo.RemplacerRole(ctx, req.ID, role); err != nil {
			log.Error("Erreur remplacement du rôle (repo)", zap.Int("utilisateur_id", req.ID), zap.Error(err))
			return fmt.Errorf("échec du changement de rôle : %w", err)
		}
	}

	log.Info("Utilisateur modifié", zap.Int("utilisateur_id", req.ID))
	return nil
}

// Supprimer : un admin ne peut pas supprimer son propre compte.
func (s *UtilisateurService) Supprimer(ctx context.Context, acteur models.Acteur, id int) error {
	log := logger.WithCtx(ctx)

	if acteur.ID == id {
		return errors.New("un administrateur ne peut pas supprimer son propre compte")
	}
	if _, err := s.repo.ObtenirParID(ctx, id); err != nil {
		return fmt.Errorf("utilisateur non trouvé : %w", ErrIntrouvable)
	}

	if err := s.repo.Supprimer(ctx, id); err != nil {
		log.Error("Erreur suppression de l'utilisateur (repo)", zap.Int("utilisateur_id", id), zap.Error(err))
		return fmt.Errorf("échec de la suppression de l'utilisateur : %w", err)
	}

	log.Info("Utilisateur supprimé", zap.Int("utilisateur_id", id), zap.Int("acteur_id", acteur.ID))
	return nil
}

func (s *UtilisateurService) validerIdentite(pseudo, email string) error {
	if utf8.RuneCountInString(pseudo) < 2 {
		return errors.New("le pseudo doit contenir au moins 2 caractères")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errors.New("adresse email invalide")
	}
	return nil
}
