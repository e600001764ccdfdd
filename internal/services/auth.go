package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"luxew/internal/logger"
	"luxew/internal/models"
	"luxew/internal/repository"
	"luxew/internal/utils"

	"go.uber.org/zap"
)

type AuthService struct {
	repo      repository.UtilisateurRepo
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo repository.UtilisateurRepo, jwtSecret string, jwtTTL time.Duration) *AuthService {
	return &AuthService{repo: repo, jwtSecret: jwtSecret, jwtTTL: jwtTTL}
}

// Inscrire valide les champs, refuse les doublons et le rôle admin, crée
// l'utilisateur avec exactement le rôle demandé puis le connecte.
func (s *AuthService) Inscrire(ctx context.Context, req models.InscriptionRequest) (*models.ConnexionResponse, error) {
	log := logger.WithCtx(ctx)
	log.Info("Inscription (service)", zap.String("pseudo", req.Pseudo), zap.String("email", req.Email))

	pseudo := strings.TrimSpace(req.Pseudo)
	email := strings.TrimSpace(req.Email)
	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = models.RoleVisiteur
	}

	if utf8.RuneCountInString(pseudo) < 2 {
		return nil, errors.New("le pseudo doit contenir au moins 2 caractères")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, errors.New("adresse email invalide")
	}
	if utf8.RuneCountInString(req.MotDePasse) < 6 {
		return nil, errors.New("le mot de passe doit contenir au moins 6 caractères")
	}
	if role == models.RoleAdmin {
		return nil, errors.New("le rôle admin ne peut pas être choisi à l'inscription")
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
		log.Error("Erreur création de l'utilisateur", zap.Error(err))
		return nil, err
	}

	jeton, err := utils.GenererJetonJWT(s.jwtSecret, u.ID, u.Roles, s.jwtTTL)
	if err != nil {
		log.Error("Erreur génération du jeton JWT", zap.Error(err))
		return nil, err
	}

	log.Info("Utilisateur inscrit (service)", zap.Int("utilisateur_id", u.ID), zap.String("role", role))
	return &models.ConnexionResponse{
		Succes:        true,
		Jeton:         jeton,
		UtilisateurID: u.ID,
		Pseudo:        u.Pseudo,
		Roles:         u.Roles,
	}, nil
}

// Connecter vérifie email + mot de passe et émet le bearer JWT portant
// l'id utilisateur et la liste de rôles.
func (s *AuthService) Connecter(ctx context.Context, req models.ConnexionRequest) (*models.ConnexionResponse, error) {
	log := logger.WithCtx(ctx)
	log.Info("Tentative de connexion (service)", zap.String("email", req.Email))

	if strings.TrimSpace(req.Email) == "" || req.MotDePasse == "" {
		return nil, errors.New("email ou mot de passe manquant")
	}

	u, err := s.repo.ObtenirParEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		log.Warn("Utilisateur non trouvé (service)", zap.String("email", req.Email), zap.Error(err))
		return nil, errors.New("identifiants invalides")
	}

	if !utils.VerifierMotDePasse(req.MotDePasse, u.MotDePasse) {
		log.Warn("Mot de passe invalide (service)", zap.Int("utilisateur_id", u.ID))
		return nil, errors.New("identifiants invalides")
	}

	jeton, err := utils.GenererJetonJWT(s.jwtSecret, u.ID, u.Roles, s.jwtTTL)
	if err != nil {
		log.Error("Erreur génération du jeton JWT", zap.Error(err))
		return nil, err
	}

	log.Info("Connexion réussie (service)", zap.Int("utilisateur_id", u.ID), zap.Strings("roles", u.Roles))
	return &models.ConnexionResponse{
		Succes:        true,
		Jeton:         jeton,
		UtilisateurID: u.ID,
		Pseudo:        u.Pseudo,
		Roles:         u.Roles,
	}, nil
}
