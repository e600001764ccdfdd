package soap

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"

	"luxew/internal/logger"
	"luxew/internal/models"
	"luxew/internal/repository"
	"luxew/internal/services"
	"luxew/internal/utils"

	"go.uber.org/zap"
)

// Handler sert le point d'entrée SOAP d'administration des utilisateurs :
// une seule URL, l'opération est déterminée par l'élément du Body.
type Handler struct {
	jetons       *services.JetonService
	utilisateurs *services.UtilisateurService
	comptes      repository.UtilisateurRepo
	jetonsRepo   repository.JetonRepo
}

func NewHandler(
	jetons *services.JetonService,
	utilisateurs *services.UtilisateurService,
	comptes repository.UtilisateurRepo,
	jetonsRepo repository.JetonRepo,
) *Handler {
	return &Handler{
		jetons:       jetons,
		utilisateurs: utilisateurs,
		comptes:      comptes,
		jetonsRepo:   jetonsRepo,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.repondreFault(w, http.StatusMethodNotAllowed, "soap:Client", "méthode non autorisée, POST attendu")
		return
	}

	brut, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		h.repondreFault(w, http.StatusBadRequest, "soap:Client", "corps de requête illisible")
		return
	}

	var env enveloppeRequete
	if err := xml.Unmarshal(brut, &env); err != nil {
		logger.WithCtx(r.Context()).Warn("Enveloppe SOAP invalide", zap.Error(err))
		h.repondreFault(w, http.StatusBadRequest, "soap:Client", "enveloppe SOAP invalide")
		return
	}

	contenu, err := h.dispatcher(r.Context(), env.Body)
	if err != nil {
		code := "soap:Client"
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, services.ErrNonAutorise):
			status = http.StatusUnauthorized
		case errors.Is(err, services.ErrInterdit):
			status = http.StatusForbidden
		case errors.Is(err, services.ErrIntrouvable):
			status = http.StatusNotFound
		}
		h.repondreFault(w, status, code, err.Error())
		return
	}

	h.repondre(w, http.StatusOK, contenu)
}

func (h *Handler) dispatcher(ctx context.Context, corps corpsRequete) (interface{}, error) {
	switch {
	case corps.Authentifier != nil:
		return h.authentifier(ctx, *corps.Authentifier)
	case corps.Lister != nil:
		return h.lister(ctx, *corps.Lister)
	case corps.Ajouter != nil:
		return h.ajouter(ctx, *corps.Ajouter)
	case corps.Modifier != nil:
		return h.modifier(ctx, *corps.Modifier)
	case corps.Supprimer != nil:
		return h.supprimer(ctx, *corps.Supprimer)
	default:
		return nil, errors.New("opération SOAP inconnue")
	}
}

// authentifier vérifie pseudo + mot de passe et renvoie le jeton API valide
// de l'utilisateur. Les refus ne sont pas des faults : la réponse porte
// succes=false et un message, le client SOAP s'attend à cette forme.
func (h *Handler) authentifier(ctx context.Context, req requeteAuthentifier) (interface{}, error) {
	u, err := h.comptes.ObtenirParPseudo(ctx, req.Pseudo)
	if err != nil || !utils.VerifierMotDePasse(req.MotDePasse, u.MotDePasse) {
		logger.WithCtx(ctx).Warn("Authentification SOAP refusée", zap.String("pseudo", req.Pseudo))
		return reponseAuthentifier{Succes: false, Message: "identifiants invalides"}, nil
	}

	jeton, err := h.jetonsRepo.ObtenirJetonValideParUtilisateur(ctx, u.ID)
	if err != nil {
		if errors.Is(err, repository.ErrJetonIntrouvable) {
			return reponseAuthentifier{
				Succes:  false,
				Message: "aucun jeton valide trouvé, veuillez générer un nouveau jeton",
			}, nil
		}
		return nil, err
	}
	return reponseAuthentifier{Succes: true, Jeton: jeton}, nil
}

func (h *Handler) lister(ctx context.Context, req requeteLister) (interface{}, error) {
	if _, err := h.acteurAdmin(ctx, req.Jeton); err != nil {
		return nil, err
	}

	utilisateurs, err := h.utilisateurs.Lister(ctx)
	if err != nil {
		return nil, err
	}
	out := reponseLister{Utilisateurs: []utilisateurXML{}}
	for _, u := range utilisateurs {
		out.Utilisateurs = append(out.Utilisateurs, utilisateurXML{
			ID:     u.ID,
			Pseudo: u.Pseudo,
			Email:  u.Email,
			Roles:  u.Roles,
		})
	}
	return out, nil
}

func (h *Handler) ajouter(ctx context.Context, req requeteAjouter) (interface{}, error) {
	if _, err := h.acteurAdmin(ctx, req.Jeton); err != nil {
		return nil, err
	}

	u, err := h.utilisateurs.Creer(ctx, models.CreerUtilisateurRequest{
		Pseudo:     req.Pseudo,
		Email:      req.Email,
		MotDePasse: req.MotDePasse,
		Role:       req.Role,
	})
	if err != nil {
		return nil, err
	}
	return reponseAjouter{ID: u.ID, Succes: true}, nil
}

func (h *Handler) modifier(ctx context.Context, req requeteModifier) (interface{}, error) {
	if _, err := h.acteurAdmin(ctx, req.Jeton); err != nil {
		return nil, err
	}

	err := h.utilisateurs.Modifier(ctx, models.ModifierUtilisateurRequest{
		ID:     req.ID,
		Pseudo: req.Pseudo,
		Email:  req.Email,
		Role:   req.Role,
	})
	if err != nil {
		return nil, err
	}
	return reponseModifier{Succes: true}, nil
}

func (h *Handler) supprimer(ctx context.Context, req requeteSupprimer) (interface{}, error) {
	acteur, err := h.acteurAdmin(ctx, req.Jeton)
	if err != nil {
		return nil, err
	}

	if err := h.utilisateurs.Supprimer(ctx, *acteur, req.ID); err != nil {
		return nil, err
	}
	return reponseSupprimer{Succes: true}, nil
}

// acteurAdmin résout le jeton API et exige le rôle admin.
func (h *Handler) acteurAdmin(ctx context.Context, jeton string) (*models.Acteur, error) {
	acteur, err := h.jetons.Authentifier(ctx, jeton)
	if err != nil {
		return nil, err
	}
	if !acteur.EstAdmin() {
		logger.WithCtx(ctx).Warn("Opération SOAP refusée : rôle insuffisant",
			zap.Int("utilisateur_id", acteur.ID))
		return nil, fmt.Errorf("rôle admin requis : %w", services.ErrInterdit)
	}
	return acteur, nil
}

func (h *Handler) repondre(w http.ResponseWriter, status int, contenu interface{}) {
	env := enveloppeReponse{
		Espace: espaceEnveloppe,
		Body:   corpsReponse{Contenu: contenu},
	}
	h.ecrire(w, status, env)
}

func (h *Handler) repondreFault(w http.ResponseWriter, status int, code, message string) {
	env := enveloppeReponse{
		Espace: espaceEnveloppe,
		Body:   corpsReponse{Fault: &fault{Code: code, Message: message}},
	}
	h.ecrire(w, status, env)
}

func (h *Handler) ecrire(w http.ResponseWriter, status int, env enveloppeReponse) {
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(xml.Header))
	_ = xml.NewEncoder(w).Encode(env)
}
