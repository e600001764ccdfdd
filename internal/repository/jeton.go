package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"luxew/internal/models"
)

var ErrJetonIntrouvable = errors.New("jeton non trouvé")

type JetonRepo interface {
	Creer(ctx context.Context, utilisateurID int, jeton string, dureeJours int) (*models.Jeton, error)
	Valider(ctx context.Context, jeton string) (bool, error)
	ObtenirUtilisateurParJeton(ctx context.Context, jeton string) (int, error)
	ObtenirJetonValideParUtilisateur(ctx context.Context, utilisateurID int) (string, error)
	Supprimer(ctx context.Context, jeton string) error
	ObtenirTous(ctx context.Context) ([]*models.Jeton, error)
}

type jetonRepo struct{ db *pgxpool.Pool }

func NewJetonRepo(db *pgxpool.Pool) JetonRepo { return &jetonRepo{db: db} }

func (r *jetonRepo) Creer(ctx context.Context, utilisateurID int, jeton string, dureeJours int) (*models.Jeton, error) {
	const q = `
		INSERT INTO Jeton (utilisateurId, jeton, dateCreation, dateExpiration)
		VALUES ($1, $2, NOW(), NOW() + make_interval(days => $3))
		RETURNING id, dateCreation, dateExpiration`
	j := &models.Jeton{UtilisateurID: utilisateurID, Jeton: jeton}
	if err := r.db.QueryRow(ctx, q, utilisateurID, jeton, dureeJours).
		Scan(&j.ID, &j.DateCreation, &j.DateExpiration); err != nil {
		return nil, fmt.Errorf("création du jeton : %w", err)
	}
	return j, nil
}

// Valider : simple présence + expiration au moment de l'appel ; aucun
// nettoyage actif des jetons périmés.
func (r *jetonRepo) Valider(ctx context.Context, jeton string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM Jeton WHERE jeton = $1 AND dateExpiration > NOW())`
	var valide bool
	err := r.db.QueryRow(ctx, q, jeton).Scan(&valide)
	return valide, err
}

func (r *jetonRepo) ObtenirUtilisateurParJeton(ctx context.Context, jeton string) (int, error) {
	const q = `SELECT utilisateurId FROM Jeton WHERE jeton = $1 AND dateExpiration > NOW()`
	var utilisateurID int
	err := r.db.QueryRow(ctx, q, jeton).Scan(&utilisateurID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrJetonIntrouvable
	}
	return utilisateurID, err
}

func (r *jetonRepo) ObtenirJetonValideParUtilisateur(ctx context.Context, utilisateurID int) (string, error) {
	const q = `SELECT jeton FROM Jeton WHERE utilisateurId = $1 AND dateExpiration > NOW() LIMIT 1`
	var jeton string
	err := r.db.QueryRow(ctx, q, utilisateurID).Scan(&jeton)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrJetonIntrouvable
	}
	return jeton, err
}

func (r *jetonRepo) Supprimer(ctx context.Context, jeton string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM Jeton WHERE jeton = $1`, jeton)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrJetonIntrouvable
	}
	return nil
}

func (r *jetonRepo) ObtenirTous(ctx context.Context) ([]*models.Jeton, error) {
	const q = `
		SELECT j.id, j.jeton, j.utilisateurId, u.pseudo, j.dateCreation, j.dateExpiration
		FROM Jeton j
		JOIN Utilisateur u ON j.utilisateurId = u.id
		ORDER BY j.dateCreation DESC`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var liste []*models.Jeton
	for rows.Next() {
		var j models.Jeton
		if err := rows.Scan(&j.ID, &j.Jeton, &j.UtilisateurID, &j.Pseudo, &j.DateCreation, &j.DateExpiration); err != nil {
			return nil, err
		}
		liste = append(liste, &j)
	}
	return liste, rows.Err()
}
