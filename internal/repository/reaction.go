package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"luxew/internal/models"
)

type ReactionRepo interface {
	Creer(ctx context.Context, re *models.Reaction) (int, error)
	ModifierType(ctx context.Context, id int, nouveauType string) error
	Supprimer(ctx context.Context, id int) error
	ObtenirParID(ctx context.Context, id int) (*models.Reaction, error)
	ObtenirPourUtilisateur(ctx context.Context, utilisateurID int, articleID, commentaireID *int) (*models.Reaction, error)
	BilanParArticle(ctx context.Context, articleID int) ([]models.BilanReaction, error)
	BilanParCommentaire(ctx context.Context, commentaireID int) ([]models.BilanReaction, error)
}

type reactionRepo struct{ db *pgxpool.Pool }

func NewReactionRepo(db *pgxpool.Pool) ReactionRepo { return &reactionRepo{db: db} }

func (r *reactionRepo) Creer(ctx context.Context, re *models.Reaction) (int, error) {
	const q = `
		INSERT INTO Reaction (utilisateurId, articleId, commentaireId, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.db.QueryRow(ctx, q, re.UtilisateurID, re.ArticleID, re.CommentaireID, re.Type).
		Scan(&re.ID); err != nil {
		return 0, err
	}
	return re.ID, nil
}

func (r *reactionRepo) ModifierType(ctx context.Context, id int, nouveauType string) error {
	_, err := r.db.Exec(ctx, `UPDATE Reaction SET type = $1 WHERE id = $2`, nouveauType, id)
	return err
}

func (r *reactionRepo) Supprimer(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM Reaction WHERE id = $1`, id)
	return err
}

func (r *reactionRepo) ObtenirParID(ctx context.Context, id int) (*models.Reaction, error) {
	const q = `SELECT id, utilisateurId, articleId, commentaireId, type FROM Reaction WHERE id = $1`
	var re models.Reaction
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&re.ID, &re.UtilisateurID, &re.ArticleID, &re.CommentaireID, &re.Type,
	); err != nil {
		return nil, err
	}
	return &re, nil
}

// ObtenirPourUtilisateur : la réaction de l'utilisateur pour UNE cible
// (article xor commentaire). Renvoie (nil, nil) en l'absence de réaction.
func (r *reactionRepo) ObtenirPourUtilisateur(ctx context.Context, utilisateurID int, articleID, commentaireID *int) (*models.Reaction, error) {
	q := `SELECT id, utilisateurId, articleId, commentaireId, type
	      FROM Reaction WHERE utilisateurId = $1`
	var arg interface{}
	if articleID != nil {
		q += ` AND articleId = $2 AND commentaireId IS NULL`
		arg = *articleID
	} else {
		q += ` AND commentaireId = $2 AND articleId IS NULL`
		arg = *commentaireID
	}

	var re models.Reaction
	err := r.db.QueryRow(ctx, q, utilisateurID, arg).Scan(
		&re.ID, &re.UtilisateurID, &re.ArticleID, &re.CommentaireID, &re.Type,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &re, nil
}

func (r *reactionRepo) bilan(ctx context.Context, q string, cibleID int) ([]models.BilanReaction, error) {
	rows, err := r.db.Query(ctx, q, cibleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bilan := []models.BilanReaction{}
	for rows.Next() {
		var b models.BilanReaction
		if err := rows.Scan(&b.Type, &b.Nombre); err != nil {
			return nil, err
		}
		bilan = append(bilan, b)
	}
	return bilan, rows.Err()
}

func (r *reactionRepo) BilanParArticle(ctx context.Context, articleID int) ([]models.BilanReaction, error) {
	const q = `
		SELECT type, COUNT(*) AS nombre
		FROM Reaction WHERE articleId = $1
		GROUP BY type ORDER BY type`
	return r.bilan(ctx, q, articleID)
}

func (r *reactionRepo) BilanParCommentaire(ctx context.Context, commentaireID int) ([]models.BilanReaction, error) {
	const q = `
		SELECT type, COUNT(*) AS nombre
		FROM Reaction WHERE commentaireId = $1
		GROUP BY type ORDER BY type`
	return r.bilan(ctx, q, commentaireID)
}
