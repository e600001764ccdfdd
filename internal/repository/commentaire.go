package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"luxew/internal/models"
)

type CommentaireRepo interface {
	ObtenirParArticle(ctx context.Context, articleID int) ([]*models.Commentaire, error)
	ObtenirParID(ctx context.Context, id int) (*models.Commentaire, error)
	Creer(ctx context.Context, c *models.Commentaire) (int, error)
	Modifier(ctx context.Context, id int, contenu string) error
	Supprimer(ctx context.Context, id int) error
	ExisteSurArticle(ctx context.Context, commentaireID, articleID int) (bool, error)
}

type commentaireRepo struct{ db *pgxpool.Pool }

func NewCommentaireRepo(db *pgxpool.Pool) CommentaireRepo { return &commentaireRepo{db: db} }

// ObtenirParArticle ramène TOUS les commentaires de l'article en une seule
// requête, à plat ; l'arbre parent→enfants est reconstruit en mémoire par le
// service (pas de requête par nœud).
func (r *commentaireRepo) ObtenirParArticle(ctx context.Context, articleID int) ([]*models.Commentaire, error) {
	const q = `
		SELECT c.id, c.contenu, c.utilisateurId, c.articleId, c.parentId,
		       COALESCE(u.pseudo, ''), c.dateCreation
		FROM Commentaire c
		LEFT JOIN Utilisateur u ON c.utilisateurId = u.id
		WHERE c.articleId = $1
		ORDER BY c.dateCreation ASC`
	rows, err := r.db.Query(ctx, q, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var liste []*models.Commentaire
	for rows.Next() {
		var c models.Commentaire
		if err := rows.Scan(
			&c.ID, &c.Contenu, &c.UtilisateurID, &c.ArticleID, &c.ParentID,
			&c.AuteurPseudo, &c.DateCreation,
		); err != nil {
			return nil, err
		}
		liste = append(liste, &c)
	}
	return liste, rows.Err()
}

func (r *commentaireRepo) ObtenirParID(ctx context.Context, id int) (*models.Commentaire, error) {
	const q = `
		SELECT c.id, c.contenu, c.utilisateurId, c.articleId, c.parentId,
		       COALESCE(u.pseudo, ''), c.dateCreation
		FROM Commentaire c
		LEFT JOIN Utilisateur u ON c.utilisateurId = u.id
		WHERE c.id = $1`
	var c models.Commentaire
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&c.ID, &c.Contenu, &c.UtilisateurID, &c.ArticleID, &c.ParentID,
		&c.AuteurPseudo, &c.DateCreation,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *commentaireRepo) Creer(ctx context.Context, c *models.Commentaire) (int, error) {
	const q = `
		INSERT INTO Commentaire (contenu, utilisateurId, articleId, parentId)
		VALUES ($1, $2, $3, $4)
		RETURNING id, dateCreation`
	if err := r.db.QueryRow(ctx, q, c.Contenu, c.UtilisateurID, c.ArticleID, c.ParentID).
		Scan(&c.ID, &c.DateCreation); err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (r *commentaireRepo) Modifier(ctx context.Context, id int, contenu string) error {
	_, err := r.db.Exec(ctx, `UPDATE Commentaire SET contenu = $1 WHERE id = $2`, contenu, id)
	return err
}

func (r *commentaireRepo) Supprimer(ctx context.Context, id int) error {
	// Les sous-commentaires et réactions suivent par FK ON DELETE CASCADE.
	_, err := r.db.Exec(ctx, `DELETE FROM Commentaire WHERE id = $1`, id)
	return err
}

// ExisteSurArticle vérifie qu'un commentaire appartient bien à l'article
// donné : invariant du parentId.
func (r *commentaireRepo) ExisteSurArticle(ctx context.Context, commentaireID, articleID int) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM Commentaire WHERE id = $1 AND articleId = $2)`
	var existe bool
	err := r.db.QueryRow(ctx, q, commentaireID, articleID).Scan(&existe)
	return existe, err
}
