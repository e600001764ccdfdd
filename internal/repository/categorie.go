package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"luxew/internal/models"
)

type CategorieRepo interface {
	ObtenirToutes(ctx context.Context) ([]models.Categorie, error)
	ObtenirParID(ctx context.Context, id int) (*models.Categorie, error)
	LibelleExiste(ctx context.Context, libelle string, excludeID int) (bool, error)
	Creer(ctx context.Context, libelle string) (int, error)
	Modifier(ctx context.Context, id int, libelle string) error
	Supprimer(ctx context.Context, id int) error
	ObtenirArticlesParCategorie(ctx context.Context, categorieID, limite, offset int) ([]*models.Article, error)
	Existe(ctx context.Context, id int) (bool, error)
}

type categorieRepo struct{ db *pgxpool.Pool }

func NewCategorieRepo(db *pgxpool.Pool) CategorieRepo { return &categorieRepo{db: db} }

func (r *categorieRepo) ObtenirToutes(ctx context.Context) ([]models.Categorie, error) {
	rows, err := r.db.Query(ctx, `SELECT id, libelle FROM Categorie ORDER BY libelle ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Categorie{}
	for rows.Next() {
		var c models.Categorie
		if err := rows.Scan(&c.ID, &c.Libelle); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *categorieRepo) ObtenirParID(ctx context.Context, id int) (*models.Categorie, error) {
	var c models.Categorie
	if err := r.db.QueryRow(ctx, `SELECT id, libelle FROM Categorie WHERE id = $1`, id).
		Scan(&c.ID, &c.Libelle); err != nil {
		return nil, err
	}
	return &c, nil
}

// LibelleExiste : unicité insensible à la casse, en excluant éventuellement
// la ligne en cours d'édition (excludeID = 0 pour une création).
func (r *categorieRepo) LibelleExiste(ctx context.Context, libelle string, excludeID int) (bool, error) {
	const q = `SELECT EXISTS(
		SELECT 1 FROM Categorie WHERE LOWER(libelle) = LOWER($1) AND id <> $2)`
	var existe bool
	err := r.db.QueryRow(ctx, q, libelle, excludeID).Scan(&existe)
	return existe, err
}

func (r *categorieRepo) Creer(ctx context.Context, libelle string) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `INSERT INTO Categorie (libelle) VALUES ($1) RETURNING id`, libelle).Scan(&id)
	return id, err
}

func (r *categorieRepo) Modifier(ctx context.Context, id int, libelle string) error {
	_, err := r.db.Exec(ctx, `UPDATE Categorie SET libelle = $1 WHERE id = $2`, libelle, id)
	return err
}

// Supprimer retire les lignes de jointure puis la catégorie, en une
// transaction : les articles survivent.
func (r *categorieRepo) Supprimer(ctx context.Context, id int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM ArticleCategorie WHERE categorieId = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM Categorie WHERE id = $1`, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *categorieRepo) ObtenirArticlesParCategorie(ctx context.Context, categorieID, limite, offset int) ([]*models.Article, error) {
	const q = `
		SELECT a.id, a.titre, a.contenu, a.auteurId, COALESCE(u.pseudo, ''), a.dateCreation, a.dateModification
		FROM Article a
		JOIN ArticleCategorie ac ON a.id = ac.articleId
		LEFT JOIN Utilisateur u ON a.auteurId = u.id
		WHERE ac.categorieId = $1
		ORDER BY a.dateCreation DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, q, categorieID, limite, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanArticles(rows)
}

func (r *categorieRepo) Existe(ctx context.Context, id int) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM Categorie WHERE id = $1)`
	var existe bool
	err := r.db.QueryRow(ctx, q, id).Scan(&existe)
	return existe, err
}
