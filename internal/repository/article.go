package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"luxew/internal/models"
)

type ArticleRepo interface {
	Creer(ctx context.Context, a *models.Article, categorieIDs []int) (int, error)
	ObtenirPagine(ctx context.Context, limite, offset int) ([]*models.Article, error)
	ObtenirParID(ctx context.Context, id int) (*models.Article, error)
	ObtenirParAuteur(ctx context.Context, auteurID, limite, offset int) ([]*models.Article, error)
	Modifier(ctx context.Context, a *models.Article, categorieIDs []int) error
	Supprimer(ctx context.Context, id int) error
	Existe(ctx context.Context, id int) (bool, error)
	ObtenirCategoriesArticle(ctx context.Context, articleID int) ([]models.Categorie, error)
	ObtenirMediasArticle(ctx context.Context, articleID int) ([]models.Media, error)
	AjouterMedia(ctx context.Context, m *models.Media) error
	SupprimerMediasArticle(ctx context.Context, articleID int) error
}

type articleRepo struct{ db *pgxpool.Pool }

func NewArticleRepo(db *pgxpool.Pool) ArticleRepo { return &articleRepo{db: db} }

// Creer insère l'article et ses liens de catégories dans une même
// transaction : un id de catégorie invalide annule tout (aucun article
// partiel persisté).
func (r *articleRepo) Creer(ctx context.Context, a *models.Article, categorieIDs []int) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	const q = `
		INSERT INTO Article (titre, contenu, auteurId)
		VALUES ($1, $2, $3)
		RETURNING id, dateCreation`
	if err := tx.QueryRow(ctx, q, a.Titre, a.Contenu, a.AuteurID).
		Scan(&a.ID, &a.DateCreation); err != nil {
		return 0, err
	}

	const qLien = `INSERT INTO ArticleCategorie (articleId, categorieId) VALUES ($1, $2)`
	for _, categorieID := range categorieIDs {
		if _, err := tx.Exec(ctx, qLien, a.ID, categorieID); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return a.ID, nil
}

const selectArticle = `
	SELECT a.id, a.titre, a.contenu, a.auteurId, COALESCE(u.pseudo, ''), a.dateCreation, a.dateModification
	FROM Article a
	LEFT JOIN Utilisateur u ON a.auteurId = u.id`

func (r *articleRepo) ObtenirPagine(ctx context.Context, limite, offset int) ([]*models.Article, error) {
	q := selectArticle + `
	ORDER BY a.dateCreation DESC
	LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, q, limite, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanArticles(rows)
}

func (r *articleRepo) ObtenirParID(ctx context.Context, id int) (*models.Article, error) {
	q := selectArticle + ` WHERE a.id = $1`
	var a models.Article
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&a.ID, &a.Titre, &a.Contenu, &a.AuteurID, &a.AuteurPseudo,
		&a.DateCreation, &a.DateModification,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *articleRepo) ObtenirParAuteur(ctx context.Context, auteurID, limite, offset int) ([]*models.Article, error) {
	q := selectArticle + `
	WHERE a.auteurId = $1
	ORDER BY a.dateCreation DESC
	LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, q, auteurID, limite, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanArticles(rows)
}

// Modifier met à jour titre/contenu et remplace l'ensemble des liens de
// catégories (suppression puis réinsertion) de façon atomique.
func (r *articleRepo) Modifier(ctx context.Context, a *models.Article, categorieIDs []int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const q = `
		UPDATE Article
		SET titre = $1, contenu = $2, dateModification = NOW()
		WHERE id = $3`
	if _, err := tx.Exec(ctx, q, a.Titre, a.Contenu, a.ID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM ArticleCategorie WHERE articleId = $1`, a.ID); err != nil {
		return err
	}
	const qLien = `INSERT INTO ArticleCategorie (articleId, categorieId) VALUES ($1, $2)`
	for _, categorieID := range categorieIDs {
		if _, err := tx.Exec(ctx, qLien, a.ID, categorieID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Supprimer : cascade explicite en une transaction : médias, liens de
// catégories, réactions (sur l'article et sur ses commentaires),
// commentaires, puis la ligne article. Tout échec annule l'ensemble.
func (r *articleRepo) Supprimer(ctx context.Context, id int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	etapes := []string{
		`DELETE FROM Media WHERE articleId = $1`,
		`DELETE FROM ArticleCategorie WHERE articleId = $1`,
		`DELETE FROM Reaction WHERE articleId = $1
		   OR commentaireId IN (SELECT id FROM Commentaire WHERE articleId = $1)`,
		`DELETE FROM Commentaire WHERE articleId = $1`,
		`DELETE FROM Article WHERE id = $1`,
	}
	for _, q := range etapes {
		if _, err := tx.Exec(ctx, q, id); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *articleRepo) Existe(ctx context.Context, id int) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM Article WHERE id = $1)`
	var existe bool
	if err := r.db.QueryRow(ctx, q, id).Scan(&existe); err != nil {
		return false, err
	}
	return existe, nil
}

func (r *articleRepo) ObtenirCategoriesArticle(ctx context.Context, articleID int) ([]models.Categorie, error) {
	const q = `
		SELECT c.id, c.libelle FROM Categorie c
		INNER JOIN ArticleCategorie ac ON c.id = ac.categorieId
		WHERE ac.articleId = $1
		ORDER BY c.libelle`
	rows, err := r.db.Query(ctx, q, articleID)
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

func (r *articleRepo) ObtenirMediasArticle(ctx context.Context, articleID int) ([]models.Media, error) {
	const q = `SELECT id, articleId, type, url, description FROM Media WHERE articleId = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, q, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	medias := []models.Media{}
	for rows.Next() {
		var m models.Media
		if err := rows.Scan(&m.ID, &m.ArticleID, &m.Type, &m.URL, &m.Description); err != nil {
			return nil, err
		}
		medias = append(medias, m)
	}
	return medias, rows.Err()
}

func (r *articleRepo) AjouterMedia(ctx context.Context, m *models.Media) error {
	const q = `
		INSERT INTO Media (articleId, type, url, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	return r.db.QueryRow(ctx, q, m.ArticleID, m.Type, m.URL, m.Description).Scan(&m.ID)
}

func (r *articleRepo) SupprimerMediasArticle(ctx context.Context, articleID int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM Media WHERE articleId = $1`, articleID)
	return err
}

type rowsArticle interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanArticles(rows rowsArticle) ([]*models.Article, error) {
	var liste []*models.Article
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(
			&a.ID, &a.Titre, &a.Contenu, &a.AuteurID, &a.AuteurPseudo,
			&a.DateCreation, &a.DateModification,
		); err != nil {
			return nil, err
		}
		liste = append(liste, &a)
	}
	return liste, rows.Err()
}
