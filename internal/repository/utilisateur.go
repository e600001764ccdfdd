package repository

import (
	"context"
	"luxew/internal/logger"
	"luxew/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type UtilisateurRepo interface {
	Creer(ctx context.Context, u *models.Utilisateur, role string) error
	PseudoExiste(ctx context.Context, pseudo string) (bool, error)
	EmailExiste(ctx context.Context, email string) (bool, error)
	ObtenirParEmail(ctx context.Context, email string) (*models.Utilisateur, error)
	ObtenirParPseudo(ctx context.Context, pseudo string) (*models.Utilisateur, error)
	ObtenirParID(ctx context.Context, id int) (*models.Utilisateur, error)
	ObtenirTous(ctx context.Context) ([]*models.Utilisateur, error)
	ObtenirRoles(ctx context.Context, utilisateurID int) ([]string, error)
	RoleExiste(ctx context.Context, nom string) (bool, error)
	ObtenirTousRoles(ctx context.Context) ([]models.Role, error)
	Modifier(ctx context.Context, id int, pseudo, email string) error
	RemplacerRole(ctx context.Context, utilisateurID int, role string) error
	Supprimer(ctx context.Context, id int) error
}

type utilisateurRepo struct{ db *pgxpool.Pool }

func NewUtilisateurRepo(db *pgxpool.Pool) UtilisateurRepo { return &utilisateurRepo{db: db} }

// Creer insère l'utilisateur et lui attribue exactement le rôle demandé,
// dans une même transaction.
func (r *utilisateurRepo) Creer(ctx context.Context, u *models.Utilisateur, role string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const qUtilisateur = `
		INSERT INTO Utilisateur (pseudo, email, motDePasse)
		VALUES ($1, $2, $3)
		RETURNING id, dateCreation`
	if err := tx.QueryRow(ctx, qUtilisateur, u.Pseudo, u.Email, u.MotDePasse).
		Scan(&u.ID, &u.DateCreation); err != nil {
		return err
	}

	const qRole = `
		INSERT INTO UtilisateurRole (utilisateurId, roleId)
		SELECT $1, id FROM Role WHERE nom = $2`
	if _, err := tx.Exec(ctx, qRole, u.ID, role); err != nil {
		return err
	}

	u.Roles = []string{role}
	return tx.Commit(ctx)
}

func (r *utilisateurRepo) PseudoExiste(ctx context.Context, pseudo string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM Utilisateur WHERE pseudo = $1)`
	var existe bool
	err := r.db.QueryRow(ctx, q, pseudo).Scan(&existe)
	if err != nil {
		logger.Log.Error("Erreur vérification pseudo (repo)", zap.Error(err))
	}
	return existe, err
}

func (r *utilisateurRepo) EmailExiste(ctx context.Context, email string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM Utilisateur WHERE email = $1)`
	var existe bool
	err := r.db.QueryRow(ctx, q, email).Scan(&existe)
	if err != nil {
		logger.Log.Error("Erreur vérification email (repo)", zap.Error(err))
	}
	return existe, err
}

func (r *utilisateurRepo) obtenirUn(ctx context.Context, where string, arg interface{}) (*models.Utilisateur, error) {
	q := `SELECT id, pseudo, email, motDePasse, dateCreation FROM Utilisateur WHERE ` + where
	var u models.Utilisateur
	if err := r.db.QueryRow(ctx, q, arg).Scan(
		&u.ID, &u.Pseudo, &u.Email, &u.MotDePasse, &u.DateCreation,
	); err != nil {
		return nil, err
	}
	roles, err := r.ObtenirRoles(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	u.Roles = roles
	return &u, nil
}

func (r *utilisateurRepo) ObtenirParEmail(ctx context.Context, email string) (*models.Utilisateur, error) {
	return r.obtenirUn(ctx, "email = $1", email)
}

func (r *utilisateurRepo) ObtenirParPseudo(ctx context.Context, pseudo string) (*models.Utilisateur, error) {
	return r.obtenirUn(ctx, "pseudo = $1", pseudo)
}

func (r *utilisateurRepo) ObtenirParID(ctx context.Context, id int) (*models.Utilisateur, error) {
	return r.obtenirUn(ctx, "id = $1", id)
}

func (r *utilisateurRepo) ObtenirTous(ctx context.Context) ([]*models.Utilisateur, error) {
	const q = `
		SELECT u.id, u.pseudo, u.email, u.dateCreation,
		       COALESCE(array_agg(r.nom) FILTER (WHERE r.nom IS NOT NULL), '{}')
		FROM Utilisateur u
		LEFT JOIN UtilisateurRole ur ON ur.utilisateurId = u.id
		LEFT JOIN Role r ON r.id = ur.roleId
		GROUP BY u.id, u.pseudo, u.email, u.dateCreation
		ORDER BY u.id`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var liste []*models.Utilisateur
	for rows.Next() {
		var u models.Utilisateur
		if err := rows.Scan(&u.ID, &u.Pseudo, &u.Email, &u.DateCreation, &u.Roles); err != nil {
			return nil, err
		}
		liste = append(liste, &u)
	}
	return liste, rows.Err()
}

func (r *utilisateurRepo) ObtenirRoles(ctx context.Context, utilisateurID int) ([]string, error) {
	const q = `
		SELECT r.nom FROM Role r
		JOIN UtilisateurRole ur ON r.id = ur.roleId
		WHERE ur.utilisateurId = $1`
	rows, err := r.db.Query(ctx, q, utilisateurID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var nom string
		if err := rows.Scan(&nom); err != nil {
			return nil, err
		}
		roles = append(roles, nom)
	}
	return roles, rows.Err()
}

func (r *utilisateurRepo) RoleExiste(ctx context.Context, nom string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM Role WHERE nom = $1)`
	var existe bool
	err := r.db.QueryRow(ctx, q, nom).Scan(&existe)
	return existe, err
}

func (r *utilisateurRepo) ObtenirTousRoles(ctx context.Context) ([]models.Role, error) {
	rows, err := r.db.Query(ctx, `SELECT id, nom FROM Role ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Nom); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *utilisateurRepo) Modifier(ctx context.Context, id int, pseudo, email string) error {
	const q = `UPDATE Utilisateur SET pseudo = $1, email = $2 WHERE id = $3`
	_, err := r.db.Exec(ctx, q, pseudo, email, id)
	if err != nil {
		logger.Log.Error("Erreur modification utilisateur (repo)", zap.Int("utilisateur_id", id), zap.Error(err))
	}
	return err
}

// RemplacerRole remplace l'ensemble des rôles par le rôle donné
// (suppression puis réinsertion, même transaction).
func (r *utilisateurRepo) RemplacerRole(ctx context.Context, utilisateurID int, role string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM UtilisateurRole WHERE utilisateurId = $1`, utilisateurID); err != nil {
		return err
	}
	const q = `
		INSERT INTO UtilisateurRole (utilisateurId, roleId)
		SELECT $1, id FROM Role WHERE nom = $2`
	if _, err := tx.Exec(ctx, q, utilisateurID, role); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Supprimer retire l'utilisateur ainsi que ses rôles et jetons.
func (r *utilisateurRepo) Supprimer(ctx context.Context, id int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM UtilisateurRole WHERE utilisateurId = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM Jeton WHERE utilisateurId = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM Utilisateur WHERE id = $1`, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
