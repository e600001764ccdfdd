package models

import "time"

const (
	RoleVisiteur = "visiteur"
	RoleEditeur  = "editeur"
	RoleAdmin    = "admin"
)

type Utilisateur struct {
	ID           int       `db:"id"           json:"id"`
	Pseudo       string    `db:"pseudo"       json:"pseudo"`
	Email        string    `db:"email"        json:"email"`
	MotDePasse   string    `db:"motDePasse"   json:"-"`
	Roles        []string  `db:"-"            json:"roles,omitempty"`
	DateCreation time.Time `db:"dateCreation" json:"dateCreation"`
}

type Role struct {
	ID  int    `db:"id"  json:"id"`
	Nom string `db:"nom" json:"nom"`
}

// Acteur est l'identité authentifiée qui porte la requête : id + rôles,
// extraits du jeton bearer. C'est le prédicat d'autorisation central :
// les handlers n'examinent jamais les rôles à la main.
type Acteur struct {
	ID    int
	Roles []string
}

func (a Acteur) ARole(roles ...string) bool {
	for _, voulu := range roles {
		for _, r := range a.Roles {
			if r == voulu {
				return true
			}
		}
	}
	return false
}

func (a Acteur) EstAdmin() bool {
	return a.ARole(RoleAdmin)
}

// EstProprietaire : prédicat de possession : admin passe toujours.
func (a Acteur) EstProprietaire(proprietaireID int) bool {
	return a.EstAdmin() || a.ID == proprietaireID
}

type InscriptionRequest struct {
	Pseudo     string `json:"pseudo"`
	Email      string `json:"email"`
	MotDePasse string `json:"motDePasse"`
	Role       string `json:"role"`
}

type ConnexionRequest struct {
	Email      string `json:"email"`
	MotDePasse string `json:"motDePasse"`
}

type ConnexionResponse struct {
	Succes        bool     `json:"succes"`
	Jeton         string   `json:"jeton"`
	UtilisateurID int      `json:"utilisateurId"`
	Pseudo        string   `json:"pseudo"`
	Roles         []string `json:"roles"`
}

type CreerUtilisateurRequest struct {
	Pseudo     string `json:"pseudo"`
	Email      string `json:"email"`
	MotDePasse string `json:"motDePasse"`
	Role       string `json:"role"`
}

type ModifierUtilisateurRequest struct {
	ID     int    `json:"id"`
	Pseudo string `json:"pseudo"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type SupprimerUtilisateurRequest struct {
	ID int `json:"id"`
}
