package models

import "time"

// Jeton : jeton d'API opaque de longue durée, distinct du bearer JWT.
// L'expiration est vérifiée à la validation, jamais purgée activement.
type Jeton struct {
	ID             int       `db:"id"             json:"-"`
	Jeton          string    `db:"jeton"          json:"jeton"`
	UtilisateurID  int       `db:"utilisateurId"  json:"utilisateurId"`
	Pseudo         string    `db:"-"              json:"pseudo,omitempty"`
	DateCreation   time.Time `db:"dateCreation"   json:"dateCreation"`
	DateExpiration time.Time `db:"dateExpiration" json:"dateExpiration"`
}

type CreerJetonRequest struct {
	UtilisateurID int `json:"utilisateurId"`
	DureeValidite int `json:"dureeValidite"` // en jours, 1 à 365
}

type SupprimerJetonRequest struct {
	Jeton string `json:"jeton"`
}
