package models

import "time"

type Commentaire struct {
	ID            int       `db:"id"            json:"id"`
	Contenu       string    `db:"contenu"       json:"contenu"`
	UtilisateurID int       `db:"utilisateurId" json:"utilisateurId"`
	ArticleID     int       `db:"articleId"     json:"articleId"`
	ParentID      *int      `db:"parentId"      json:"parentId"`
	AuteurPseudo  string    `db:"-"             json:"auteurPseudo"`
	DateCreation  time.Time `db:"dateCreation"  json:"dateCreation"`

	Reactions        []BilanReaction `db:"-" json:"reactions"`
	SousCommentaires []*Commentaire  `db:"-" json:"sousCommentaires"`
}

type CreerCommentaireRequest struct {
	Contenu   string `json:"contenu"`
	ArticleID int    `json:"articleId"`
	ParentID  *int   `json:"parentId"`
}

type ModifierCommentaireRequest struct {
	Contenu string `json:"contenu"`
}
