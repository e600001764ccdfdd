package models

import "time"

type Article struct {
	ID               int        `db:"id"               json:"id"`
	Titre            string     `db:"titre"            json:"titre"`
	Contenu          string     `db:"contenu"          json:"contenu"`
	AuteurID         int        `db:"auteurId"         json:"auteurId"`
	AuteurPseudo     string     `db:"-"                json:"auteurPseudo"`
	DateCreation     time.Time  `db:"dateCreation"     json:"dateCreation"`
	DateModification *time.Time `db:"dateModification" json:"dateModification,omitempty"`

	Medias     []Media          `db:"-" json:"medias"`
	Categories []Categorie      `db:"-" json:"categories"`
	Reactions  []BilanReaction  `db:"-" json:"reactions"`

	PeutModifier  bool `db:"-" json:"peutModifier"`
	PeutSupprimer bool `db:"-" json:"peutSupprimer"`
}

const (
	MediaImage = "image"
	MediaAudio = "audio"
	MediaVideo = "video"
)

type Media struct {
	ID          int    `db:"id"          json:"id"`
	ArticleID   int    `db:"articleId"   json:"articleId"`
	Type        string `db:"type"        json:"type"`
	URL         string `db:"url"         json:"url"`
	Description string `db:"description" json:"description"`
}

// FichierMedia : fichier extrait du formulaire multipart, avant upload
// vers le stockage objet.
type FichierMedia struct {
	Nom      string
	TypeMime string
	Contenu  []byte
}

// CreerArticleRequest couvre création et modification (mêmes champs, mêmes
// règles de validation).
type CreerArticleRequest struct {
	Titre      string
	Contenu    string
	Categories []int
	Medias     []FichierMedia
}
