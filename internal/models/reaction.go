package models

const (
	ReactionLike   = "like"
	ReactionUnlike = "unlike"
)

// Reaction porte exactement une cible non nulle : ArticleID xor CommentaireID.
type Reaction struct {
	ID            int    `db:"id"            json:"id"`
	UtilisateurID int    `db:"utilisateurId" json:"utilisateurId"`
	ArticleID     *int   `db:"articleId"     json:"articleId"`
	CommentaireID *int   `db:"commentaireId" json:"commentaireId"`
	Type          string `db:"type"          json:"type"`
}

// BilanReaction : agrégat {type, nombre} pour une cible.
type BilanReaction struct {
	Type   string `db:"type"   json:"type"`
	Nombre int    `db:"nombre" json:"nombre"`
}

type ToggleReactionRequest struct {
	Type          string `json:"type"`
	ArticleID     *int   `json:"articleId"`
	CommentaireID *int   `json:"commentaireId"`
}

// Actions renvoyées par le toggle (§ machine à états).
const (
	ActionAjoutee   = "ajoutee"
	ActionModifiee  = "modifiee"
	ActionSupprimee = "supprimee"
)
