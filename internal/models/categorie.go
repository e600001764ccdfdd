package models

type Categorie struct {
	ID      int    `db:"id"      json:"id"`
	Libelle string `db:"libelle" json:"libelle"`
}

type CreerCategorieRequest struct {
	Libelle string `json:"libelle"`
}
