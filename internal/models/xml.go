package models

import "encoding/xml"

// Rendu XML alternatif (format=xml) pour les listes d'articles et de
// catégories : miroir des mêmes champs que le JSON.

type ArticlesXML struct {
	XMLName  xml.Name     `xml:"articles"`
	Articles []ArticleXML `xml:"article"`
}

type ArticleXML struct {
	ID            int          `xml:"id"`
	Titre         string       `xml:"titre"`
	Contenu       string       `xml:"contenu"`
	DateCreation  string       `xml:"dateCreation"`
	PeutModifier  bool         `xml:"peutModifier"`
	PeutSupprimer bool         `xml:"peutSupprimer"`
	Reactions     ReactionsXML `xml:"reactions"`
}

type ReactionsXML struct {
	Reactions []BilanReactionXML `xml:"reaction"`
}

type BilanReactionXML struct {
	Type   string `xml:"type"`
	Nombre int    `xml:"nombre"`
}

type CategoriesXML struct {
	XMLName    xml.Name       `xml:"categories"`
	Categories []CategorieXML `xml:"categorie"`
}

type CategorieXML struct {
	ID      int    `xml:"id"`
	Libelle string `xml:"libelle"`
}

// ArticlesCategorieXML : articles d'une catégorie (champs réduits, comme
// l'original).
type ArticlesCategorieXML struct {
	XMLName  xml.Name              `xml:"articles"`
	Articles []ArticleCategorieXML `xml:"article"`
}

type ArticleCategorieXML struct {
	ID      int    `xml:"id"`
	Titre   string `xml:"titre"`
	Contenu string `xml:"contenu"`
}
