package soap

import "encoding/xml"

// Enveloppes SOAP 1.1 de l'interface d'administration. L'authentification
// passe par un jeton API opaque porté dans chaque requête.

const espaceEnveloppe = "http://schemas.xmlsoap.org/soap/envelope/"

type enveloppeRequete struct {
	XMLName xml.Name     `xml:"Envelope"`
	Body    corpsRequete `xml:"Body"`
}

type corpsRequete struct {
	Authentifier *requeteAuthentifier `xml:"AuthentifierUtilisateur"`
	Lister       *requeteLister       `xml:"ListerUtilisateurs"`
	Ajouter      *requeteAjouter      `xml:"AjouterUtilisateur"`
	Modifier     *requeteModifier     `xml:"ModifierUtilisateur"`
	Supprimer    *requeteSupprimer    `xml:"SupprimerUtilisateur"`
}

type requeteAuthentifier struct {
	Pseudo     string `xml:"pseudo"`
	MotDePasse string `xml:"motDePasse"`
}

type requeteLister struct {
	Jeton string `xml:"jeton"`
}

type requeteAjouter struct {
	Jeton      string `xml:"jeton"`
	Pseudo     string `xml:"pseudo"`
	Email      string `xml:"email"`
	MotDePasse string `xml:"motDePasse"`
	Role       string `xml:"role"`
}

type requeteModifier struct {
	Jeton  string `xml:"jeton"`
	ID     int    `xml:"id"`
	Pseudo string `xml:"pseudo"`
	Email  string `xml:"email"`
	Role   string `xml:"role"`
}

type requeteSupprimer struct {
	Jeton string `xml:"jeton"`
	ID    int    `xml:"id"`
}

type enveloppeReponse struct {
	XMLName xml.Name `xml:"soap:Envelope"`
	Espace  string   `xml:"xmlns:soap,attr"`
	Body    corpsReponse
}

type corpsReponse struct {
	XMLName xml.Name    `xml:"soap:Body"`
	Contenu interface{} `xml:",omitempty"`
	Fault   *fault      `xml:"soap:Fault,omitempty"`
}

type fault struct {
	Code    string `xml:"faultcode"`
	Message string `xml:"faultstring"`
}

type reponseAuthentifier struct {
	XMLName xml.Name `xml:"AuthentifierUtilisateurReponse"`
	Succes  bool     `xml:"succes"`
	Jeton   string   `xml:"jeton,omitempty"`
	Message string   `xml:"message,omitempty"`
}

type reponseLister struct {
	XMLName      xml.Name         `xml:"ListerUtilisateursReponse"`
	Utilisateurs []utilisateurXML `xml:"utilisateur"`
}

type utilisateurXML struct {
	ID     int      `xml:"id"`
	Pseudo string   `xml:"pseudo"`
	Email  string   `xml:"email"`
	Roles  []string `xml:"roles>role"`
}

type reponseAjouter struct {
	XMLName xml.Name `xml:"AjouterUtilisateurReponse"`
	ID      int      `xml:"id"`
	Succes  bool     `xml:"succes"`
}

type reponseModifier struct {
	XMLName xml.Name `xml:"ModifierUtilisateurReponse"`
	Succes  bool     `xml:"succes"`
}

type reponseSupprimer struct {
	XMLName xml.Name `xml:"SupprimerUtilisateurReponse"`
	Succes  bool     `xml:"succes"`
}
