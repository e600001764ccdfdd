package helpers

import (
	"encoding/json"
	"encoding/xml"
	"net/http"
)

// Enveloppe d'erreur uniforme : {"erreur": "<message>"}.
type ReponseErreur struct {
	Erreur string `json:"erreur"`
}

func JSON(w http.ResponseWriter, status int, donnees interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(donnees)
}

func Erreur(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ReponseErreur{Erreur: message})
}

func XML(w http.ResponseWriter, status int, donnees interface{}) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(xml.Header))
	_ = xml.NewEncoder(w).Encode(donnees)
}
