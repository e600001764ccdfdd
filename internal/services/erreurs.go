package services

import "errors"

// Taxonomie d'erreurs remontée aux handlers : validation (400), non
// authentifié (401), interdit (403), introuvable (404). Les handlers font
// la conversion en enveloppe {"erreur": ...} via errors.Is.
var (
	ErrNonAutorise = errors.New("non autorisé")
	ErrInterdit    = errors.New("accès interdit")
	ErrIntrouvable = errors.New("ressource non trouvée")
)
