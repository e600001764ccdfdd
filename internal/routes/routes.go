package routes

import (
	"net/http"

	"luxew/internal/handlers"
	"luxew/internal/middleware"
	"luxew/internal/models"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	articleHandler *handlers.ArticleHandler,
	categorieHandler *handlers.CategorieHandler,
	commentaireHandler *handlers.CommentaireHandler,
	reactionHandler *handlers.ReactionHandler,
	utilisateurHandler *handlers.UtilisateurHandler,
	jetonHandler *handlers.JetonHandler,
	soapHandler http.Handler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Logging)

	api := router.PathPrefix("/api").Subrouter()

	// --- Routes publiques ---
	api.HandleFunc("/inscription", authHandler.Inscription).Methods("POST")
	api.HandleFunc("/connexion", authHandler.Connexion).Methods("POST")

	// Les listings publics décodent le jeton s'il est là pour personnaliser
	// peutModifier/peutSupprimer.
	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.AuthJWTOptionnel(jwtSecret))
	public.HandleFunc("/articles", articleHandler.Lister).Methods("GET")
	public.HandleFunc("/articles/auteur/{id:[0-9]+}", articleHandler.ListerParAuteur).Methods("GET")
	public.HandleFunc("/articles/{id:[0-9]+}", articleHandler.Obtenir).Methods("GET")
	public.HandleFunc("/commentaires/{articleId:[0-9]+}", commentaireHandler.ListerParArticle).Methods("GET")
	public.HandleFunc("/categories", categorieHandler.Lister).Methods("GET")
	public.HandleFunc("/categories/{id:[0-9]+}/articles", categorieHandler.ListerArticles).Methods("GET")
	public.HandleFunc("/reactions/article/{id:[0-9]+}", reactionHandler.BilanArticle).Methods("GET")
	public.HandleFunc("/reactions/commentaire/{id:[0-9]+}", reactionHandler.BilanCommentaire).Methods("GET")

	// --- Routes authentifiées (JWT obligatoire) ---
	protege := api.PathPrefix("").Subrouter()
	protege.Use(middleware.AuthJWT(jwtSecret))

	protege.HandleFunc("/deconnexion", authHandler.Deconnexion).Methods("POST")
	protege.HandleFunc("/commentaires/creer", commentaireHandler.Creer).Methods("POST")
	protege.HandleFunc("/commentaires/{id:[0-9]+}/modifier", commentaireHandler.Modifier).Methods("POST")
	protege.HandleFunc("/commentaires/{id:[0-9]+}/supprimer", commentaireHandler.Supprimer).Methods("DELETE")
	protege.HandleFunc("/reactions/creer", reactionHandler.Toggle).Methods("POST")
	protege.HandleFunc("/reactions/utilisateur", reactionHandler.ReactionUtilisateur).Methods("GET")
	protege.HandleFunc("/reactions/{id:[0-9]+}/supprimer", reactionHandler.Supprimer).Methods("DELETE")

	// --- Rédaction (editeur ou admin) ---
	redaction := protege.PathPrefix("").Subrouter()
	redaction.Use(middleware.RolesAutorises(models.RoleEditeur, models.RoleAdmin))
	redaction.HandleFunc("/articles/creer", articleHandler.Creer).Methods("POST")
	redaction.HandleFunc("/articles/{id:[0-9]+}/modifier", articleHandler.Modifier).Methods("POST")
	redaction.HandleFunc("/articles/{id:[0-9]+}/supprimer", articleHandler.Supprimer).Methods("POST")
	redaction.HandleFunc("/categories/creer", categorieHandler.Creer).Methods("POST")
	redaction.HandleFunc("/categories/{id:[0-9]+}/modifier", categorieHandler.Modifier).Methods("PUT")
	redaction.HandleFunc("/categories/{id:[0-9]+}/supprimer", categorieHandler.Supprimer).Methods("DELETE")

	// --- Administration ---
	admin := protege.PathPrefix("").Subrouter()
	admin.Use(middleware.RolesAutorises(models.RoleAdmin))
	admin.HandleFunc("/utilisateurs", utilisateurHandler.Lister).Methods("GET")
	admin.HandleFunc("/utilisateurs/creer", utilisateurHandler.Creer).Methods("POST")
	admin.HandleFunc("/utilisateurs/modifier", utilisateurHandler.Modifier).Methods("POST")
	admin.HandleFunc("/utilisateurs/supprimer", utilisateurHandler.Supprimer).Methods("POST")
	admin.HandleFunc("/roles", utilisateurHandler.ListerRoles).Methods("GET")
	admin.HandleFunc("/jetons", jetonHandler.Lister).Methods("GET")
	admin.HandleFunc("/jetons/creer", jetonHandler.Creer).Methods("POST")
	admin.HandleFunc("/jetons/supprimer", jetonHandler.Supprimer).Methods("POST")

	// Interface SOAP : authentification par jeton API dans l'enveloppe,
	// pas de middleware JWT.
	router.Handle("/soap", soapHandler).Methods("POST")
}
