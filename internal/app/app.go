package app

import (
	"time"

	"luxew/internal/config"
	"luxew/internal/db"
	"luxew/internal/handlers"
	"luxew/internal/repository"
	"luxew/internal/routes"
	"luxew/internal/services"
	"luxew/internal/soap"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	jwtTTL, err := time.ParseDuration(cfg.JWTTTL)
	if err != nil {
		return nil, err
	}

	// Répertoires
	utilisateurRepo := repository.NewUtilisateurRepo(conn)
	articleRepo := repository.NewArticleRepo(conn)
	categorieRepo := repository.NewCategorieRepo(conn)
	commentaireRepo := repository.NewCommentaireRepo(conn)
	reactionRepo := repository.NewReactionRepo(conn)
	jetonRepo := repository.NewJetonRepo(conn)

	// Services
	stockage := services.NewCloudinaryService(cfg)
	authService := services.NewAuthService(utilisateurRepo, cfg.JWTSecret, jwtTTL)
	articleService := services.NewArticleService(articleRepo, categorieRepo, reactionRepo, stockage)
	categorieService := services.NewCategorieService(categorieRepo, articleRepo, reactionRepo)
	commentaireService := services.NewCommentaireService(commentaireRepo, articleRepo, reactionRepo)
	reactionService := services.NewReactionService(reactionRepo, articleRepo, commentaireRepo)
	jetonService := services.NewJetonService(jetonRepo, utilisateurRepo)
	utilisateurService := services.NewUtilisateurService(utilisateurRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService)
	categorieHandler := handlers.NewCategorieHandler(categorieService)
	commentaireHandler := handlers.NewCommentaireHandler(commentaireService)
	reactionHandler := handlers.NewReactionHandler(reactionService)
	utilisateurHandler := handlers.NewUtilisateurHandler(utilisateurService)
	jetonHandler := handlers.NewJetonHandler(jetonService)
	soapHandler := soap.NewHandler(jetonService, utilisateurService, utilisateurRepo, jetonRepo)

	// Routes
	router := mux.NewRouter()
	routes.InitRoutes(
		router,
		cfg.JWTSecret,
		authHandler,
		articleHandler,
		categorieHandler,
		commentaireHandler,
		reactionHandler,
		utilisateurHandler,
		jetonHandler,
		soapHandler,
	)

	return router, nil
}
