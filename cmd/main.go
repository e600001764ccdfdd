package main

import (
	"net/http"

	"luxew/internal/app"
	"luxew/internal/config"
	"luxew/internal/logger"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title luXew API
// @version 1.0
// @description API du site d'actualités luXew : articles, catégories, commentaires, réactions, administration.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @BasePath /api
func main() {
	cfg, err := config.LoadConfig()
	logger.InitLogger()
	defer logger.Log.Sync()

	if err != nil {
		logger.Log.Fatal("Erreur de chargement de la configuration", zap.Error(err))
	}
	warnings, err := cfg.Validate()
	for _, w := range warnings {
		logger.Log.Warn("Configuration incomplète", zap.String("warning", w))
	}
	if err != nil {
		logger.Log.Fatal("Configuration invalide", zap.Error(err))
	}

	router, err := app.InitApp(cfg)
	if err != nil {
		logger.Log.Fatal("Erreur d'initialisation de l'application", zap.Error(err))
	}

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
	})

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	logger.Log.Info("Serveur démarré", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, corsMiddleware.Handler(router)); err != nil {
		logger.Log.Fatal("Erreur au démarrage du serveur", zap.Error(err))
	}
}
