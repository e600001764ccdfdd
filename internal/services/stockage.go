package services

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"luxew/internal/config"
	"luxew/internal/logger"
	"luxew/internal/models"

	"go.uber.org/zap"
)

// StockageMedias téléverse un fichier vers le stockage objet externe et
// renvoie son URL publique.
type StockageMedias interface {
	Televerser(ctx context.Context, fichier models.FichierMedia, publicID string) (string, error)
}

// CloudinaryService : client de l'API d'upload Cloudinary (upload signé).
type CloudinaryService struct {
	CloudName  string
	APIKey     string
	APISecret  string
	Dossier    string
	HTTPClient *http.Client
}

func NewCloudinaryService(cfg *config.Config) *CloudinaryService {
	return &CloudinaryService{
		CloudName:  cfg.CloudinaryCloudName,
		APIKey:     cfg.CloudinaryAPIKey,
		APISecret:  cfg.CloudinaryAPISecret,
		Dossier:    cfg.CloudinaryDossier,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type reponseUpload struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *CloudinaryService) Televerser(ctx context.Context, fichier models.FichierMedia, publicID string) (string, error) {
	horodatage := fmt.Sprintf("%d", time.Now().Unix())

	// Signature Cloudinary : sha1 des paramètres triés + secret.
	aSigner := fmt.Sprintf("folder=%s&public_id=%s&timestamp=%s%s",
		s.Dossier, publicID, horodatage, s.APISecret)
	somme := sha1.Sum([]byte(aSigner))
	signature := hex.EncodeToString(somme[:])

	var corps bytes.Buffer
	mw := multipart.NewWriter(&corps)
	part, err := mw.CreateFormFile("file", fichier.Nom)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(fichier.Contenu); err != nil {
		return "", err
	}
	champs := map[string]string{
		"api_key":   s.APIKey,
		"timestamp": horodatage,
		"signature": signature,
		"folder":    s.Dossier,
		"public_id": publicID,
	}
	for nom, valeur := range champs {
		if err := mw.WriteField(nom, valeur); err != nil {
			return "", err
		}
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	url := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/auto/upload", s.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &corps)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("échec de l'upload du média : %w", err)
	}
	defer resp.Body.Close()

	var res reponseUpload
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&res); err != nil {
		return "", fmt.Errorf("réponse Cloudinary illisible : %w", err)
	}
	if resp.StatusCode != http.StatusOK || res.SecureURL == "" {
		logger.WithCtx(ctx).Error("Upload Cloudinary refusé",
			zap.Int("status", resp.StatusCode),
			zap.String("message", res.Error.Message),
		)
		return "", fmt.Errorf("échec de l'upload du média : %s", res.Error.Message)
	}

	return res.SecureURL, nil
}
