package soap

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"luxew/internal/models"
	"luxew/internal/repository"
	"luxew/internal/services"
	"luxew/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockComptes struct {
	utilisateurs map[int]*models.Utilisateur
	prochainID   int
}

func (m *mockComptes) ajouter(pseudo, email, motDePasseClair string, roles ...string) *models.Utilisateur {
	hash, _ := utils.HacherMotDePasse(motDePasseClair)
	m.prochainID++
	u := &models.Utilisateur{ID: m.prochainID, Pseudo: pseudo, Email: email, MotDePasse: hash, Roles: roles}
	m.utilisateurs[u.ID] = u
	return u
}

func (m *mockComptes) Creer(_ context.Context, u *models.Utilisateur, role string) error {
	m.prochainID++
	u.ID = m.prochainID
	u.Roles = []string{role}
	m.utilisateurs[u.ID] = u
	return nil
}

func (m *mockComptes) PseudoExiste(_ context.Context, pseudo string) (bool, error) {
	for _, u := range m.utilisateurs {
		if u.Pseudo == pseudo {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockComptes) EmailExiste(_ context.Context, email string) (bool, error) {
	for _, u := range m.utilisateurs {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockComptes) ObtenirParEmail(_ context.Context, email string) (*models.Utilisateur, error) {
	for _, u := range m.utilisateurs {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.New("no rows")
}

func (m *mockComptes) ObtenirParPseudo(_ context.Context, pseudo string) (*models.Utilisateur, error) {
	for _, u := range m.utilisateurs {
		if u.Pseudo == pseudo {
			return u, nil
		}
	}
	return nil, errors.New("no rows")
}

func (m *mockComptes) ObtenirParID(_ context.Context, id int) (*models.Utilisateur, error) {
	u, ok := m.utilisateurs[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return u, nil
}

func (m *mockComptes) ObtenirTous(_ context.Context) ([]*models.Utilisateur, error) {
	var liste []*models.Utilisateur
	for _, u := range m.utilisateurs {
		liste = append(liste, u)
	}
	return liste, nil
}

func (m *mockComptes) ObtenirRoles(_ context.Context, utilisateurID int) ([]string, error) {
	u, ok := m.utilisateurs[utilisateurID]
	if !ok {
		return nil, errors.New("no rows")
	}
	return u.Roles, nil
}

func (m *mockComptes) RoleExiste(_ context.Context, nom string) (bool, error) {
	return nom == models.RoleVisiteur || nom == models.RoleEditeur || nom == models.RoleAdmin, nil
}

func (m *mockComptes) ObtenirTousRoles(_ context.Context) ([]models.Role, error) { return nil, nil }

func (m *mockComptes) Modifier(_ context.Context, id int, pseudo, email string) error {
	u, ok := m.utilisateurs[id]
	if !ok {
		return errors.New("no rows")
	}
	u.Pseudo = pseudo
	u.Email = email
	return nil
}

func (m *mockComptes) RemplacerRole(_ context.Context, utilisateurID int, role string) error {
	u, ok := m.utilisateurs[utilisateurID]
	if !ok {
		return errors.New("no rows")
	}
	u.Roles = []string{role}
	return nil
}

func (m *mockComptes) Supprimer(_ context.Context, id int) error {
	delete(m.utilisateurs, id)
	return nil
}

type mockJetons struct {
	jetons map[string]*models.Jeton
}

func (m *mockJetons) Creer(_ context.Context, utilisateurID int, jeton string, dureeJours int) (*models.Jeton, error) {
	j := &models.Jeton{
		Jeton: jeton, UtilisateurID: utilisateurID,
		DateCreation: time.Now(), DateExpiration: time.Now().AddDate(0, 0, dureeJours),
	}
	m.jetons[jeton] = j
	return j, nil
}

func (m *mockJetons) Valider(_ context.Context, jeton string) (bool, error) {
	_, ok := m.jetons[jeton]
	return ok, nil
}

func (m *mockJetons) ObtenirUtilisateurParJeton(_ context.Context, jeton string) (int, error) {
	j, ok := m.jetons[jeton]
	if !ok {
		return 0, repository.ErrJetonIntrouvable
	}
	return j.UtilisateurID, nil
}

func (m *mockJetons) ObtenirJetonValideParUtilisateur(_ context.Context, utilisateurID int) (string, error) {
	for _, j := range m.jetons {
		if j.UtilisateurID == utilisateurID {
			return j.Jeton, nil
		}
	}
	return "", repository.ErrJetonIntrouvable
}

func (m *mockJetons) Supprimer(_ context.Context, jeton string) error {
	delete(m.jetons, jeton)
	return nil
}

func (m *mockJetons) ObtenirTous(_ context.Context) ([]*models.Jeton, error) { return nil, nil }

func soapFixture(t *testing.T) (*Handler, *mockComptes, string) {
	t.Helper()
	comptes := &mockComptes{utilisateurs: make(map[int]*models.Utilisateur)}
	jetons := &mockJetons{jetons: make(map[string]*models.Jeton)}

	admin := comptes.ajouter("chef", "chef@example.com", "motdepasse", models.RoleAdmin)
	jetons.jetons["jeton-admin"] = &models.Jeton{
		Jeton: "jeton-admin", UtilisateurID: admin.ID,
		DateExpiration: time.Now().Add(24 * time.Hour),
	}

	jetonSvc := services.NewJetonService(jetons, comptes)
	utilisateurSvc := services.NewUtilisateurService(comptes)
	return NewHandler(jetonSvc, utilisateurSvc, comptes, jetons), comptes, "jeton-admin"
}

func appeler(t *testing.T, h *Handler, corps string) *httptest.ResponseRecorder {
	t.Helper()
	env := `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"><soap:Body>` +
		corps + `</soap:Body></soap:Envelope>`
	req := httptest.NewRequest(http.MethodPost, "/soap", strings.NewReader(env))
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSOAP_ListerUtilisateurs(t *testing.T) {
	h, comptes, jeton := soapFixture(t)
	comptes.ajouter("alice", "alice@example.com", "motdepasse", models.RoleVisiteur)

	rec := appeler(t, h, `<ListerUtilisateurs><jeton>`+jeton+`</jeton></ListerUtilisateurs>`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<ListerUtilisateursReponse>")
	assert.Contains(t, rec.Body.String(), "<pseudo>alice</pseudo>")
}

func TestSOAP_JetonInvalide(t *testing.T) {
	h, _, _ := soapFixture(t)

	rec := appeler(t, h, `<ListerUtilisateurs><jeton>faux</jeton></ListerUtilisateurs>`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "<soap:Fault>")
}

func TestSOAP_RoleInsuffisant(t *testing.T) {
	h, comptes, _ := soapFixture(t)
	visiteur := comptes.ajouter("alice", "alice@example.com", "motdepasse", models.RoleVisiteur)

	jetonSvc := services.NewJetonService(&mockJetons{jetons: map[string]*models.Jeton{
		"jeton-visiteur": {Jeton: "jeton-visiteur", UtilisateurID: visiteur.ID, DateExpiration: time.Now().Add(time.Hour)},
	}}, comptes)
	h.jetons = jetonSvc

	rec := appeler(t, h, `<ListerUtilisateurs><jeton>jeton-visiteur</jeton></ListerUtilisateurs>`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "<soap:Fault>")
}

func TestSOAP_AjouterUtilisateur(t *testing.T) {
	h, comptes, jeton := soapFixture(t)

	rec := appeler(t, h, `<AjouterUtilisateur>
		<jeton>`+jeton+`</jeton>
		<pseudo>nouveau</pseudo>
		<email>nouveau@example.com</email>
		<motDePasse>motdepasse</motDePasse>
		<role>editeur</role>
	</AjouterUtilisateur>`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<succes>true</succes>")

	u, err := comptes.ObtenirParPseudo(context.Background(), "nouveau")
	require.NoError(t, err)
	assert.Equal(t, []string{models.RoleEditeur}, u.Roles)
}

func TestSOAP_AuthentifierUtilisateur(t *testing.T) {
	h, _, jeton := soapFixture(t)

	rec := appeler(t, h, `<AuthentifierUtilisateur>
		<pseudo>chef</pseudo>
		<motDePasse>motdepasse</motDePasse>
	</AuthentifierUtilisateur>`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<succes>true</succes>")
	assert.Contains(t, rec.Body.String(), "<jeton>"+jeton+"</jeton>")

	// Mauvais mot de passe : pas de fault, succes=false + message.
	rec = appeler(t, h, `<AuthentifierUtilisateur>
		<pseudo>chef</pseudo>
		<motDePasse>mauvais</motDePasse>
	</AuthentifierUtilisateur>`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<succes>false</succes>")
	assert.Contains(t, rec.Body.String(), "identifiants invalides")
}

func TestSOAP_AuthentifierUtilisateur_SansJetonValide(t *testing.T) {
	h, comptes, _ := soapFixture(t)
	comptes.ajouter("alice", "alice@example.com", "motdepasse", models.RoleVisiteur)

	rec := appeler(t, h, `<AuthentifierUtilisateur>
		<pseudo>alice</pseudo>
		<motDePasse>motdepasse</motDePasse>
	</AuthentifierUtilisateur>`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<succes>false</succes>")
	assert.Contains(t, rec.Body.String(), "aucun jeton valide")
}

func TestSOAP_OperationInconnue(t *testing.T) {
	h, _, _ := soapFixture(t)

	rec := appeler(t, h, `<OperationMystere/>`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "<soap:Fault>")
}

func TestSOAP_SupprimerUtilisateur_PasSoiMeme(t *testing.T) {
	h, comptes, jeton := soapFixture(t)
	admin, err := comptes.ObtenirParPseudo(context.Background(), "chef")
	require.NoError(t, err)

	rec := appeler(t, h, `<SupprimerUtilisateur>
		<jeton>`+jeton+`</jeton>
		<id>`+strconv.Itoa(admin.ID)+`</id>
	</SupprimerUtilisateur>`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "<soap:Fault>")
}
