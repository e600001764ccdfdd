package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagination_Defauts(t *testing.T) {
	page, limite, err := pagination(httptest.NewRequest("GET", "/api/articles", nil))
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limite)

	// Non numérique : on retombe sur le défaut, comme une valeur absente.
	page, limite, err = pagination(httptest.NewRequest("GET", "/api/articles?page=abc&limite=xyz", nil))
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limite)

	page, limite, err = pagination(httptest.NewRequest("GET", "/api/articles?page=3&limite=25", nil))
	require.NoError(t, err)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limite)
}

func TestPagination_ValeursExplicitesInvalides(t *testing.T) {
	// Un entier explicite inférieur à 1 est une erreur, pas un défaut.
	_, _, err := pagination(httptest.NewRequest("GET", "/api/articles?page=-1", nil))
	assert.Error(t, err)

	_, _, err = pagination(httptest.NewRequest("GET", "/api/articles?page=-1&limite=-5", nil))
	assert.Error(t, err)

	_, _, err = pagination(httptest.NewRequest("GET", "/api/articles?limite=0", nil))
	assert.Error(t, err)
}

func TestIdOptionnel(t *testing.T) {
	id, err := idOptionnel(httptest.NewRequest("GET", "/api/reactions/utilisateur?articleId=7", nil), "articleId")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, 7, *id)

	id, err = idOptionnel(httptest.NewRequest("GET", "/api/reactions/utilisateur", nil), "articleId")
	require.NoError(t, err)
	assert.Nil(t, id)

	// Une valeur présente mais invalide nomme le paramètre fautif.
	_, err = idOptionnel(httptest.NewRequest("GET", "/api/reactions/utilisateur?articleId=abc", nil), "articleId")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "articleId")
}
