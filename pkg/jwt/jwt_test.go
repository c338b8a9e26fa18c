package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whitecarrot/careers-api/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

func TestGenerateYParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-123", "ana@acme.com", "careers-api", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, email, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
	assert.Equal(t, "ana@acme.com", email)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-123", "", "", 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro-secreto", token)
	assert.Error(t, err, "firma con otro secret debe rechazarse")
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-123", "", "", -5)
	require.NoError(t, err)

	_, _, err = jwt.Parse(testSecret, token)
	assert.Error(t, err)
}

func TestParse_TokenSinSubject(t *testing.T) {
	token, err := jwt.Generate(testSecret, "", "ana@acme.com", "", 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse(testSecret, token)
	assert.Error(t, err, "un token sin subject no identifica a nadie")
}

func TestParse_BasuraNoEsToken(t *testing.T) {
	_, _, err := jwt.Parse(testSecret, "no.es.jwt")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "user-123", "", "", 60)
	assert.Error(t, err)
	_, _, err = jwt.Parse("", "lo-que-sea")
	assert.Error(t, err)
}
