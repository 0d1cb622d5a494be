package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userModel "ibadahku_backend/internals/features/users/user/model"
)

const (
	testSecret        = "access-secret"
	testRefreshSecret = "refresh-secret"
)

func testProfile() *userModel.ProfileModel {
	return &userModel.ProfileModel{ID: uuid.New(), Email: "a@b.id", FullName: "Fulan", IsActive: true}
}

func TestSignTokenPair_AccessClaims(t *testing.T) {
	p := testProfile()
	now := time.Now().UTC()
	pair, err := signTokenPair(p, now, testSecret, testRefreshSecret)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(pair.Access, claims, func(*jwt.Token) (any, error) { return []byte(testSecret), nil })
	require.NoError(t, err)
	assert.Equal(t, "access", claims["typ"])
	assert.Equal(t, p.ID.String(), claims["id"])
	assert.Equal(t, "user", claims["role"])
	assert.WithinDuration(t, now.Add(accessTTLDefault), pair.AccessExp, time.Second)
	assert.WithinDuration(t, now.Add(refreshTTLDefault), pair.RefreshExp, time.Second)
}

func TestParseRefreshToken(t *testing.T) {
	p := testProfile()
	pair, err := signTokenPair(p, time.Now().UTC(), testSecret, testRefreshSecret)
	require.NoError(t, err)

	id, err := parseRefreshToken(pair.Refresh, testRefreshSecret)
	require.NoError(t, err)
	assert.Equal(t, p.ID, id)

	// access token tidak boleh dipakai sebagai refresh
	_, err = parseRefreshToken(pair.Access, testSecret)
	assert.ErrorIs(t, err, errRefreshInvalid)

	_, err = parseRefreshToken(pair.Refresh, "secret-lain")
	assert.ErrorIs(t, err, errRefreshInvalid)
}

func TestParseRefreshToken_Expired(t *testing.T) {
	p := testProfile()
	pair, err := signTokenPair(p, time.Now().UTC().Add(-8*24*time.Hour), testSecret, testRefreshSecret)
	require.NoError(t, err)

	_, err = parseRefreshToken(pair.Refresh, testRefreshSecret)
	assert.ErrorIs(t, err, errRefreshInvalid)
}

func TestRefreshTokensAreUnique(t *testing.T) {
	p := testProfile()
	now := time.Now().UTC()
	a, err := signTokenPair(p, now, testSecret, testRefreshSecret)
	require.NoError(t, err)
	b, err := signTokenPair(p, now, testSecret, testRefreshSecret)
	require.NoError(t, err)

	assert.NotEqual(t, a.Refresh, b.Refresh)
	assert.NotEqual(t,
		computeRefreshHash(a.Refresh, testRefreshSecret),
		computeRefreshHash(b.Refresh, testRefreshSecret))
}

func TestAccessTokenExpiry(t *testing.T) {
	p := testProfile()
	now := time.Now().UTC().Truncate(time.Second)
	pair, err := signTokenPair(p, now, testSecret, testRefreshSecret)
	require.NoError(t, err)

	assert.Equal(t, now.Add(accessTTLDefault).Unix(), accessTokenExpiry(pair.Access, testSecret, now).Unix())

	// signature salah -> fallback now + TTL
	fallbackNow := now.Add(time.Hour)
	assert.Equal(t, fallbackNow.Add(accessTTLDefault), accessTokenExpiry(pair.Access, "salah", fallbackNow))
}
