package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/go-oauth2/oauth2/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-jwt-secret-key-32-characters"

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.User{}, &models.OAuthClient{}, &models.OAuthToken{})
	require.NoError(t, err)

	return db
}

// createClient stores an owner with the given role and a client with a bcrypt-hashed secret
func createClient(t *testing.T, db *gorm.DB, role, clientID, secret string) {
	user := &models.User{Email: clientID + "@example.com", Name: clientID, Role: role}
	require.NoError(t, db.Create(user).Error)

	hashedSecret, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	require.NoError(t, err)

	client := &models.OAuthClient{
		ID:     clientID,
		Secret: string(hashedSecret),
		Domain: "http://localhost:8080",
		Scopes: "menu:write",
		UserID: user.ID,
	}
	require.NoError(t, db.Create(client).Error)
}

func requestToken(t *testing.T, service *OAuthService, form url.Values) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/oauth/token", service.HandleToken)

	req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestOAuthServerInitialization(t *testing.T) {
	oauthService := NewOAuthService(setupTestDB(t), testSecret)
	assert.NotNil(t, oauthService)
	assert.NotNil(t, oauthService.GetServer())
}

func TestClientCredentialsFlow(t *testing.T) {
	db := setupTestDB(t)
	createClient(t, db, models.RoleAdmin, "chef", "test_secret")
	oauthService := NewOAuthService(db, testSecret)

	w := requestToken(t, oauthService, url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"chef"},
		"client_secret": {"test_secret"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Bearer", response["token_type"])
	require.Contains(t, response, "access_token")

	accessToken := response["access_token"].(string)
	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "chef", claims["aud"])
	assert.NotEmpty(t, claims["uid"])

	var stored int64
	require.NoError(t, db.Model(&models.OAuthToken{}).Where("client_id = ?", "chef").Count(&stored).Error)
	assert.Equal(t, int64(1), stored)
}

func TestClientCredentialsRejected(t *testing.T) {
	db := setupTestDB(t)
	createClient(t, db, models.RoleUser, "waiter", "correct_secret")
	oauthService := NewOAuthService(db, testSecret)

	testCases := []struct {
		name string
		form url.Values
	}{
		{
			name: "wrong secret",
			form: url.Values{"grant_type": {"client_credentials"}, "client_id": {"waiter"}, "client_secret": {"wrong_secret"}},
		},
		{
			name: "unknown client",
			form: url.Values{"grant_type": {"client_credentials"}, "client_id": {"nobody"}, "client_secret": {"x"}},
		},
		{
			name: "grant type not allowed",
			form: url.Values{"grant_type": {"password"}, "client_id": {"waiter"}, "client_secret": {"correct_secret"}, "username": {"a"}, "password": {"b"}},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := requestToken(t, oauthService, tt.form)
			assert.True(t, w.Code >= 400, "expected error status, got %d", w.Code)
			assert.NotContains(t, w.Body.String(), "access_token")
		})
	}
}

func TestTokenForClientWithoutOwner(t *testing.T) {
	db := setupTestDB(t)
	hashedSecret, err := bcrypt.GenerateFromPassword([]byte("s"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.OAuthClient{ID: "orphan", Secret: string(hashedSecret)}).Error)

	oauthService := NewOAuthService(db, testSecret)
	_, err = oauthService.GetServer().Manager.GenerateAccessToken(context.Background(), oauth2.ClientCredentials, &oauth2.TokenGenerateRequest{
		ClientID:     "orphan",
		ClientSecret: "s",
	})
	assert.Error(t, err)
}

func TestClientStoreIntegration(t *testing.T) {
	db := setupTestDB(t)
	createClient(t, db, models.RoleAdmin, "integration_test_client", "integration_test_secret")

	clientStore := NewGormClientStore(db)
	ctx := context.Background()

	retrievedClient, err := clientStore.GetByID(ctx, "integration_test_client")
	require.NoError(t, err)
	assert.Equal(t, "integration_test_client", retrievedClient.GetID())

	verifier, ok := retrievedClient.(oauth2.ClientPasswordVerifier)
	require.True(t, ok)
	assert.True(t, verifier.VerifyPassword("integration_test_secret"))
	assert.False(t, verifier.VerifyPassword("guess"))

	_, err = clientStore.GetByID(ctx, "missing")
	assert.Error(t, err)
}

func TestTokenStoreRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	store := NewGormTokenStore(db)
	ctx := context.Background()

	oauthService := NewOAuthService(db, testSecret)
	createClient(t, db, models.RoleAdmin, "roundtrip", "secret")
	info, err := oauthService.GetServer().Manager.GenerateAccessToken(ctx, oauth2.ClientCredentials, &oauth2.TokenGenerateRequest{
		ClientID:     "roundtrip",
		ClientSecret: "secret",
	})
	require.NoError(t, err)

	loaded, err := store.GetByAccess(ctx, info.GetAccess())
	require.NoError(t, err)
	assert.Equal(t, "roundtrip", loaded.GetClientID())
	assert.Empty(t, loaded.GetUserID())

	require.NoError(t, store.RemoveByAccess(ctx, info.GetAccess()))
	_, err = store.GetByAccess(ctx, info.GetAccess())
	assert.Error(t, err)
}
