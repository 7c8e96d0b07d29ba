package services

import (
	"testing"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserAndClientServices(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.OAuthClient{}))

	users := NewUserService(db)
	clients := NewClientService(db)

	owner := &models.User{Email: "chef@example.com", Name: "Chef"}
	require.NoError(t, users.CreateUser(owner))
	assert.Equal(t, models.RoleUser, owner.Role)
	assert.ErrorIs(t, users.CreateUser(&models.User{Email: "chef@example.com"}), ErrUserExists)

	found, err := users.GetUserByEmail("chef@example.com")
	require.NoError(t, err)
	assert.Equal(t, owner.ID, found.ID)

	byID, err := users.GetUserByID(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chef", byID.Name)

	require.NoError(t, clients.CreateClient(&models.OAuthClient{ID: "kitchen", Secret: "hash", UserID: owner.ID}))

	owned, err := clients.GetClientsByUserID(owner.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "kitchen", owned[0].ID)

	assert.ErrorIs(t, clients.DeleteClient("kitchen", owner.ID+1), ErrClientNotFound)
	require.NoError(t, clients.DeleteClient("kitchen", owner.ID))

	owned, err = clients.GetClientsByUserID(owner.ID)
	require.NoError(t, err)
	assert.Empty(t, owned)
}
