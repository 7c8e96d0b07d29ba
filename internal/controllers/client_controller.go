package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/middleware"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type ClientController struct {
	clientService services.ClientService
}

func NewClientController(clientService services.ClientService) *ClientController {
	return &ClientController{clientService: clientService}
}

// CreateClient godoc
// @Summary Create OAuth2 client
// @Description Create a new OAuth2 client owned by the authenticated user
// @Tags OAuth2 Clients
// @Accept json
// @Produce json
// @Param client body object{name=string,domain=string,scopes=string} true "Client details"
// @Success 201 {object} map[string]interface{} "Client created with client_id and client_secret"
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/clients [post]
func (cc *ClientController) CreateClient(c *gin.Context) {
	var req struct {
		Name   string `json:"name" binding:"required"`
		Domain string `json:"domain"`
		Scopes string `json:"scopes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}

	secret := uuid.New().String()
	hashedSecret, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "secret_generation_failed"))
		return
	}

	client := &models.OAuthClient{
		ID:     uuid.New().String(),
		Secret: string(hashedSecret),
		Name:   req.Name,
		Domain: req.Domain,
		Scopes: req.Scopes,
		UserID: c.GetUint(middleware.ContextUserID),
	}

	if err := cc.clientService.CreateClient(client); err != nil {
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "client_creation_failed"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"client_id":     client.ID,
		"client_secret": secret, // plain secret is returned only once
		"name":          client.Name,
		"scopes":        client.Scopes,
	})
}

// ListClients godoc
// @Summary List OAuth2 clients
// @Description Get all OAuth2 clients owned by the authenticated user
// @Tags OAuth2 Clients
// @Produce json
// @Success 200 {array} object "List of clients"
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/clients [get]
func (cc *ClientController) ListClients(c *gin.Context) {
	clients, err := cc.clientService.GetClientsByUserID(c.GetUint(middleware.ContextUserID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "failed_to_retrieve_clients"))
		return
	}

	response := make([]gin.H, 0, len(clients))
	for _, client := range clients {
		response = append(response, gin.H{
			"client_id": client.ID,
			"name":      client.Name,
			"domain":    client.Domain,
			"scopes":    client.Scopes,
		})
	}
	c.JSON(http.StatusOK, response)
}

// DeleteClient godoc
// @Summary Delete OAuth2 client
// @Description Delete an OAuth2 client owned by the authenticated user
// @Tags OAuth2 Clients
// @Param id path string true "Client ID"
// @Success 204 "Client deleted successfully"
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/clients/{id} [delete]
func (cc *ClientController) DeleteClient(c *gin.Context) {
	if err := cc.clientService.DeleteClient(c.Param("id"), c.GetUint(middleware.ContextUserID)); err != nil {
		c.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "client_not_found"))
		return
	}
	c.Status(http.StatusNoContent)
}
