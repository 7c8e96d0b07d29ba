package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/metrics"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/middleware"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PizzaController handles HTTP requests related to stored pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
	// GetPizzaDescription returns the description of a stored pizza
	GetPizzaDescription(c *gin.Context)
	// CreatePizza creates a new pizza
	CreatePizza(c *gin.Context)
	// UpdatePizza replaces a pizza
	UpdatePizza(c *gin.Context)
	// DeletePizza deletes a pizza by its ID
	DeletePizza(c *gin.Context)
}

type controller struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &controller{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get every pizza on the menu with its description
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.PizzaResponse
// @Failure 500 {object} models.APIError
// @Router /api/v1/public/pizzas [get]
func (c *controller) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas()
	if err != nil {
		logrus.WithError(err).Error("Failed to retrieve pizzas")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve pizzas"))
		return
	}

	response := make([]models.PizzaResponse, 0, len(pizzas))
	for _, pizza := range pizzas {
		response = append(response, describedResponse(pizza))
	}
	ctx.JSON(http.StatusOK, response)
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza by its ID
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.PizzaResponse
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/pizzas/{id} [get]
func (c *controller) GetPizzaByID(ctx *gin.Context) {
	pizza, ok := c.loadPizza(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, describedResponse(pizza))
}

// GetPizzaDescription godoc
// @Summary Describe a pizza
// @Description Get the sentence describing a stored pizza
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/pizzas/{id}/description [get]
func (c *controller) GetPizzaDescription(ctx *gin.Context) {
	pizzaID, ok := parsePizzaID(ctx)
	if !ok {
		return
	}

	description, err := c.service.DescribePizza(pizzaID)
	if err != nil {
		respondPizzaError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"description": description})
}

// CreatePizza godoc
// @Summary Create a new pizza
// @Description Add a pizza to the menu. Leaving out cheeses gives the standard cheese.
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body models.PizzaRequest true "Pizza"
// @Success 201 {object} models.PizzaResponse
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/pizzas [post]
func (c *controller) CreatePizza(ctx *gin.Context) {
	var req models.PizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrPizzaInvalidData, "Invalid request body", map[string]interface{}{
			"reason": err.Error(),
		}))
		return
	}

	created, err := c.service.CreatePizza(req.ToRecord())
	if err != nil {
		logrus.WithError(err).Error("Failed to create pizza")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to create pizza"))
		return
	}

	logrus.WithFields(logrus.Fields{
		"pizza_id": created.ID,
		"user_id":  ctx.GetUint(middleware.ContextUserID),
	}).Info("Pizza created")
	ctx.JSON(http.StatusCreated, describedResponse(created))
}

// UpdatePizza godoc
// @Summary Update a pizza
// @Description Replace a pizza. Leaving out cheeses restores the standard cheese.
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Param pizza body models.PizzaRequest true "Pizza"
// @Success 200 {object} models.PizzaResponse
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/pizzas/{id} [put]
func (c *controller) UpdatePizza(ctx *gin.Context) {
	pizzaID, ok := parsePizzaID(ctx)
	if !ok {
		return
	}

	var req models.PizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrPizzaInvalidData, "Invalid request body", map[string]interface{}{
			"reason": err.Error(),
		}))
		return
	}

	updated, err := c.service.UpdatePizza(pizzaID, req.ToRecord())
	if err != nil {
		respondPizzaError(ctx, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"pizza_id": updated.ID,
		"user_id":  ctx.GetUint(middleware.ContextUserID),
	}).Info("Pizza updated")
	ctx.JSON(http.StatusOK, describedResponse(updated))
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Description Delete a pizza by its ID
// @Tags pizzas
// @Param id path int true "Pizza ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/pizzas/{id} [delete]
func (c *controller) DeletePizza(ctx *gin.Context) {
	pizzaID, ok := parsePizzaID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeletePizza(pizzaID); err != nil {
		respondPizzaError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *controller) loadPizza(ctx *gin.Context) (models.PizzaRecord, bool) {
	pizzaID, ok := parsePizzaID(ctx)
	if !ok {
		return models.PizzaRecord{}, false
	}

	pizza, err := c.service.GetPizzaByID(pizzaID)
	if err != nil {
		respondPizzaError(ctx, err)
		return models.PizzaRecord{}, false
	}
	return pizza, true
}

// describedResponse renders a stored pizza and counts its description
func describedResponse(record models.PizzaRecord) models.PizzaResponse {
	metrics.RecordDescription(metrics.SourceStored)
	return models.NewPizzaResponse(record)
}

func parsePizzaID(ctx *gin.Context) (uint, bool) {
	pizzaID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid pizza ID format"))
		return 0, false
	}
	return uint(pizzaID), true
}

func respondPizzaError(ctx *gin.Context, err error) {
	if errors.Is(err, services.ErrPizzaNotFound) {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrPizzaNotFound, "Pizza not found"))
		return
	}
	logrus.WithError(err).Error("Pizza operation failed")
	ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Pizza operation failed"))
}
