package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/metrics"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/gin-gonic/gin"
)

// MenuController serves the topping and cheese catalogs and describes
// pizzas that are not stored
type MenuController struct{}

func NewMenuController() *MenuController {
	return &MenuController{}
}

// ListToppings godoc
// @Summary List toppings
// @Description Get the display names of every topping
// @Tags menu
// @Produce json
// @Success 200 {array} string
// @Router /api/v1/public/toppings [get]
func (mc *MenuController) ListToppings(c *gin.Context) {
	c.JSON(http.StatusOK, models.Toppings())
}

// ListCheeses godoc
// @Summary List catalog cheeses
// @Description Get the catalog cheeses with their descriptions
// @Tags menu
// @Produce json
// @Success 200 {array} models.CheeseResponse
// @Router /api/v1/public/cheeses [get]
func (mc *MenuController) ListCheeses(c *gin.Context) {
	cheeses := models.CatalogCheeses()
	response := make([]models.CheeseResponse, 0, len(cheeses))
	for _, cheese := range cheeses {
		response = append(response, models.CheeseResponse{Cheese: cheese, Description: cheese.Describe()})
	}
	c.JSON(http.StatusOK, response)
}

// DescribePizza godoc
// @Summary Describe a pizza
// @Description Describe a pizza built from the request without storing it
// @Tags menu
// @Accept json
// @Produce json
// @Param pizza body models.PizzaRequest true "Pizza"
// @Success 200 {object} models.PizzaResponse
// @Failure 400 {object} models.APIError
// @Router /api/v1/public/describe [post]
func (mc *MenuController) DescribePizza(c *gin.Context) {
	var req models.PizzaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrPizzaInvalidData, "Invalid request body", map[string]interface{}{
			"reason": err.Error(),
		}))
		return
	}

	metrics.RecordDescription(metrics.SourceAdHoc)
	c.JSON(http.StatusOK, models.NewPizzaResponse(req.ToRecord()))
}
