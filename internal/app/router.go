package app

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/auth"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/controllers"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/metrics"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/middleware"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/franciscosanchezn/gin-pizza-menu/docs" // registers the swagger spec
)

// NewRouter builds the Gin engine with every route of the menu API
func NewRouter(db *gorm.DB, jwtSecret string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), metrics.PrometheusMiddleware())

	pizzaController := controllers.NewPizzaController(services.NewPizzaService(db))
	menuController := controllers.NewMenuController()
	clientController := controllers.NewClientController(services.NewClientService(db))
	oauthService := auth.NewOAuthService(db, jwtSecret)

	router.GET("/health", healthCheckHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.POST("/oauth/token", oauthService.HandleToken)

	v1 := router.Group("/api/v1")
	{
		publicApi := v1.Group("/public")
		{
			publicApi.GET("/toppings", menuController.ListToppings)
			publicApi.GET("/cheeses", menuController.ListCheeses)
			publicApi.POST("/describe", menuController.DescribePizza)
			publicApi.GET("/pizzas", pizzaController.GetAllPizzas)
			publicApi.GET("/pizzas/:id", pizzaController.GetPizzaByID)
			publicApi.GET("/pizzas/:id/description", pizzaController.GetPizzaDescription)
		}

		protectedApi := v1.Group("/protected")
		protectedApi.Use(middleware.OAuth2Auth([]byte(jwtSecret)))
		{
			adminApi := protectedApi.Group("/admin")
			adminApi.Use(middleware.RequireRole(models.RoleAdmin))
			{
				adminApi.POST("/pizzas", pizzaController.CreatePizza)
				adminApi.PUT("/pizzas/:id", pizzaController.UpdatePizza)
				adminApi.DELETE("/pizzas/:id", pizzaController.DeletePizza)
				adminApi.POST("/clients", clientController.CreateClient)
				adminApi.GET("/clients", clientController.ListClients)
				adminApi.DELETE("/clients/:id", clientController.DeleteClient)
			}
		}
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-pizza-menu",
	})
}
