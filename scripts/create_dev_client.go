package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/config"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/database"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/services"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	// Parse command line flags
	role := flag.String("role", models.RoleAdmin, "User role (admin or user)")
	flag.Parse()

	if *role != models.RoleAdmin && *role != models.RoleUser {
		log.Fatalf("Unknown role %q (expected admin or user)", *role)
	}

	_ = godotenv.Load()
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.InitDatabase(conf.Database)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Determine client credentials based on role
	clientID := "dev-client"
	clientSecret := "dev-secret-123"
	if *role == models.RoleUser {
		clientID = "user-client"
		clientSecret = "user-secret-123"
	}

	// Check if client already exists
	var existing models.OAuthClient
	if err := db.Where("id = ?", clientID).First(&existing).Error; err == nil {
		fmt.Printf("Development client already exists for role '%s'!\n", *role)
		printCredentials(conf, clientID, clientSecret)
		return
	}

	user, err := getOrCreateUser(services.NewUserService(db), *role)
	if err != nil {
		log.Fatalf("Failed to get user for role %s: %v", *role, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(clientSecret), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash secret:", err)
	}

	client := &models.OAuthClient{
		ID:     clientID,
		Secret: string(hash),
		Name:   fmt.Sprintf("Development %s Client", *role),
		Domain: "http://localhost",
		UserID: user.ID,
		Scopes: "read write",
	}
	if err := services.NewClientService(db).CreateClient(client); err != nil {
		log.Fatal("Failed to create client:", err)
	}

	fmt.Printf("✓ Development OAuth client created for role '%s'!\n", *role)
	fmt.Printf("User ID: %d\n", user.ID)
	printCredentials(conf, clientID, clientSecret)
}

// getOrCreateUser finds the development user for role, creating it on first use
func getOrCreateUser(users services.UserService, role string) (*models.User, error) {
	email := fmt.Sprintf("%s@pizza.com", role)

	user, err := users.GetUserByEmail(email)
	if err == nil {
		fmt.Printf("Found existing user: %s (ID: %d, Role: %s)\n", user.Email, user.ID, user.Role)
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = &models.User{
		Email: email,
		Name:  fmt.Sprintf("%s User", role),
		Role:  role,
	}
	if err := users.CreateUser(user); err != nil {
		return nil, err
	}
	fmt.Printf("Created new user: %s (ID: %d, Role: %s)\n", user.Email, user.ID, user.Role)
	return user, nil
}

func printCredentials(conf *config.Config, clientID, clientSecret string) {
	fmt.Printf("Client ID: %s\n", clientID)
	fmt.Printf("Client Secret: %s\n", clientSecret)
	fmt.Println("\nUse these credentials for testing:")
	fmt.Printf("curl -X POST http://%s:%d/oauth/token \\\n", conf.Host, conf.Port)
	fmt.Printf("  -d 'grant_type=client_credentials' \\\n")
	fmt.Printf("  -d 'client_id=%s' \\\n", clientID)
	fmt.Printf("  -d 'client_secret=%s'\n", clientSecret)
}
