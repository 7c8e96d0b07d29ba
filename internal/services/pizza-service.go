package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/metrics"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"gorm.io/gorm"
)

// ErrPizzaNotFound is returned when no pizza has the requested ID
var ErrPizzaNotFound = errors.New("pizza not found")

// PizzaService provides methods to interact with the pizza database
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas ordered by ID
	GetAllPizzas() ([]models.PizzaRecord, error)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(id uint) (models.PizzaRecord, error)
	// CreatePizza stores a new pizza
	CreatePizza(pizza models.PizzaRecord) (models.PizzaRecord, error)
	// UpdatePizza replaces every field of a stored pizza
	UpdatePizza(id uint, pizza models.PizzaRecord) (models.PizzaRecord, error)
	// DeletePizza deletes a pizza by its ID
	DeletePizza(id uint) error
	// DescribePizza returns the description of a stored pizza
	DescribePizza(id uint) (string, error)
	// SeedPizzas stores the given pizzas when the table is empty
	SeedPizzas(pizzas []models.PizzaRecord) (int, error)
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas() ([]models.PizzaRecord, error) {
	var pizzas []models.PizzaRecord
	if err := s.db.Order("id").Find(&pizzas).Error; err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(id uint) (models.PizzaRecord, error) {
	var pizza models.PizzaRecord
	if err := s.db.First(&pizza, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.PizzaRecord{}, fmt.Errorf("%w: id %d", ErrPizzaNotFound, id)
		}
		return models.PizzaRecord{}, err
	}
	return pizza, nil
}

func (s *pizzaService) CreatePizza(pizza models.PizzaRecord) (models.PizzaRecord, error) {
	pizza.ID = 0
	if err := s.db.Create(&pizza).Error; err != nil {
		return models.PizzaRecord{}, err
	}
	return pizza, nil
}

func (s *pizzaService) UpdatePizza(id uint, pizza models.PizzaRecord) (models.PizzaRecord, error) {
	pizza.ID = id
	// "*" writes nil Name and Cheeses as NULL, so omitted cheeses fall back to the default
	result := s.db.Model(&pizza).Select("*").Omit("CreatedAt").Updates(&pizza)
	if result.Error != nil {
		return models.PizzaRecord{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PizzaRecord{}, fmt.Errorf("%w: id %d", ErrPizzaNotFound, id)
	}
	return s.GetPizzaByID(id)
}

func (s *pizzaService) DeletePizza(id uint) error {
	result := s.db.Delete(&models.PizzaRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrPizzaNotFound, id)
	}
	return nil
}

func (s *pizzaService) DescribePizza(id uint) (string, error) {
	pizza, err := s.GetPizzaByID(id)
	if err != nil {
		return "", err
	}
	metrics.RecordDescription(metrics.SourceStored)
	return pizza.Description(), nil
}

func (s *pizzaService) SeedPizzas(pizzas []models.PizzaRecord) (int, error) {
	var count int64
	if err := s.db.Model(&models.PizzaRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, pizza := range pizzas {
			pizza.ID = 0
			if err := tx.Create(&pizza).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(pizzas), nil
}
