// Package menu loads pizza menus from TOML files.
//
// A menu file lists pizzas as an array of tables:
//
//	[[pizza]]
//	name = "Meat Lovers' Pizza"
//	toppings = ["Ham", "Meatball", "Pepperoni", "Sausage", "Bacon"]
//	cheeses = ["Mozzarella", "Parmesan"]
//
//	[[pizza]]
//	toppings = ["Ham", "Pineapple"]
//
// Leaving out cheeses gives the standard cheese, cheeses = [] gives none.
// A cheese is either a catalog name or an inline table with name,
// fat_fraction and animal_origin keys.
package menu

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"k8s.io/utils/ptr"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
)

// Menu is an ordered list of pizzas, each with an optional name
type Menu struct {
	Items []models.PizzaRecord
}

type menuFile struct {
	Pizza []pizzaEntry `toml:"pizza"`
}

type pizzaEntry struct {
	Name     *string        `toml:"name"`
	Toppings []string       `toml:"toppings"`
	Cheeses  *[]cheeseEntry `toml:"cheeses"`
}

// cheeseEntry holds either a catalog name or an inline cheese table
type cheeseEntry struct {
	cheese models.Cheese
}

type inlineCheese struct {
	Name         string   `toml:"name"`
	FatFraction  *float64 `toml:"fat_fraction"`
	AnimalOrigin *string  `toml:"animal_origin"`
}

// UnmarshalTOML implements toml.Unmarshaler
func (c *cheeseEntry) UnmarshalTOML(value interface{}) error {
	switch v := value.(type) {
	case string:
		found, ok := models.LookupCheese(v)
		if !ok {
			return fmt.Errorf("unknown catalog cheese %q", v)
		}
		c.cheese = found
		return nil
	case map[string]interface{}:
		var inline inlineCheese
		for key, raw := range v {
			switch key {
			case "name":
				s, ok := raw.(string)
				if !ok {
					return fmt.Errorf("cheese name must be a string, got %T", raw)
				}
				inline.Name = s
			case "fat_fraction":
				f, err := toFloat(raw)
				if err != nil {
					return err
				}
				inline.FatFraction = ptr.To(f)
			case "animal_origin":
				s, ok := raw.(string)
				if !ok {
					return fmt.Errorf("cheese animal_origin must be a string, got %T", raw)
				}
				inline.AnimalOrigin = ptr.To(s)
			default:
				return fmt.Errorf("unknown cheese key %q", key)
			}
		}
		c.cheese = models.NewCheese(inline.Name, inline.FatFraction, inline.AnimalOrigin)
		return nil
	default:
		return fmt.Errorf("cheese must be a name or a table, got %T", value)
	}
}

func toFloat(raw interface{}) (float64, error) {
	switch n := raw.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("cheese fat_fraction must be a number, got %T", raw)
	}
}

// Parse decodes a TOML menu document
func Parse(data []byte) (*Menu, error) {
	var file menuFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}

	m := &Menu{Items: make([]models.PizzaRecord, 0, len(file.Pizza))}
	for i, entry := range file.Pizza {
		if entry.Toppings == nil {
			return nil, fmt.Errorf("pizza #%d: toppings is required", i+1)
		}
		toppings := make([]models.Topping, 0, len(entry.Toppings))
		for _, name := range entry.Toppings {
			topping, err := models.ParseTopping(name)
			if err != nil {
				return nil, fmt.Errorf("pizza #%d: %w", i+1, err)
			}
			toppings = append(toppings, topping)
		}

		record := models.PizzaRecord{Name: entry.Name, Toppings: toppings}
		if entry.Cheeses != nil {
			cheeses := make([]models.Cheese, 0, len(*entry.Cheeses))
			for _, c := range *entry.Cheeses {
				cheeses = append(cheeses, c.cheese)
			}
			record.Cheeses = &cheeses
		}
		m.Items = append(m.Items, record)
	}
	return m, nil
}

// Load reads and parses the menu file at path
func Load(path string) (*Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Default returns the house menu
func Default() *Menu {
	meatLovers := []models.Cheese{models.StandardCheese(), models.ParmesanCheese()}
	return &Menu{Items: []models.PizzaRecord{
		{
			Toppings: []models.Topping{models.Ham, models.Pineapple},
		},
		{
			Name:     ptr.To("Meat Lovers' Pizza"),
			Toppings: []models.Topping{models.Ham, models.Meatball, models.Pepperoni, models.Sausage, models.Bacon},
			Cheeses:  &meatLovers,
		},
	}}
}

// Descriptions returns the description of every pizza in menu order
func (m *Menu) Descriptions() []string {
	out := make([]string, len(m.Items))
	for i, item := range m.Items {
		out[i] = item.Description()
	}
	return out
}
