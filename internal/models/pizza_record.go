package models

import (
	"time"

	"gorm.io/gorm"
)

// PizzaRecord is a named pizza stored in the menu database.
// Name and Cheeses are nullable; a NULL Cheeses column means the pizza
// was saved without cheeses and gets the standard cheese when loaded.
type PizzaRecord struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      *string   `json:"name,omitempty"`
	Toppings  []Topping `json:"toppings" gorm:"type:text;serializer:json;not null"`
	Cheeses   *[]Cheese `json:"cheeses,omitempty" gorm:"type:text;serializer:json"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PizzaRecord) TableName() string {
	return "pizzas"
}

// BeforeSave stores missing toppings as an empty list
func (r *PizzaRecord) BeforeSave(tx *gorm.DB) error {
	if r.Toppings == nil {
		r.Toppings = []Topping{}
	}
	return nil
}

// ToPizza rebuilds the domain pizza, applying the cheese default
func (r PizzaRecord) ToPizza() Pizza {
	if r.Cheeses == nil {
		return NewPizza(r.Toppings)
	}
	return NewPizza(r.Toppings, WithCheeses(*r.Cheeses...))
}

// Description describes the stored pizza under its own name
func (r PizzaRecord) Description() string {
	return r.ToPizza().Description(r.Name)
}

// PizzaRequest is the JSON body used to describe or create a pizza.
// Toppings must be present (an empty list is fine); cheeses may be left out.
type PizzaRequest struct {
	Name     *string   `json:"name,omitempty" example:"Meat Lovers' Pizza"`
	Toppings []Topping `json:"toppings" binding:"required" swaggertype:"array,string" example:"Ham,Pineapple"`
	Cheeses  *[]Cheese `json:"cheeses,omitempty" swaggertype:"array,object"`
}

// ToPizza builds the pizza the request describes
func (r PizzaRequest) ToPizza() Pizza {
	return r.ToRecord().ToPizza()
}

// ToRecord converts the request into an unsaved record
func (r PizzaRequest) ToRecord() PizzaRecord {
	return PizzaRecord{
		Name:     r.Name,
		Toppings: r.Toppings,
		Cheeses:  r.Cheeses,
	}
}

// PizzaResponse is a pizza with its derived texts
type PizzaResponse struct {
	ID           uint      `json:"id,omitempty"`
	Name         *string   `json:"name,omitempty"`
	Toppings     []Topping `json:"toppings" swaggertype:"array,string"`
	Cheeses      []Cheese  `json:"cheeses" swaggertype:"array,object"`
	ToppingsText string    `json:"toppings_text"`
	Description  string    `json:"description"`
}

// NewPizzaResponse renders a record for the API
func NewPizzaResponse(r PizzaRecord) PizzaResponse {
	p := r.ToPizza()
	return PizzaResponse{
		ID:           r.ID,
		Name:         r.Name,
		Toppings:     p.Toppings(),
		Cheeses:      p.Cheeses(),
		ToppingsText: p.ToppingsText(),
		Description:  p.Description(r.Name),
	}
}

// CheeseResponse is a catalog cheese with its description
type CheeseResponse struct {
	Cheese      Cheese `json:"cheese" swaggertype:"object"`
	Description string `json:"description"`
}
