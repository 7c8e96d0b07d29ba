package models

import (
	"fmt"
	"strings"
)

// Pizza is a set of toppings and cheeses, built with NewPizza.
// The zero Pizza has no toppings and the standard cheese.
type Pizza struct {
	toppings []Topping
	// nil means no cheeses were given, empty means none on the pizza
	cheeses []Cheese
}

// PizzaOption configures optional parts of a Pizza
type PizzaOption func(*pizzaOptions)

type pizzaOptions struct {
	cheeses    []Cheese
	hasCheeses bool
}

// WithCheeses sets the cheeses of the pizza. Calling it with no cheeses
// produces a pizza without cheese; leaving it out gives the standard cheese.
func WithCheeses(cheeses ...Cheese) PizzaOption {
	return func(o *pizzaOptions) {
		o.cheeses = cheeses
		o.hasCheeses = true
	}
}

// NewPizza builds a pizza from its toppings. The slices are copied.
func NewPizza(toppings []Topping, opts ...PizzaOption) Pizza {
	var o pizzaOptions
	for _, opt := range opts {
		opt(&o)
	}

	p := Pizza{
		toppings: append([]Topping(nil), toppings...),
	}
	if o.hasCheeses {
		p.cheeses = append(make([]Cheese, 0, len(o.cheeses)), o.cheeses...)
	}
	return p
}

// Toppings returns a copy of the toppings in order
func (p Pizza) Toppings() []Topping {
	return append([]Topping(nil), p.toppings...)
}

// Cheeses returns a copy of the cheeses, the standard cheese when none were given
func (p Pizza) Cheeses() []Cheese {
	if p.cheeses == nil {
		return []Cheese{StandardCheese()}
	}
	return append(make([]Cheese, 0, len(p.cheeses)), p.cheeses...)
}

// ToppingsText joins the topping names with ", ", or returns "no toppings"
func (p Pizza) ToppingsText() string {
	if len(p.toppings) == 0 {
		return "no toppings"
	}
	names := make([]string, len(p.toppings))
	for i, t := range p.toppings {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

// Description summarizes the pizza. A nil or blank name is replaced by "This pizza".
func (p Pizza) Description(pizzaName *string) string {
	cheeses := p.Cheeses()
	names := make([]string, len(cheeses))
	for i, c := range cheeses {
		names[i] = c.Name()
	}
	cheeseStr := strings.Join(names, ", ")

	subject := "This pizza"
	if pizzaName != nil && strings.TrimSpace(*pizzaName) != "" {
		subject = *pizzaName
	}
	return fmt.Sprintf("%s is made with %s cheese, and has %s on it.", subject, cheeseStr, p.ToppingsText())
}
