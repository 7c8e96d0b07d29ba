package models

import (
	"fmt"
	"strings"
)

// Topping is one of the fixed set of toppings a pizza can carry
type Topping int

const (
	Pepperoni Topping = iota
	Sausage
	Basil
	Pepper
	Onion
	Meatball
	Ham
	Pineapple
	Olives
	Bacon
)

var toppingNames = [...]string{
	Pepperoni: "Pepperoni",
	Sausage:   "Sausage",
	Basil:     "Basil",
	Pepper:    "Pepper",
	Onion:     "Onion",
	Meatball:  "Meatball",
	Ham:       "Ham",
	Pineapple: "Pineapple",
	Olives:    "Olives",
	Bacon:     "Bacon",
}

// String returns the display name of the topping
func (t Topping) String() string {
	if t < 0 || int(t) >= len(toppingNames) {
		return fmt.Sprintf("Topping(%d)", int(t))
	}
	return toppingNames[t]
}

// Toppings returns every known topping in declaration order
func Toppings() []Topping {
	all := make([]Topping, len(toppingNames))
	for i := range toppingNames {
		all[i] = Topping(i)
	}
	return all
}

// ParseTopping resolves a display name (case-insensitive) to its Topping
func ParseTopping(name string) (Topping, error) {
	trimmed := strings.TrimSpace(name)
	for i, n := range toppingNames {
		if strings.EqualFold(n, trimmed) {
			return Topping(i), nil
		}
	}
	return 0, fmt.Errorf("unknown topping %q", name)
}

// MarshalText encodes the topping as its display name
func (t Topping) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(toppingNames) {
		return nil, fmt.Errorf("unknown topping %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a display name into the topping
func (t *Topping) UnmarshalText(text []byte) error {
	parsed, err := ParseTopping(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
