package models

import (
	"strings"

	"k8s.io/utils/ptr"
)

// StandardCheese returns the house cheese used when a pizza is built without cheeses
func StandardCheese() Cheese {
	return NewCheese("Mozzarella", ptr.To(0.22), ptr.To("Italian buffalo"))
}

// ParmesanCheese returns a cow milk Parmesan
func ParmesanCheese() Cheese {
	return NewCheese("Parmesan", ptr.To(0.32), ptr.To("cow"))
}

// CatalogCheeses returns a fresh copy of every catalog cheese
func CatalogCheeses() []Cheese {
	return []Cheese{StandardCheese(), ParmesanCheese()}
}

// LookupCheese finds a catalog cheese by name, ignoring case
func LookupCheese(name string) (Cheese, bool) {
	trimmed := strings.TrimSpace(name)
	for _, c := range CatalogCheeses() {
		if strings.EqualFold(c.Name(), trimmed) {
			return c, true
		}
	}
	return Cheese{}, false
}
