package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"
)

func TestNewPizzaCheeseDefault(t *testing.T) {
	t.Run("should default to the standard cheese", func(t *testing.T) {
		pizza := NewPizza([]Topping{Ham, Pineapple})

		cheeses := pizza.Cheeses()
		require.Len(t, cheeses, 1)
		assert.Equal(t, StandardCheese(), cheeses[0])
		assert.Equal(t, "Mozzarella", cheeses[0].Name())
	})

	t.Run("should keep an explicitly empty cheese list", func(t *testing.T) {
		pizza := NewPizza([]Topping{Basil}, WithCheeses())

		assert.NotNil(t, pizza.Cheeses())
		assert.Empty(t, pizza.Cheeses())
	})

	t.Run("should keep given cheeses in order", func(t *testing.T) {
		pizza := NewPizza(nil, WithCheeses(ParmesanCheese(), StandardCheese()))

		cheeses := pizza.Cheeses()
		require.Len(t, cheeses, 2)
		assert.Equal(t, "Parmesan", cheeses[0].Name())
		assert.Equal(t, "Mozzarella", cheeses[1].Name())
	})

	t.Run("should treat the zero pizza as plain with the standard cheese", func(t *testing.T) {
		var pizza Pizza

		assert.Equal(t, []Cheese{StandardCheese()}, pizza.Cheeses())
		assert.Equal(t, "This pizza is made with Mozzarella cheese, and has no toppings on it.", pizza.Description(nil))
	})
}

func TestNewPizzaOwnsItsSlices(t *testing.T) {
	toppings := []Topping{Ham, Onion}
	cheeses := []Cheese{ParmesanCheese()}

	pizza := NewPizza(toppings, WithCheeses(cheeses...))
	toppings[0] = Bacon
	cheeses[0] = NewCheese("Other", nil, nil)

	assert.Equal(t, []Topping{Ham, Onion}, pizza.Toppings())
	assert.Equal(t, "Parmesan", pizza.Cheeses()[0].Name())

	// accessors hand out copies
	pizza.Toppings()[0] = Bacon
	pizza.Cheeses()[0] = NewCheese("Other", nil, nil)
	assert.Equal(t, []Topping{Ham, Onion}, pizza.Toppings())
	assert.Equal(t, "Parmesan", pizza.Cheeses()[0].Name())
}

func TestToppingsText(t *testing.T) {
	testCases := []struct {
		name     string
		toppings []Topping
		expected string
	}{
		{name: "nil toppings", toppings: nil, expected: "no toppings"},
		{name: "empty toppings", toppings: []Topping{}, expected: "no toppings"},
		{name: "single topping", toppings: []Topping{Olives}, expected: "Olives"},
		{name: "keeps order and duplicates", toppings: []Topping{Pepper, Ham, Pepper}, expected: "Pepper, Ham, Pepper"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewPizza(tt.toppings).ToppingsText())
		})
	}
}

func TestPizzaDescription(t *testing.T) {
	t.Run("should use generic subject without name", func(t *testing.T) {
		pizza := NewPizza([]Topping{Ham, Pineapple})

		expected := "This pizza is made with Mozzarella cheese, and has Ham, Pineapple on it."
		assert.Equal(t, expected, pizza.Description(nil))
		assert.Equal(t, expected, pizza.Description(ptr.To("")))
		assert.Equal(t, expected, pizza.Description(ptr.To(" \t")))
		assert.Equal(t, expected, pizza.Description(nil))
	})

	t.Run("should use given name", func(t *testing.T) {
		pizza := NewPizza(
			[]Topping{Ham, Meatball, Pepperoni, Sausage, Bacon},
			WithCheeses(StandardCheese(), ParmesanCheese()),
		)

		assert.Equal(t,
			"Meat Lovers' Pizza is made with Mozzarella, Parmesan cheese, and has Ham, Meatball, Pepperoni, Sausage, Bacon on it.",
			pizza.Description(ptr.To("Meat Lovers' Pizza")))
	})

	t.Run("should describe pizza without cheese or toppings", func(t *testing.T) {
		pizza := NewPizza([]Topping{}, WithCheeses())

		assert.Equal(t, "This pizza is made with  cheese, and has no toppings on it.", pizza.Description(nil))
	})

	t.Run("should use cheese names not descriptions", func(t *testing.T) {
		pizza := NewPizza([]Topping{Basil}, WithCheeses(NewCheese("", nil, nil)))

		assert.Equal(t, "This pizza is made with  cheese, and has Basil on it.", pizza.Description(nil))
	})
}

func TestTopping(t *testing.T) {
	t.Run("should list all toppings by name", func(t *testing.T) {
		names := make([]string, 0)
		for _, topping := range Toppings() {
			names = append(names, topping.String())
		}
		assert.Equal(t, []string{
			"Pepperoni", "Sausage", "Basil", "Pepper", "Onion",
			"Meatball", "Ham", "Pineapple", "Olives", "Bacon",
		}, names)
	})

	t.Run("should parse names ignoring case", func(t *testing.T) {
		topping, err := ParseTopping("pineapple")
		require.NoError(t, err)
		assert.Equal(t, Pineapple, topping)

		_, err = ParseTopping("Anchovies")
		assert.Error(t, err)
	})

	t.Run("should render out of range values", func(t *testing.T) {
		assert.Equal(t, "Topping(42)", Topping(42).String())
	})

	t.Run("should encode as display names in JSON", func(t *testing.T) {
		data, err := json.Marshal([]Topping{Ham, Bacon})
		require.NoError(t, err)
		assert.JSONEq(t, `["Ham","Bacon"]`, string(data))

		var decoded []Topping
		require.NoError(t, json.Unmarshal([]byte(`["olives","Onion"]`), &decoded))
		assert.Equal(t, []Topping{Olives, Onion}, decoded)
	})
}

func TestPizzaRequest(t *testing.T) {
	t.Run("should default cheeses when absent", func(t *testing.T) {
		var req PizzaRequest
		require.NoError(t, json.Unmarshal([]byte(`{"toppings":["Ham","Pineapple"]}`), &req))

		resp := NewPizzaResponse(req.ToRecord())
		assert.Equal(t, "This pizza is made with Mozzarella cheese, and has Ham, Pineapple on it.", resp.Description)
		assert.Equal(t, "Ham, Pineapple", resp.ToppingsText)
	})

	t.Run("should keep explicit empty cheeses", func(t *testing.T) {
		var req PizzaRequest
		require.NoError(t, json.Unmarshal([]byte(`{"name":"Bare","toppings":[],"cheeses":[]}`), &req))

		pizza := req.ToPizza()
		assert.NotNil(t, pizza.Cheeses())
		assert.Empty(t, pizza.Cheeses())
		assert.Equal(t, "Bare is made with  cheese, and has no toppings on it.", pizza.Description(req.Name))
	})
}
