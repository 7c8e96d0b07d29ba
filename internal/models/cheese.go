package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"k8s.io/utils/ptr"
)

// unknownCheeseName is shown in place of a blank cheese name
const unknownCheeseName = "An Unknown"

var percentPrinter = message.NewPrinter(language.English)

// Cheese describes a cheese. The name is always set (it may be empty);
// the fat fraction and the animal origin are optional and nil when unknown.
// Cheese has no setters, build it with NewCheese.
type Cheese struct {
	name         string
	fatFraction  *float64
	animalOrigin *string
}

// NewCheese creates a cheese. fatFraction is a fraction (0.22 means 22%)
// and is stored as given, out of range values included.
func NewCheese(name string, fatFraction *float64, animalOrigin *string) Cheese {
	c := Cheese{name: name}
	if fatFraction != nil {
		c.fatFraction = ptr.To(*fatFraction)
	}
	if animalOrigin != nil {
		c.animalOrigin = ptr.To(*animalOrigin)
	}
	return c
}

// Name returns the cheese name, possibly empty
func (c Cheese) Name() string {
	return c.name
}

// FatFraction returns the fat fraction and whether it is known
func (c Cheese) FatFraction() (float64, bool) {
	if c.fatFraction == nil {
		return 0, false
	}
	return *c.fatFraction, true
}

// AnimalOrigin returns the source animal and whether it is known
func (c Cheese) AnimalOrigin() (string, bool) {
	if c.animalOrigin == nil {
		return "", false
	}
	return *c.animalOrigin, true
}

// Describe builds a sentence such as
// "Mozzarella cheese is made from Italian buffalo milk and has 22.00% fat milk."
func (c Cheese) Describe() string {
	var b strings.Builder

	displayName := c.name
	if strings.TrimSpace(displayName) == "" {
		displayName = unknownCheeseName
	}
	b.WriteString(displayName)
	b.WriteString(" cheese")

	origin := ptr.Deref(c.animalOrigin, "")
	hasOrigin := strings.TrimSpace(origin) != ""
	if hasOrigin {
		b.WriteString(" is made from ")
		b.WriteString(origin)
		b.WriteString(" milk")
	}

	if c.fatFraction != nil {
		if hasOrigin {
			b.WriteString(" and")
		}
		b.WriteString(" has ")
		b.WriteString(formatPercent(*c.fatFraction))
		b.WriteString(" fat milk")
	}

	b.WriteString(".")
	return b.String()
}

func formatPercent(fraction float64) string {
	return percentPrinter.Sprintf("%.2f%%", fraction*100)
}

// cheeseJSON is the wire form of a Cheese
type cheeseJSON struct {
	Name         string   `json:"name"`
	FatFraction  *float64 `json:"fat_fraction,omitempty"`
	AnimalOrigin *string  `json:"animal_origin,omitempty"`
}

// MarshalJSON implements json.Marshaler
func (c Cheese) MarshalJSON() ([]byte, error) {
	return json.Marshal(cheeseJSON{
		Name:         c.name,
		FatFraction:  c.fatFraction,
		AnimalOrigin: c.animalOrigin,
	})
}

// UnmarshalJSON implements json.Unmarshaler. Besides the object form it
// accepts a bare string naming a catalog cheese, e.g. "Parmesan".
// Unknown object keys and null are rejected.
func (c *Cheese) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errors.New("cheese must be a catalog name or an object, got null")
	}

	var catalogName string
	if err := json.Unmarshal(data, &catalogName); err == nil {
		found, ok := LookupCheese(catalogName)
		if !ok {
			return fmt.Errorf("unknown catalog cheese %q", catalogName)
		}
		*c = found
		return nil
	}

	var raw cheeseJSON
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&raw); err != nil {
		return fmt.Errorf("decode cheese: %w", err)
	}
	*c = NewCheese(raw.Name, raw.FatFraction, raw.AnimalOrigin)
	return nil
}
