// Package catalog provides the food model, the pipe-delimited catalog format,
// and the file-backed food database for yada.
package catalog

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Food is a catalog item with an identifier, search keywords,
// and a calories-per-serving value.
type Food interface {
	Identifier() string
	Keywords() []string
	CaloriesPerServing() float64
}

// BasicFood is an atomic food item with fixed nutritional information.
type BasicFood struct {
	identifier string
	keywords   []string
	calories   float64
}

// NewBasicFood creates a basic food item.
func NewBasicFood(identifier string, keywords []string, calories float64) *BasicFood {
	return &BasicFood{identifier: identifier, keywords: keywords, calories: calories}
}

// Identifier returns the unique name of the food.
func (f *BasicFood) Identifier() string { return f.identifier }

// Keywords returns the search keywords for the food.
func (f *BasicFood) Keywords() []string { return f.keywords }

// CaloriesPerServing returns the calories in one serving.
func (f *BasicFood) CaloriesPerServing() float64 { return f.calories }

// Serving is a food taken a given number of times.
type Serving struct {
	Food     Food
	Servings float64
}

// Calories returns the calories contributed by this serving.
func (s Serving) Calories() float64 {
	return s.Food.CaloriesPerServing() * s.Servings
}

// CompositeFood is a food defined as a weighted combination of other foods.
type CompositeFood struct {
	identifier string
	keywords   []string
	components []Serving
}

// NewCompositeFood creates a composite food from its component servings.
func NewCompositeFood(identifier string, keywords []string, components []Serving) *CompositeFood {
	return &CompositeFood{identifier: identifier, keywords: keywords, components: components}
}

// Identifier returns the unique name of the composite food.
func (f *CompositeFood) Identifier() string { return f.identifier }

// Keywords returns the search keywords for the composite food.
func (f *CompositeFood) Keywords() []string { return f.keywords }

// Components returns the component servings of the composite food.
func (f *CompositeFood) Components() []Serving { return f.components }

// CaloriesPerServing sums the calories of all component servings.
// Components may themselves be composite foods.
func (f *CompositeFood) CaloriesPerServing() float64 {
	total := 0.0
	for _, serving := range f.components {
		total += serving.Calories()
	}
	return total
}

// Lowercase returns the Unicode-correct lowercase form of s.
// Used for search terms and keyword matching.
func Lowercase(s string) string {
	return cases.Lower(language.Und).String(s)
}

// SearchTerms derives the keyword set for a composite food from its name.
// Always exactly two entries: the lowercased name followed by the name itself.
func SearchTerms(name string) []string {
	return []string{Lowercase(name), name}
}
