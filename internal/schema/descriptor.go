// Package schema holds the declarative descriptors behind the generated API
// models and validates documents against them: required members must be
// present, declared members must match their declared type, and undeclared
// members are accepted only on open models as loosely typed extension values.
package schema

import "sort"

// Type is a declared JSON type of a schema property
type Type string

const (
	TypeString  Type = "string"
	TypeInteger Type = "integer"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
	TypeObject  Type = "object"
	TypeArray   Type = "array"
)

// Property describes one declared member of a model
type Property struct {
	Type Type
	// Format narrows string values: "date" or "date-time"
	Format string
	// Items describes array elements
	Items *Property
	// Properties and Required describe nested objects
	Properties map[string]Property
	Required   []string
	// Open nested objects accept undeclared members
	Open bool
}

// Descriptor is the declared shape of one generated model
type Descriptor struct {
	Name       string
	Properties map[string]Property
	Required   []string
	// Open models accept undeclared members as any-typed extension values
	Open bool
}

// Lookup returns the descriptor registered under the given model name
func Lookup(name string) (Descriptor, bool) {
	desc, ok := registry[name]
	return desc, ok
}

// Names lists all registered model names in stable order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
