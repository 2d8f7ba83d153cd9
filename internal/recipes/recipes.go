// Package recipes holds the static catalog of shipped rewrite recipes.
package recipes

// Info describes one recipe for catalog listings and lookup.
type Info struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Idempotent  bool     `json:"idempotent"`
	Variants    []string `json:"variants,omitempty"`
}

var catalog = []Info{
	{
		ID:          "logging",
		Title:       "Logger call normalization",
		Description: "Folds extra logging-call arguments into a single metadata object: log.level(message, { ... })",
		Idempotent:  true,
	},
	{
		ID:          "params",
		Title:       "Async route params migration",
		Description: "Migrates page components from synchronous route-parameter access to the Promise-based use(params) pattern",
		Idempotent:  true,
		Variants:    []string{"already_migrated", "params_prop", "use_params_hook", "unrecognized"},
	},
}

// All returns every shipped recipe in catalog order.
func All() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a recipe by ID.
func Lookup(id string) (Info, bool) {
	for _, info := range catalog {
		if info.ID == id {
			return info, true
		}
	}
	return Info{}, false
}

// IDs returns the catalog's recipe identifiers.
func IDs() []string {
	ids := make([]string, 0, len(catalog))
	for _, info := range catalog {
		ids = append(ids, info.ID)
	}
	return ids
}
