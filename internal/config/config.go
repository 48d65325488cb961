// Package config defines the canonical, JSON-serializable configuration
// model for the warehouse pipeline. It is intentionally small, explicit and
// dependency-free: pipelines are decoded from disk with the standard
// library and passed through the program without additional glue code.
//
// Example (trimmed):
//
//	{
//	  "job": "sales",
//	  "source": {
//	    "orders":   { "path": "data/orders.csv" },
//	    "products": { "path": "data/products.csv" }
//	  },
//	  "transform": { "date_layout": "2006-01-02" },
//	  "storage": { "kind": "sqlite", "db": { "dsn": "file:warehouse.db" } }
//	}
package config

import "encoding/json"

// Pipeline is the top-level object decoded from a pipeline file under
// configs/pipelines/*.json.
type Pipeline struct {
	// Job labels the run for metrics and log lines.
	Job string `json:"job"`

	// Source names the two raw inputs.
	Source Source `json:"source"`

	// Transform tunes the transform stage.
	Transform Transform `json:"transform"`

	// Storage selects and configures the destination warehouse.
	Storage Storage `json:"storage"`
}

// Source holds the order and product file inputs.
type Source struct {
	Orders   SourceFile `json:"orders"`
	Products SourceFile `json:"products"`
}

// SourceFile configures one CSV input.
type SourceFile struct {
	// Path is the local filesystem path to the input file.
	Path string `json:"path"`

	// Options is a free-form map interpreted by the CSV reader. Typical
	// keys: comma (string), trim_space (bool), header_map (object).
	Options Options `json:"options"`
}

// Transform holds transform-stage settings.
type Transform struct {
	// DateLayout is an additional OrderDate layout (Go reference time
	// format) tried after ISO 2006-01-02.
	DateLayout string `json:"date_layout"`
}

// Storage selects the warehouse backend.
type Storage struct {
	// Kind selects the backend: "sqlite", "postgres", "mysql" or "mssql".
	Kind string `json:"kind"`

	// DB configures the selected backend.
	DB DBConfig `json:"db"`
}

// DBConfig configures the destination database connection.
type DBConfig struct {
	// DSN is the connection string, interpreted by the backend driver.
	DSN string `json:"dsn"`
}

// Options is a small helper for fetching typed values from free-form JSON
// maps. It performs only minimal coercion and returns the provided default
// when a key is absent or of an unexpected type.
type Options map[string]any

// String returns the string value for key or def.
func (o Options) String(key, def string) string {
	if v, ok := o[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// Bool returns the bool value for key or def.
func (o Options) Bool(key string, def bool) bool {
	if v, ok := o[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// Rune returns the first rune of a string value for key, or def. Useful for
// single-character settings such as a CSV delimiter.
func (o Options) Rune(key string, def rune) rune {
	if v, ok := o[key]; ok {
		if s, ok := v.(string); ok && len(s) > 0 {
			return []rune(s)[0]
		}
	}
	return def
}

// StringMap returns a map[string]string for key when the value is an object
// whose values are strings. Non-string values are ignored.
func (o Options) StringMap(key string) map[string]string {
	res := map[string]string{}
	if v, ok := o[key]; ok {
		if m, ok := v.(map[string]any); ok {
			for k, vv := range m {
				if s, ok := vv.(string); ok {
					res[k] = s
				}
			}
		}
	}
	return res
}

// UnmarshalJSON makes a missing or null options object decode to a non-nil,
// empty Options map, so call sites need no nil checks.
func (o *Options) UnmarshalJSON(b []byte) error {
	var tmp map[string]any
	if len(b) == 0 || string(b) == "null" {
		*o = Options{}
		return nil
	}
	if err := json.Unmarshal(b, &tmp); err != nil {
		return err
	}
	*o = Options(tmp)
	return nil
}
