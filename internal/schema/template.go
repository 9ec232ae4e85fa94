package schema

import (
	"github.com/mealmajor/accountd/internal/models"
)

// Attribute is one template entry: an attribute key and the value a record
// receives for it when the key is missing.
type Attribute struct {
	Key     string `yaml:"key" validate:"required"`
	Default string `yaml:"default"`
}

// Template is the canonical attribute set every user record must eventually
// satisfy. Keys keep their declaration order so persisted output stays stable
// across runs.
type Template struct {
	keys     []string
	defaults map[string]string
}

// DefaultAttributes is the seed template: profile fields every account
// carries. The password default is empty on purpose; records only ever gain
// a password through registration.
func DefaultAttributes() []Attribute {
	return []Attribute{
		{Key: models.KeyUsername},
		{Key: "fullName"},
		{Key: models.KeyPassword},
		{Key: "diet"},
		{Key: "allergies"},
		{Key: "preferences"},
	}
}

// NewTemplate builds a template from the given attributes. Username and
// password keys are always part of the template even when absent from attrs.
func NewTemplate(attrs []Attribute) *Template {
	t := &Template{
		defaults: make(map[string]string),
	}
	for _, attr := range attrs {
		t.add(attr.Key, attr.Default)
	}
	t.add(models.KeyUsername, "")
	t.add(models.KeyPassword, "")
	return t
}

func (t *Template) add(key, defaultValue string) {
	if _, ok := t.defaults[key]; ok {
		return
	}
	t.keys = append(t.keys, key)
	t.defaults[key] = defaultValue
}

// Keys returns the template keys in declaration order.
func (t *Template) Keys() []string {
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// Default returns the default value for a template key.
func (t *Template) Default(key string) (string, bool) {
	value, ok := t.defaults[key]
	return value, ok
}

// Has reports whether the key is part of the template.
func (t *Template) Has(key string) bool {
	_, ok := t.defaults[key]
	return ok
}

// Migrate fills every template key missing from the record with the template
// default. Keys already present keep their value, template or not. Returns
// true when the record was changed.
func (t *Template) Migrate(record models.Record) bool {
	changed := false
	for _, key := range t.keys {
		if _, ok := record[key]; !ok {
			record[key] = t.defaults[key]
			changed = true
		}
	}
	return changed
}

// AddAttribute extends the template with a new key and default. Adding a key
// that already exists updates its default and reports false; a new key
// reports true. Retroactive migration of live records is the store's job.
func (t *Template) AddAttribute(key, defaultValue string) bool {
	if _, ok := t.defaults[key]; ok {
		t.defaults[key] = defaultValue
		return false
	}
	t.keys = append(t.keys, key)
	t.defaults[key] = defaultValue
	return true
}
