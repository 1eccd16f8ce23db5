package menu

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// DefaultCalories is the sentinel used when an item carries no macro data.
// Items without a calorie count must never be classified as low-calorie.
const DefaultCalories = 999

// Macros is the nested nutrition block on a menu item. Only calories matters
// to the cleanup pass; the rest of the block travels with the item's raw JSON.
type Macros struct {
	Calories *int `json:"calories"`
}

// Item is a single menu entry. The original JSON object is retained verbatim
// so that a rewrite never mutates an item, only filters it out.
type Item struct {
	Name     string
	Category string
	Macros   Macros

	raw json.RawMessage
}

// UnmarshalJSON decodes the fields the classifier needs and keeps the raw
// object for write-back.
func (i *Item) UnmarshalJSON(data []byte) error {
	var probe struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		Macros   Macros `json:"macros"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	i.Name = probe.Name
	i.Category = probe.Category
	i.Macros = probe.Macros
	i.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON writes the item back exactly as it was read.
func (i Item) MarshalJSON() ([]byte, error) {
	if i.raw != nil {
		return i.raw, nil
	}
	// Items constructed in code (tests, fixtures) have no raw form.
	return json.Marshal(struct {
		Name     string `json:"name"`
		Category string `json:"category,omitempty"`
		Macros   Macros `json:"macros"`
	}{i.Name, i.Category, i.Macros})
}

// Calories returns the item's calorie count, or the high sentinel when the
// macro block or its calories field is absent.
func (i Item) Calories() int {
	if i.Macros.Calories == nil {
		return DefaultCalories
	}
	return *i.Macros.Calories
}

// HasCalories reports whether the item carries an explicit calorie count.
func (i Item) HasCalories() bool {
	return i.Macros.Calories != nil
}

// File is one restaurant's menu document.
type File struct {
	Path           string
	RestaurantName string
	Items          []Item

	// Top-level fields other than "items", carried through a save untouched.
	extra map[string]json.RawMessage
}

// Load reads and parses a menu document. When the document has no
// restaurant_name, the file's base name stands in for it.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	f := &File{Path: path, extra: doc}

	if raw, ok := doc["restaurant_name"]; ok {
		if err := json.Unmarshal(raw, &f.RestaurantName); err != nil {
			return nil, fmt.Errorf("invalid restaurant_name in %s: %w", path, err)
		}
	}
	if f.RestaurantName == "" {
		f.RestaurantName = filepath.Base(path)
	}

	if raw, ok := doc["items"]; ok {
		if err := json.Unmarshal(raw, &f.Items); err != nil {
			return nil, fmt.Errorf("invalid items in %s: %w", path, err)
		}
	}

	return f, nil
}

// Save rewrites the document in place, pretty-printed with HTML escaping off
// so non-ASCII menu text survives as written.
func (f *File) Save() error {
	doc := make(map[string]json.RawMessage, len(f.extra)+1)
	for k, v := range f.extra {
		doc[k] = v
	}

	items, err := json.Marshal(f.Items)
	if err != nil {
		return fmt.Errorf("failed to encode items for %s: %w", f.Path, err)
	}
	doc["items"] = items

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode %s: %w", f.Path, err)
	}

	if err := os.WriteFile(f.Path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.Path, err)
	}
	return nil
}

// Discover returns every raw menu file under dir in sorted name order.
func Discover(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*_raw.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}
