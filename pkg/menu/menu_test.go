package menu

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleDoc = `{
    "restaurant_name": "Casa Peña",
    "source_url": "https://example.com/casa-pena",
    "items": [
        {
            "name": "Grilled Chicken Bowl",
            "category": "Entrées",
            "price": 12.5,
            "macros": {"calories": 620, "protein": 45}
        },
        {
            "name": "House Salad",
            "category": "Sides"
        }
    ]
}`

func writeSample(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(sampleDoc), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeSample(t, t.TempDir(), "casa_pena_raw.json")

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if f.RestaurantName != "Casa Peña" {
		t.Errorf("RestaurantName = %q, want %q", f.RestaurantName, "Casa Peña")
	}
	if len(f.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(f.Items))
	}

	bowl := f.Items[0]
	if bowl.Name != "Grilled Chicken Bowl" || bowl.Category != "Entrées" {
		t.Errorf("unexpected first item: %q / %q", bowl.Name, bowl.Category)
	}
	if bowl.Calories() != 620 {
		t.Errorf("Calories() = %d, want 620", bowl.Calories())
	}

	salad := f.Items[1]
	if salad.HasCalories() {
		t.Error("item without macros should not report calories")
	}
	if salad.Calories() != DefaultCalories {
		t.Errorf("Calories() = %d, want sentinel %d", salad.Calories(), DefaultCalories)
	}
}

func TestLoadRestaurantNameFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mystery_raw.json")
	if err := os.WriteFile(path, []byte(`{"items": []}`), 0644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if f.RestaurantName != "mystery_raw.json" {
		t.Errorf("RestaurantName = %q, want file base name", f.RestaurantName)
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad_raw.json")
	if err := os.WriteFile(path, []byte(`{"items": [`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed JSON")
	}
}

func TestSavePreservesItemsAndExtras(t *testing.T) {
	path := writeSample(t, t.TempDir(), "casa_pena_raw.json")

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Drop the second item and save, as an apply run would.
	f.Items = f.Items[:1]
	if err := f.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("saved file is not valid JSON: %v", err)
	}

	// Unknown top-level fields survive the rewrite.
	if doc["source_url"] != "https://example.com/casa-pena" {
		t.Errorf("source_url not preserved: %v", doc["source_url"])
	}
	if doc["restaurant_name"] != "Casa Peña" {
		t.Errorf("restaurant_name not preserved: %v", doc["restaurant_name"])
	}

	items, ok := doc["items"].([]interface{})
	if !ok || len(items) != 1 {
		t.Fatalf("items = %v, want one surviving item", doc["items"])
	}

	// The surviving item keeps fields the model never parsed.
	item := items[0].(map[string]interface{})
	if item["price"] != 12.5 {
		t.Errorf("price not preserved: %v", item["price"])
	}
	macros := item["macros"].(map[string]interface{})
	if macros["protein"] != float64(45) {
		t.Errorf("macros.protein not preserved: %v", macros["protein"])
	}

	// Non-ASCII text is written as-is, not \u-escaped.
	if !strings.Contains(string(data), "Peña") || !strings.Contains(string(data), "Entrées") {
		t.Error("non-ASCII text was escaped in the saved file")
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b_raw.json", "a_raw.json", "notes.txt", "c.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(`{}`), 0644); err != nil {
			t.Fatal(err)
		}
	}

	paths, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}

	if len(paths) != 2 {
		t.Fatalf("Discover() returned %d paths, want 2", len(paths))
	}
	if filepath.Base(paths[0]) != "a_raw.json" || filepath.Base(paths[1]) != "b_raw.json" {
		t.Errorf("Discover() not sorted: %v", paths)
	}
}
