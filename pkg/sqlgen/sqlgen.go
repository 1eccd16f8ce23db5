// Package sqlgen renders the cleanup SQL script for the menu_items table.
// The output is a text artifact meant to be pasted into a SQL editor, not
// executed by this tool; string values are escaped by doubling single quotes
// and nothing is parameterized.
package sqlgen

import (
	"fmt"
	"os"
	"strings"
)

// Record identifies one removed item for SQL generation. Matching against the
// backing store is by (restaurant_name, name) text equality; menu items carry
// no stable identifier.
type Record struct {
	Restaurant string
	Name       string
	Reason     string
}

// IsKidsItem reports whether the record was removed by the kids-menu rule.
func (r Record) IsKidsItem() bool {
	return strings.Contains(r.Reason, "kids_item")
}

// Generator builds DELETE statements for a table with restaurant_name and
// name columns plus a JSONB macros column holding a calories field.
type Generator struct {
	Table     string
	Threshold int
}

// Script renders the cleanup SQL as printed to the console: a kids-item
// DELETE over exact (restaurant_name, name) pairs, a threshold DELETE via a
// numeric cast on the macros column, and a verification count.
func (g Generator) Script(records []Record) string {
	var b strings.Builder

	b.WriteString("-- Delete kids menu items\n")
	if conds := g.kidsConditions(records); len(conds) > 0 {
		fmt.Fprintf(&b, "DELETE FROM %s WHERE\n", g.Table)
		b.WriteString(strings.Join(conds, " OR\n"))
		b.WriteString("\n;\n")
	} else {
		b.WriteString("-- No kids items found\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "-- Delete low calorie / single ingredient items (<=%d cal)\n", g.Threshold)
	b.WriteString(g.thresholdDelete())

	b.WriteString("\n")
	b.WriteString("-- Verify: Count remaining items\n")
	b.WriteString(g.verifyCount())

	return b.String()
}

// FileScript renders the script written to disk, with a generated-file header
// carrying the total removal count and numbered step comments.
func (g Generator) FileScript(records []Record, totalRemoved int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "-- AUTO-GENERATED: Cleanup script for %s table\n", g.Table)
	b.WriteString("-- Generated by seekeatz clean\n")
	fmt.Fprintf(&b, "-- Items to remove: %d\n\n", totalRemoved)

	b.WriteString("-- Step 1: Delete kids menu items by name\n")
	if conds := g.kidsConditions(records); len(conds) > 0 {
		fmt.Fprintf(&b, "DELETE FROM %s WHERE\n", g.Table)
		b.WriteString(strings.Join(conds, " OR\n"))
		b.WriteString(";\n\n")
	}

	fmt.Fprintf(&b, "-- Step 2: Delete all items with calories <= %d\n", g.Threshold)
	b.WriteString(g.thresholdDelete())

	b.WriteString("\n-- Step 3: Verify remaining count\n")
	b.WriteString(g.verifyCount())

	return b.String()
}

// WriteFile writes the file rendition of the script to path.
func (g Generator) WriteFile(path string, records []Record, totalRemoved int) error {
	if err := os.WriteFile(path, []byte(g.FileScript(records, totalRemoved)), 0644); err != nil {
		return fmt.Errorf("failed to write SQL file %s: %w", path, err)
	}
	return nil
}

func (g Generator) kidsConditions(records []Record) []string {
	var conds []string
	for _, r := range records {
		if !r.IsKidsItem() {
			continue
		}
		conds = append(conds, fmt.Sprintf("  (restaurant_name = '%s' AND name = '%s')",
			quote(r.Restaurant), quote(r.Name)))
	}
	return conds
}

func (g Generator) thresholdDelete() string {
	return fmt.Sprintf("DELETE FROM %s\nWHERE (macros->>'calories')::int <= %d;\n", g.Table, g.Threshold)
}

func (g Generator) verifyCount() string {
	return fmt.Sprintf("SELECT COUNT(*) as remaining_items FROM %s;\n", g.Table)
}

// quote escapes a string literal for embedding in SQL text.
func quote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
