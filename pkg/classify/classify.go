package classify

import (
	"fmt"
	"strings"

	"github.com/QUAKO-CLOUDY/SeekEatz/pkg/menu"
)

// DefaultThreshold is the calorie count at or below which an item is removed.
const DefaultThreshold = 100

// The trailing space on "kid " keeps "Kid Meal" in scope without also
// matching words like "kidney".
var kidsPatterns = []string{"kid's", "kids", "kid ", "children", "kiddie"}

// Decision is the outcome of classifying one menu item.
type Decision struct {
	Remove bool
	Reason string
}

// Classifier decides whether a menu item should be removed. It is a pure
// function of the item: no state is carried between calls.
type Classifier struct {
	patterns  []string
	threshold int
}

// New builds a classifier with the given calorie threshold and any extra
// kids-menu patterns on top of the built-in set. Patterns are matched
// case-insensitively as substrings of the item's name and category.
func New(threshold int, extraPatterns []string) *Classifier {
	patterns := make([]string, 0, len(kidsPatterns)+len(extraPatterns))
	patterns = append(patterns, kidsPatterns...)
	for _, p := range extraPatterns {
		patterns = append(patterns, strings.ToLower(p))
	}
	return &Classifier{patterns: patterns, threshold: threshold}
}

// Default returns a classifier with the stock pattern set and threshold.
func Default() *Classifier {
	return New(DefaultThreshold, nil)
}

// Threshold returns the configured calorie threshold.
func (c *Classifier) Threshold() int {
	return c.threshold
}

// Classify applies the two removal rules in order. The order only affects
// which reason is reported when both rules would fire.
func (c *Classifier) Classify(item menu.Item) Decision {
	name := strings.ToLower(item.Name)
	category := strings.ToLower(item.Category)

	for _, pattern := range c.patterns {
		if strings.Contains(name, pattern) || strings.Contains(category, pattern) {
			return Decision{Remove: true, Reason: fmt.Sprintf("kids_item (cal=%d)", item.Calories())}
		}
	}

	if item.Calories() <= c.threshold {
		return Decision{Remove: true, Reason: fmt.Sprintf("low_cal (%d cal)", item.Calories())}
	}

	return Decision{}
}
