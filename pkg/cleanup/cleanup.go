// Package cleanup runs the filter-and-report pass over the raw menu files:
// load, classify, partition, report, and in apply mode rewrite each file with
// the surviving items.
package cleanup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/QUAKO-CLOUDY/SeekEatz/pkg/classify"
	"github.com/QUAKO-CLOUDY/SeekEatz/pkg/menu"
	"github.com/QUAKO-CLOUDY/SeekEatz/pkg/sqlgen"
)

// Styles carries the lipgloss styles used by the report output. The zero
// value renders everything unstyled.
type Styles struct {
	Header  lipgloss.Style
	Removed lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
}

// Options configures a cleanup run.
type Options struct {
	DataDir    string
	Apply      bool
	Classifier *classify.Classifier
	Logger     *logrus.Logger
	Out        io.Writer
	Styles     Styles
}

// Summary is the aggregate outcome of one run.
type Summary struct {
	Files        int
	TotalRemoved int
	TotalKept    int
	Records      []sqlgen.Record
}

// Service processes menu files one at a time in sorted name order. Files are
// read and, in apply mode, rewritten within one step; there is no partial
// recovery, the first failure aborts the run.
type Service struct {
	opts Options
}

// New creates a cleanup service, filling in defaults for unset options.
func New(opts Options) *Service {
	if opts.Classifier == nil {
		opts.Classifier = classify.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Service{opts: opts}
}

type removedItem struct {
	item   menu.Item
	reason string
}

// Run executes the full pass and returns the aggregate summary. The per-file
// diagnostic blocks, the summary and the dry-run warning are written to
// opts.Out as processing goes.
func (s *Service) Run() (*Summary, error) {
	files, err := menu.Discover(s.opts.DataDir)
	if err != nil {
		return nil, err
	}
	s.opts.Logger.Debugf("discovered %d menu files in %s", len(files), s.opts.DataDir)

	summary := &Summary{Files: len(files)}
	s.printBanner(len(files))

	for _, path := range files {
		if err := s.processFile(path, summary); err != nil {
			return nil, err
		}
	}

	s.printSummary(summary)
	return summary, nil
}

func (s *Service) processFile(path string, summary *Summary) error {
	f, err := menu.Load(path)
	if err != nil {
		return err
	}

	var kept []menu.Item
	var removed []removedItem
	for _, item := range f.Items {
		decision := s.opts.Classifier.Classify(item)
		if decision.Remove {
			removed = append(removed, removedItem{item: item, reason: decision.Reason})
			summary.Records = append(summary.Records, sqlgen.Record{
				Restaurant: f.RestaurantName,
				Name:       item.Name,
				Reason:     decision.Reason,
			})
		} else {
			kept = append(kept, item)
		}
	}

	if len(removed) > 0 {
		s.printFileBlock(f, len(f.Items), kept, removed)
	}

	summary.TotalRemoved += len(removed)
	summary.TotalKept += len(kept)

	if s.opts.Apply && len(removed) > 0 {
		f.Items = kept
		if err := f.Save(); err != nil {
			return err
		}
		s.opts.Logger.Debugf("rewrote %s with %d items", path, len(kept))
		fmt.Fprintf(s.opts.Out, "    %s\n", s.opts.Styles.Success.Render("✅ File updated!"))
	}
	return nil
}

func (s *Service) printBanner(fileCount int) {
	mode := "(DRY RUN)"
	if s.opts.Apply {
		mode = "(APPLYING CHANGES)"
	}
	rule := strings.Repeat("=", 70)
	fmt.Fprintln(s.opts.Out, rule)
	fmt.Fprintln(s.opts.Out, s.opts.Styles.Header.Render("MENU DATA CLEANUP "+mode))
	fmt.Fprintln(s.opts.Out, rule)
	fmt.Fprintf(s.opts.Out, "Calorie threshold: <= %d\n", s.opts.Classifier.Threshold())
	fmt.Fprintf(s.opts.Out, "Files to process: %d\n\n", fileCount)
}

func (s *Service) printFileBlock(f *menu.File, original int, kept []menu.Item, removed []removedItem) {
	fmt.Fprintf(s.opts.Out, "\n--- %s (%s) ---\n", f.RestaurantName, filepath.Base(f.Path))
	fmt.Fprintf(s.opts.Out, "    Original: %d | Removing: %d | Keeping: %d\n", original, len(removed), len(kept))
	for _, r := range removed {
		line := fmt.Sprintf("✗ [%s cal] %s (%s) → %s", calorieLabel(r.item), r.item.Name, r.item.Category, r.reason)
		fmt.Fprintf(s.opts.Out, "    %s\n", s.opts.Styles.Removed.Render(line))
	}
}

func (s *Service) printSummary(summary *Summary) {
	rule := strings.Repeat("=", 70)
	fmt.Fprintf(s.opts.Out, "\n%s\n", rule)
	fmt.Fprintln(s.opts.Out, s.opts.Styles.Header.Render("SUMMARY"))
	fmt.Fprintln(s.opts.Out, rule)
	fmt.Fprintf(s.opts.Out, "Total items removed: %d\n", summary.TotalRemoved)
	fmt.Fprintf(s.opts.Out, "Total items kept:    %d\n", summary.TotalKept)

	if !s.opts.Apply {
		fmt.Fprintf(s.opts.Out, "\n%s\n", s.opts.Styles.Warning.Render("⚠️  DRY RUN: No files were modified."))
		fmt.Fprintln(s.opts.Out, "    Run with --apply to modify JSON files:")
		fmt.Fprintln(s.opts.Out, "    seekeatz clean --apply")
	}
}

// calorieLabel shows "?" for items without macro data; the classifier's
// sentinel only appears in reason strings.
func calorieLabel(item menu.Item) string {
	if !item.HasCalories() {
		return "?"
	}
	return strconv.Itoa(item.Calories())
}
