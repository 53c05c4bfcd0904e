package recode

import (
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/anyamemensah/recode-cols/internal/codebook"
	"github.com/anyamemensah/recode-cols/internal/domain/data"
	"github.com/anyamemensah/recode-cols/internal/domain/errors"
)

// Result is the outcome of one recode pass.
type Result struct {
	Dataset   *data.Dataset  // transformed copy of the input
	Replaced  int            // total cells substituted
	PerColumn map[string]int // substitutions per recoded column
	Skipped   []string       // codebook columns absent from the dataset
}

// Recode applies a codebook to a dataset and returns the transformed copy.
//
// For every codebook column present in the dataset, each cell whose
// canonical scalar form equals a rule's old value is replaced by the
// rule's new label. Unmatched cells, columns the codebook does not
// mention, and row order are untouched. Codebook columns absent from the
// dataset are skipped and reported in Result.Skipped. The input dataset is
// never mutated.
func Recode(ds *data.Dataset, cb *codebook.Codebook, opts ...Option) (*Result, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	out := ds.Copy()
	res := &Result{
		Dataset:   out,
		PerColumn: make(map[string]int),
	}

	type target struct {
		col   *data.Column
		rules *codebook.ColumnCodebook
	}
	targets := make([]target, 0, cb.Len())
	for _, name := range cb.Columns() {
		col, ok := out.Column(name)
		if !ok {
			res.Skipped = append(res.Skipped, name)
			slog.Debug("codebook column not in dataset, skipping",
				slog.String("column", name))
			continue
		}
		rules, _ := cb.Column(name)
		targets = append(targets, target{col: col, rules: rules})
	}

	counts := make([]int, len(targets))

	if cfg.workers > 1 {
		var g errgroup.Group
		g.SetLimit(cfg.workers)
		for i, tg := range targets {
			g.Go(func() error {
				n, err := recodeColumn(tg.col, tg.rules, cfg.lenient)
				counts[i] = n
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, tg := range targets {
			n, err := recodeColumn(tg.col, tg.rules, cfg.lenient)
			if err != nil {
				return nil, err
			}
			counts[i] = n
		}
	}

	for i, tg := range targets {
		res.PerColumn[tg.col.Name] = counts[i]
		res.Replaced += counts[i]
	}

	slog.Debug("dataset recoded",
		slog.String("dataset", ds.Name),
		slog.Int("cells_replaced", res.Replaced),
		slog.Int("columns_recoded", len(targets)),
		slog.Int("columns_skipped", len(res.Skipped)))

	return res, nil
}

// recodeColumn substitutes matching cells in place and returns the number
// of cells replaced.
func recodeColumn(col *data.Column, rules *codebook.ColumnCodebook, lenient bool) (int, error) {
	replaced := 0
	for i, v := range col.Values {
		key, err := data.Canon(v)
		if err != nil {
			if lenient {
				continue
			}
			return replaced, errors.NewTypeMismatch(col.Name, i, v, "cell is not a comparable scalar")
		}
		if label, ok := rules.Lookup(key); ok {
			col.Values[i] = label
			replaced++
		}
	}
	return replaced, nil
}
