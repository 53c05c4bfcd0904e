package codebook

import (
	"fmt"

	"github.com/anyamemensah/recode-cols/internal/domain/data"
)

// Rule is a single value substitution: cells equal to Old become New.
type Rule struct {
	Old any
	New any
}

// ColumnCodebook holds the substitutions for one dataset column.
// Rules keep first-seen order; a rule whose old value canonicalizes to an
// existing key overwrites that rule in place (last write wins).
type ColumnCodebook struct {
	rules []Rule
	index map[data.Key]int // canonical old value → rule position
}

// NewColumnCodebook creates an empty column codebook.
func NewColumnCodebook() *ColumnCodebook {
	return &ColumnCodebook{index: make(map[data.Key]int)}
}

// Set adds or overwrites the rule for old and reports whether an existing
// rule was overwritten. Old values must be comparable scalars.
func (c *ColumnCodebook) Set(old, label any) (bool, error) {
	key, err := data.Canon(old)
	if err != nil {
		return false, err
	}

	if pos, ok := c.index[key]; ok {
		c.rules[pos] = Rule{Old: old, New: label}
		return true, nil
	}

	c.index[key] = len(c.rules)
	c.rules = append(c.rules, Rule{Old: old, New: label})
	return false, nil
}

// Lookup returns the replacement for a canonical cell key.
func (c *ColumnCodebook) Lookup(key data.Key) (any, bool) {
	pos, ok := c.index[key]
	if !ok {
		return nil, false
	}
	return c.rules[pos].New, true
}

// Get returns the replacement for a raw old value.
// Values that cannot be canonicalized never match.
func (c *ColumnCodebook) Get(old any) (any, bool) {
	key, err := data.Canon(old)
	if err != nil {
		return nil, false
	}
	return c.Lookup(key)
}

// Len returns the number of rules.
func (c *ColumnCodebook) Len() int {
	return len(c.rules)
}

// Rules returns a copy of the rules in first-seen order.
func (c *ColumnCodebook) Rules() []Rule {
	rules := make([]Rule, len(c.rules))
	copy(rules, c.rules)
	return rules
}

// Codebook maps dataset column names to their value substitutions,
// preserving the order in which columns first appeared in the source.
type Codebook struct {
	order   []string
	columns map[string]*ColumnCodebook
}

// New creates an empty codebook.
func New() *Codebook {
	return &Codebook{columns: make(map[string]*ColumnCodebook)}
}

// Set adds or overwrites the substitution for a column, creating the
// column codebook on first use.
func (cb *Codebook) Set(column string, old, label any) error {
	col, ok := cb.columns[column]
	if !ok {
		col = NewColumnCodebook()
		cb.columns[column] = col
		cb.order = append(cb.order, column)
	}

	_, err := col.Set(old, label)
	return err
}

// Column returns the substitutions for one dataset column.
func (cb *Codebook) Column(name string) (*ColumnCodebook, bool) {
	col, ok := cb.columns[name]
	return col, ok
}

// Columns returns the column names in first-seen order.
func (cb *Codebook) Columns() []string {
	names := make([]string, len(cb.order))
	copy(names, cb.order)
	return names
}

// Len returns the number of columns with substitutions.
func (cb *Codebook) Len() int {
	return len(cb.order)
}

// IsEmpty reports whether the codebook has no substitutions at all.
func (cb *Codebook) IsEmpty() bool {
	return len(cb.order) == 0
}

// Invert returns a codebook mapping each column's new labels back to the
// old values. A column whose forward mapping is not injective cannot be
// reversed and returns an error.
func (cb *Codebook) Invert() (*Codebook, error) {
	out := New()
	for _, name := range cb.order {
		src := cb.columns[name]
		dst := NewColumnCodebook()

		for _, r := range src.rules {
			overwrote, err := dst.Set(r.New, r.Old)
			if err != nil {
				return nil, fmt.Errorf("invert column %q: %w", name, err)
			}
			if overwrote {
				return nil, fmt.Errorf("invert column %q: label %v stands for more than one value", name, r.New)
			}
		}

		out.columns[name] = dst
		out.order = append(out.order, name)
	}
	return out, nil
}

// Merge folds other into cb column by column. Overlapping old values take
// other's replacement (last write wins, consistent with Compile).
func (cb *Codebook) Merge(other *Codebook) error {
	for _, name := range other.order {
		for _, r := range other.columns[name].rules {
			if err := cb.Set(name, r.Old, r.New); err != nil {
				return fmt.Errorf("merge column %q: %w", name, err)
			}
		}
	}
	return nil
}
