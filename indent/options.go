package indent

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options is the read-only configuration surface of the engine.
type Options struct {
	// Unit is the base indentation width in columns.
	Unit int

	// AlignForms aligns else/catch/finally/yield under the keyword that
	// introduced the construct instead of stepping from the enclosing block.
	AlignForms bool

	// AlignParams aligns parameter and argument lists under the first
	// element instead of stepping from the statement line.
	AlignParams bool

	// ValueExprStep adds one extra step to multi-line value-expression
	// bodies, i.e. when a `=` sits between the anchor and the current line.
	ValueExprStep bool

	// Strategy is the default run-on strategy for the session.
	Strategy Strategy
}

// DefaultOptions mirrors the stock editor-mode defaults.
func DefaultOptions() Options {
	return Options{
		Unit:          2,
		AlignForms:    true,
		AlignParams:   true,
		ValueExprStep: true,
		Strategy:      Eager,
	}
}

func (o Options) normalized() Options {
	if o.Unit <= 0 {
		o.Unit = DefaultOptions().Unit
	}
	if o.Strategy > Eager {
		o.Strategy = Eager
	}
	return o
}

// optionsFile is the YAML shape; pointers keep absent keys at their defaults.
type optionsFile struct {
	Unit          *int    `yaml:"unit"`
	AlignForms    *bool   `yaml:"align-forms"`
	AlignParams   *bool   `yaml:"align-params"`
	ValueExprStep *bool   `yaml:"value-expression-step"`
	Strategy      *string `yaml:"run-on-strategy"`
}

// LoadOptions parses YAML configuration, overlaying it on DefaultOptions.
func LoadOptions(data []byte) (Options, error) {
	opts := DefaultOptions()

	var f optionsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return opts, fmt.Errorf("indent: parsing options: %w", err)
	}

	if f.Unit != nil {
		if *f.Unit <= 0 {
			return opts, fmt.Errorf("indent: unit must be positive, got %d", *f.Unit)
		}
		opts.Unit = *f.Unit
	}
	if f.AlignForms != nil {
		opts.AlignForms = *f.AlignForms
	}
	if f.AlignParams != nil {
		opts.AlignParams = *f.AlignParams
	}
	if f.ValueExprStep != nil {
		opts.ValueExprStep = *f.ValueExprStep
	}
	if f.Strategy != nil {
		strat, err := ParseStrategy(*f.Strategy)
		if err != nil {
			return opts, err
		}
		opts.Strategy = strat
	}
	return opts, nil
}

// LoadOptionsFile reads and parses a YAML options file.
func LoadOptionsFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultOptions(), fmt.Errorf("indent: reading options file: %w", err)
	}
	return LoadOptions(data)
}
