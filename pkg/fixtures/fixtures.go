// Package fixtures builds sets of fakes from YAML documents.
//
//	models:
//	  alice:
//	    props: {id: u1, name: alice}
//	  stale:
//	    props: {id: u2}
//	    save: {error_type: condition_failed}
//	chains:
//	  findAll:
//	    result_models: [alice, stale]
//	  broken:
//	    err: connection reset
//	    error_type: error
//
// err holds any value and is passed through untouched unless error_type says
// otherwise: "error" turns it into an error with that text, and the names
// not_found, condition_failed, validation and connection select the
// matching sentinel from pkg/errors.
//
// result_model and result_models refer to models of the same document and
// take precedence over result.
package fixtures

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/chadxz/waterline-fakes/pkg/errors"
	"github.com/chadxz/waterline-fakes/pkg/fakes"
	"github.com/chadxz/waterline-fakes/pkg/logging"
	"github.com/chadxz/waterline-fakes/pkg/scheduler"
)

// Document is the YAML shape of a fixture file
type Document struct {
	Models map[string]ModelFixture `yaml:"models"`
	Chains map[string]ChainFixture `yaml:"chains"`
}

// ModelFixture describes one model fake
type ModelFixture struct {
	Props   map[string]any `yaml:"props"`
	Destroy Outcome        `yaml:"destroy"`
	Save    Outcome        `yaml:"save"`
}

// ChainFixture describes one chainable fake
type ChainFixture struct {
	Outcome `yaml:",inline"`
}

// Outcome is the configured result of an operation
type Outcome struct {
	Err          any      `yaml:"err"`
	ErrorType    string   `yaml:"error_type"`
	Result       any      `yaml:"result"`
	ResultModel  string   `yaml:"result_model"`
	ResultModels []string `yaml:"result_models"`
}

var sentinels = map[string]error{
	"not_found":        errors.ErrItemNotFound,
	"condition_failed": errors.ErrConditionFailed,
	"validation":       errors.ErrValidation,
	"connection":       errors.ErrConnection,
}

// Option configures loading
type Option func(*loader)

// WithScheduler makes every fake of the set use s
func WithScheduler(s scheduler.Scheduler) Option {
	return func(l *loader) {
		l.sched = s
	}
}

// Set holds the fakes built from a document
type Set struct {
	models map[string]*fakes.Model
	chains map[string]fakes.QueryFunc
}

// Model returns the named model fake, or nil
func (s *Set) Model(name string) *fakes.Model {
	return s.models[name]
}

// Chain returns the named chainable fake, or nil
func (s *Set) Chain(name string) fakes.QueryFunc {
	return s.chains[name]
}

// ModelNames returns the model names in sorted order
func (s *Set) ModelNames() []string {
	return sortedKeys(s.models)
}

// ChainNames returns the chain names in sorted order
func (s *Set) ChainNames() []string {
	return sortedKeys(s.chains)
}

// Parse builds a set from YAML bytes
func Parse(data []byte, opts ...Option) (*Set, error) {
	return Load(bytes.NewReader(data), opts...)
}

// LoadFile builds a set from a YAML file
func LoadFile(path string, opts ...Option) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture file: %w", err)
	}
	defer f.Close()

	set, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Load builds a set from a YAML stream. An empty stream yields an empty set.
func Load(r io.Reader, opts ...Option) (*Set, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidFixture, err)
	}
	return Build(doc, opts...)
}

// Build creates the fakes described by doc
func Build(doc Document, opts ...Option) (*Set, error) {
	l := &loader{
		doc:      doc,
		building: make(map[string]bool),
		set: &Set{
			models: make(map[string]*fakes.Model, len(doc.Models)),
			chains: make(map[string]fakes.QueryFunc, len(doc.Chains)),
		},
	}
	for _, opt := range opts {
		opt(l)
	}

	for _, name := range sortedKeys(doc.Models) {
		if _, err := l.model(name); err != nil {
			return nil, err
		}
	}

	for _, name := range sortedKeys(doc.Chains) {
		fx := doc.Chains[name]
		errValue, err := resolveErr(fx.Outcome)
		if err != nil {
			return nil, fmt.Errorf("chain %s: %w", name, err)
		}
		result, err := l.result(fx.Outcome, "")
		if err != nil {
			return nil, fmt.Errorf("chain %s: %w", name, err)
		}
		l.set.chains[name] = fakes.NewChainable(&fakes.ChainOptions{
			Err:       errValue,
			Result:    result,
			Scheduler: l.sched,
			Name:      name,
		})
	}

	logging.WithOp("fixtures").
		WithField("models", len(l.set.models)).
		WithField("chains", len(l.set.chains)).
		Debug("fixture set built")

	return l.set, nil
}

type loader struct {
	doc      Document
	sched    scheduler.Scheduler
	set      *Set
	building map[string]bool
}

func (l *loader) model(name string) (*fakes.Model, error) {
	if m, ok := l.set.models[name]; ok {
		return m, nil
	}
	fx, ok := l.doc.Models[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown model %q", errors.ErrInvalidFixture, name)
	}
	if l.building[name] {
		return nil, fmt.Errorf("%w: model %q refers to itself through save results", errors.ErrInvalidFixture, name)
	}
	l.building[name] = true
	defer delete(l.building, name)

	destroyErr, err := resolveErr(fx.Destroy)
	if err != nil {
		return nil, fmt.Errorf("model %s destroy: %w", name, err)
	}
	saveErr, err := resolveErr(fx.Save)
	if err != nil {
		return nil, fmt.Errorf("model %s save: %w", name, err)
	}
	saveResult, err := l.result(fx.Save, name)
	if err != nil {
		return nil, fmt.Errorf("model %s save: %w", name, err)
	}

	m := fakes.NewModel(&fakes.ModelOptions{
		Props:     fx.Props,
		Destroy:   fakes.DestroyOptions{Err: destroyErr},
		Save:      fakes.SaveOptions{Err: saveErr, Result: saveResult},
		Scheduler: l.sched,
		Name:      name,
	})
	l.set.models[name] = m
	return m, nil
}

// result resolves an outcome's result. self names the model being built; a
// result_model pointing at it means the default self-result.
func (l *loader) result(o Outcome, self string) (any, error) {
	switch {
	case len(o.ResultModels) > 0:
		list := make([]any, len(o.ResultModels))
		for i, name := range o.ResultModels {
			m, err := l.model(name)
			if err != nil {
				return nil, err
			}
			list[i] = m
		}
		return list, nil
	case o.ResultModel != "":
		if o.ResultModel == self {
			return nil, nil
		}
		m, err := l.model(o.ResultModel)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return o.Result, nil
	}
}

func resolveErr(o Outcome) (any, error) {
	switch o.ErrorType {
	case "":
		return o.Err, nil
	case "error":
		if o.Err == nil {
			return nil, fmt.Errorf("%w: error_type error needs err", errors.ErrInvalidFixture)
		}
		return errors.New(fmt.Sprint(o.Err)), nil
	}
	if sentinel, ok := sentinels[o.ErrorType]; ok {
		return sentinel, nil
	}
	return nil, fmt.Errorf("%w: unknown error_type %q", errors.ErrInvalidFixture, o.ErrorType)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
