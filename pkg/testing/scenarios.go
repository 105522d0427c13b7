package testing

import (
	"github.com/chadxz/waterline-fakes/pkg/errors"
	"github.com/chadxz/waterline-fakes/pkg/fakes"
)

// CommonScenarios builds fakes for situations most test suites need
type CommonScenarios struct {
	tf *TestFakes
}

// NewCommonScenarios creates scenarios whose fakes share tf's scheduler
func NewCommonScenarios(tf *TestFakes) *CommonScenarios {
	return &CommonScenarios{tf: tf}
}

// NotFound returns a query that fails with errors.ErrItemNotFound
func (s *CommonScenarios) NotFound() fakes.QueryFunc {
	return s.tf.Chainable(&fakes.ChainOptions{Err: errors.ErrItemNotFound, Name: "not-found"})
}

// ConnectionLost returns a query that fails with errors.ErrConnection
func (s *CommonScenarios) ConnectionLost() fakes.QueryFunc {
	return s.tf.Chainable(&fakes.ChainOptions{Err: errors.ErrConnection, Name: "connection-lost"})
}

// FindReturning returns a query whose result is the given models, in order
func (s *CommonScenarios) FindReturning(models ...*fakes.Model) fakes.QueryFunc {
	result := make([]any, len(models))
	for i, m := range models {
		result[i] = m
	}
	return s.tf.Chainable(&fakes.ChainOptions{Result: result, Name: "find"})
}

// FindOneReturning returns a query whose result is a single model
func (s *CommonScenarios) FindOneReturning(model *fakes.Model) fakes.QueryFunc {
	return s.tf.Chainable(&fakes.ChainOptions{Result: model, Name: "find-one"})
}

// StaleRecord returns a model whose Save fails with errors.ErrConditionFailed
func (s *CommonScenarios) StaleRecord(props map[string]any) *fakes.Model {
	return s.tf.Model(&fakes.ModelOptions{
		Props: props,
		Save:  fakes.SaveOptions{Err: errors.NewError("save", "", errors.ErrConditionFailed)},
		Name:  "stale",
	})
}

// Undeletable returns a model whose Destroy fails with err
func (s *CommonScenarios) Undeletable(props map[string]any, err any) *fakes.Model {
	return s.tf.Model(&fakes.ModelOptions{
		Props:   props,
		Destroy: fakes.DestroyOptions{Err: err},
		Name:    "undeletable",
	})
}
