package fakes

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/chadxz/waterline-fakes/pkg/core"
	"github.com/chadxz/waterline-fakes/pkg/logging"
	"github.com/chadxz/waterline-fakes/pkg/marshal"
	"github.com/chadxz/waterline-fakes/pkg/scheduler"
)

// ModelOptions configures a model fake. The zero value is a model with no
// fields whose operations all succeed.
type ModelOptions struct {
	// Props are copied onto the model as its record fields
	Props map[string]any

	// Destroy configures the outcome of Destroy
	Destroy DestroyOptions

	// Save configures the outcome of Save
	Save SaveOptions

	// Scheduler runs the callbacks. Defaults to scheduler.Default().
	Scheduler scheduler.Scheduler

	// Name labels the model in logs and String
	Name string
}

// DestroyOptions configures Destroy
type DestroyOptions struct {
	Err any
}

// SaveOptions configures Save. Err takes precedence over Result.
type SaveOptions struct {
	Err    any
	Result any
}

// Model is a fake persisted record
type Model struct {
	// Props holds the record fields. Tests may read and assign it freely.
	Props map[string]any

	id    uuid.UUID
	name  string
	sched scheduler.Scheduler

	destroy func(cb core.DestroyCallback)
	save    func(cb core.ResultCallback)
}

var _ core.Record = (*Model)(nil)

// NewModel creates a model fake. A nil opts is the same as an empty one.
func NewModel(opts *ModelOptions) *Model {
	var cfg ModelOptions
	if opts != nil {
		cfg = *opts
	}

	sched := cfg.Scheduler
	if sched == nil {
		sched = scheduler.Default()
	}

	m := &Model{
		Props: make(map[string]any, len(cfg.Props)),
		id:    uuid.New(),
		name:  cfg.Name,
		sched: sched,
	}
	for k, v := range cfg.Props {
		m.Props[k] = v
	}

	// Bound after the shell exists so Save can report the model itself.
	destroyErr := cfg.Destroy.Err
	m.destroy = func(cb core.DestroyCallback) {
		m.dispatch("destroy", func() { cb(destroyErr) })
	}

	saveErr, saveResult := cfg.Save.Err, cfg.Save.Result
	m.save = func(cb core.ResultCallback) {
		var result any
		switch {
		case saveErr != nil:
		case saveResult != nil:
			result = saveResult
		default:
			result = m
		}
		m.dispatch("save", func() { cb(saveErr, result) })
	}

	return m
}

// ModelFromItem creates a model fake whose fields come from a raw DynamoDB
// item. Fields in opts.Props override attributes of the same name.
func ModelFromItem(item map[string]types.AttributeValue, opts *ModelOptions) (*Model, error) {
	props, err := marshal.UnmarshalItem(item)
	if err != nil {
		return nil, fmt.Errorf("failed to read item: %w", err)
	}

	var cfg ModelOptions
	if opts != nil {
		cfg = *opts
	}
	for k, v := range cfg.Props {
		props[k] = v
	}
	cfg.Props = props

	return NewModel(&cfg), nil
}

// Destroy schedules cb with the configured destroy error, or nil
func (m *Model) Destroy(cb core.DestroyCallback) {
	if cb == nil {
		return
	}
	m.destroy(cb)
}

// Save schedules cb with the configured save outcome. Fields must be assigned
// before calling Save; the fake does not change them.
func (m *Model) Save(cb core.ResultCallback) {
	if cb == nil {
		return
	}
	m.save(cb)
}

// Get returns a record field
func (m *Model) Get(field string) (any, bool) {
	v, ok := m.Props[field]
	return v, ok
}

// Set assigns a record field
func (m *Model) Set(field string, value any) {
	if m.Props == nil {
		m.Props = make(map[string]any)
	}
	m.Props[field] = value
}

// Fields returns a copy of the record fields
func (m *Model) Fields() map[string]any {
	out := make(map[string]any, len(m.Props))
	for k, v := range m.Props {
		out[k] = v
	}
	return out
}

// Item returns the record fields as a DynamoDB item
func (m *Model) Item() (map[string]types.AttributeValue, error) {
	return marshal.MarshalProps(m.Props)
}

// ID identifies this fake instance. It is not a record field.
func (m *Model) ID() uuid.UUID {
	return m.id
}

// String implements fmt.Stringer
func (m *Model) String() string {
	if m.name != "" {
		return fmt.Sprintf("fakes.Model(%s %s)", m.name, m.id)
	}
	return fmt.Sprintf("fakes.Model(%s)", m.id)
}

func (m *Model) dispatch(op string, task func()) {
	log := logging.WithOp(op).WithFields(logrus.Fields{
		"double": "model",
		"id":     m.id.String(),
	})
	if m.name != "" {
		log = log.WithField("name", m.name)
	}
	log.Debug("scheduling callback")
	m.sched.Schedule(task)
}
