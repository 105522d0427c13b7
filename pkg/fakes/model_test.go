package fakes_test

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chadxz/waterline-fakes/pkg/core"
	"github.com/chadxz/waterline-fakes/pkg/errors"
	"github.com/chadxz/waterline-fakes/pkg/fakes"
	"github.com/chadxz/waterline-fakes/pkg/scheduler"
	fakestesting "github.com/chadxz/waterline-fakes/pkg/testing"
)

var _ core.Record = fakes.NewModel(nil)

func TestNewModel_Props(t *testing.T) {
	props := map[string]any{"a": 1, "b": "x"}
	m := fakes.NewModel(&fakes.ModelOptions{Props: props})

	assert.Equal(t, 1, m.Props["a"])
	assert.Equal(t, "x", m.Props["b"])

	props["a"] = 2
	assert.Equal(t, 1, m.Props["a"], "caller map must not leak into the model")

	v, ok := m.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestNewModel_NilOptions(t *testing.T) {
	sched := scheduler.NewManual()
	prev := scheduler.SetDefault(sched)
	defer scheduler.SetDefault(prev)

	m := fakes.NewModel(nil)
	require.NotNil(t, m)
	assert.Empty(t, m.Props)

	rec := fakestesting.NewRecorder()
	m.Destroy(rec.Destroy())
	m.Save(rec.Result())
	sched.RunPending()

	calls := rec.Calls()
	require.Len(t, calls, 2)
	assert.Nil(t, calls[0].Err)
	assert.Nil(t, calls[1].Err)
	assert.Same(t, m, calls[1].Result)
}

func TestModel_Destroy(t *testing.T) {
	t.Run("configured error", func(t *testing.T) {
		sched := scheduler.NewManual()
		m := fakes.NewModel(&fakes.ModelOptions{
			Destroy:   fakes.DestroyOptions{Err: errors.ErrConnection},
			Scheduler: sched,
		})

		rec := fakestesting.NewRecorder()
		m.Destroy(rec.Destroy())
		assert.Zero(t, rec.Len(), "callback must not run synchronously")

		assert.Equal(t, 1, sched.RunPending())
		calls := rec.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, errors.ErrConnection, calls[0].Err)
	})

	t.Run("no error", func(t *testing.T) {
		sched := scheduler.NewManual()
		m := fakes.NewModel(&fakes.ModelOptions{Scheduler: sched})

		rec := fakestesting.NewRecorder()
		m.Destroy(rec.Destroy())
		sched.RunPending()
		assert.Nil(t, rec.WaitOne(t).Err)
	})

	t.Run("any value is accepted as error", func(t *testing.T) {
		sched := scheduler.NewManual()
		payload := struct{ Code int }{Code: 500}
		m := fakes.NewModel(&fakes.ModelOptions{
			Destroy:   fakes.DestroyOptions{Err: payload},
			Scheduler: sched,
		})

		rec := fakestesting.NewRecorder()
		m.Destroy(rec.Destroy())
		sched.RunPending()
		assert.Equal(t, payload, rec.WaitOne(t).Err)
	})

	t.Run("fields untouched", func(t *testing.T) {
		sched := scheduler.NewManual()
		m := fakes.NewModel(&fakes.ModelOptions{
			Props:     map[string]any{"name": "alice"},
			Scheduler: sched,
		})

		m.Destroy(func(any) {})
		sched.RunPending()
		assert.Equal(t, map[string]any{"name": "alice"}, m.Fields())
	})
}

func TestModel_Save(t *testing.T) {
	t.Run("error wins over result", func(t *testing.T) {
		sched := scheduler.NewManual()
		m := fakes.NewModel(&fakes.ModelOptions{
			Save:      fakes.SaveOptions{Err: "boom", Result: "ignored"},
			Scheduler: sched,
		})

		rec := fakestesting.NewRecorder()
		m.Save(rec.Result())
		assert.Zero(t, rec.Len(), "callback must not run synchronously")

		sched.RunPending()
		call := rec.WaitOne(t)
		assert.Equal(t, "boom", call.Err)
		assert.Nil(t, call.Result)
	})

	t.Run("configured result", func(t *testing.T) {
		sched := scheduler.NewManual()
		result := map[string]any{"id": "u1"}
		m := fakes.NewModel(&fakes.ModelOptions{
			Save:      fakes.SaveOptions{Result: result},
			Scheduler: sched,
		})

		rec := fakestesting.NewRecorder()
		m.Save(rec.Result())
		sched.RunPending()

		call := rec.WaitOne(t)
		assert.Nil(t, call.Err)
		assert.Equal(t, result, call.Result)
	})

	t.Run("defaults to the model itself", func(t *testing.T) {
		sched := scheduler.NewManual()
		m := fakes.NewModel(&fakes.ModelOptions{
			Props:     map[string]any{"name": "alice"},
			Scheduler: sched,
		})

		m.Set("name", "bob")
		rec := fakestesting.NewRecorder()
		m.Save(rec.Result())
		sched.RunPending()

		call := rec.WaitOne(t)
		assert.Nil(t, call.Err)
		require.Same(t, m, call.Result)
		assert.Equal(t, "bob", call.Result.(*fakes.Model).Props["name"])
	})

	t.Run("repeated calls repeat the outcome", func(t *testing.T) {
		sched := scheduler.NewManual()
		m := fakes.NewModel(&fakes.ModelOptions{
			Save:      fakes.SaveOptions{Err: errors.ErrValidation},
			Scheduler: sched,
		})

		rec := fakestesting.NewRecorder()
		for i := 0; i < 3; i++ {
			m.Save(rec.Result())
		}
		assert.Equal(t, 3, sched.RunPending())

		for _, call := range rec.Calls() {
			assert.Equal(t, errors.ErrValidation, call.Err)
			assert.Nil(t, call.Result)
		}
	})
}

func TestModel_CallbacksRunInScheduleOrder(t *testing.T) {
	sched := scheduler.NewManual()
	m := fakes.NewModel(&fakes.ModelOptions{Scheduler: sched})

	var order []string
	m.Save(func(any, any) { order = append(order, "save") })
	m.Destroy(func(any) { order = append(order, "destroy") })
	m.Save(func(any, any) { order = append(order, "save-again") })

	sched.RunPending()
	assert.Equal(t, []string{"save", "destroy", "save-again"}, order)
}

func TestModel_DefaultSchedulerIsAsynchronous(t *testing.T) {
	m := fakes.NewModel(&fakes.ModelOptions{Save: fakes.SaveOptions{Err: errors.ErrConnection}})

	rec := fakestesting.NewRecorder()
	m.Save(rec.Result())

	call := rec.WaitOne(t)
	assert.ErrorIs(t, call.Err.(error), errors.ErrConnection)
	assert.Nil(t, call.Result)
}

func TestModel_NilCallback(t *testing.T) {
	sched := scheduler.NewManual()
	m := fakes.NewModel(&fakes.ModelOptions{Scheduler: sched})

	assert.NotPanics(t, func() {
		m.Save(nil)
		m.Destroy(nil)
	})
	assert.Zero(t, sched.Pending())
}

func TestModel_Identity(t *testing.T) {
	a := fakes.NewModel(&fakes.ModelOptions{Name: "user"})
	b := fakes.NewModel(nil)

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Contains(t, a.String(), "user")
	assert.Contains(t, a.String(), a.ID().String())
	assert.NotContains(t, a.Props, "id")
}

func TestModelFromItem(t *testing.T) {
	item := map[string]types.AttributeValue{
		"id":   &types.AttributeValueMemberS{Value: "u1"},
		"age":  &types.AttributeValueMemberN{Value: "30"},
		"name": &types.AttributeValueMemberS{Value: "alice"},
	}

	m, err := fakes.ModelFromItem(item, &fakes.ModelOptions{
		Props: map[string]any{"name": "override"},
	})
	require.NoError(t, err)

	assert.Equal(t, "u1", m.Props["id"])
	assert.Equal(t, int64(30), m.Props["age"])
	assert.Equal(t, "override", m.Props["name"])

	out, err := m.Item()
	require.NoError(t, err)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "override"}, out["name"])
	assert.Equal(t, &types.AttributeValueMemberN{Value: "30"}, out["age"])
}

func TestModelFromItem_BadItem(t *testing.T) {
	_, err := fakes.ModelFromItem(map[string]types.AttributeValue{
		"n": &types.AttributeValueMemberN{Value: "NaN-ish"},
	}, nil)
	assert.Error(t, err)
}
