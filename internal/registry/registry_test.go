package registry_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/fanoutgo/internal/config"
	"github.com/specialistvlad/fanoutgo/internal/registry"
	"github.com/specialistvlad/fanoutgo/internal/testutil"
)

func newProducerFactory() *registry.RegisteredProducer {
	return &registry.RegisteredProducer{
		NewInput: func() any { return new(struct{}) },
		Build: func(ctx context.Context, deps *registry.BuildDeps, input any) (registry.Producer, error) {
			return &testutil.ScriptedProducer{Message: "hello"}, nil
		},
	}
}

func TestRegisterProducerType_DuplicatePanics(t *testing.T) {
	t.Parallel()

	r := registry.New()
	r.RegisterProducerType("clock", newProducerFactory())

	require.Panics(t, func() {
		r.RegisterProducerType("clock", newProducerFactory())
	})
}

func TestRegisterDisplayerType_NilFactoryPanics(t *testing.T) {
	t.Parallel()

	r := registry.New()
	require.Panics(t, func() {
		r.RegisterDisplayerType("console", nil)
	})
	require.Panics(t, func() {
		r.RegisterDisplayerType("console", &registry.RegisteredDisplayer{})
	})
}

func TestAdd_RejectsNilReferences(t *testing.T) {
	t.Parallel()

	r := registry.New()
	require.Error(t, r.AddProducer(nil))
	require.Error(t, r.AddDisplayer(nil))
	require.Empty(t, r.Producers())
	require.Empty(t, r.Displayers())
}

func TestInstances_PreserveRegistrationOrder(t *testing.T) {
	t.Parallel()

	r := registry.New()
	first := &testutil.ScriptedProducer{Name: "first"}
	second := &testutil.ScriptedProducer{Name: "second"}
	require.NoError(t, r.AddProducer(first))
	require.NoError(t, r.AddProducer(second))

	got := r.Producers()
	require.Len(t, got, 2)
	require.Same(t, first, got[0])
	require.Same(t, second, got[1])
}

func TestProducers_ReturnsSnapshot(t *testing.T) {
	t.Parallel()

	r := registry.New()
	require.NoError(t, r.AddProducer(&testutil.ScriptedProducer{Name: "only"}))

	snapshot := r.Producers()
	require.NoError(t, r.AddProducer(&testutil.ScriptedProducer{Name: "later"}))

	require.Len(t, snapshot, 1, "an earlier snapshot must not see later registrations")
}

func TestReset_ClearsInstancesKeepsTypes(t *testing.T) {
	t.Parallel()

	r := registry.New()
	r.RegisterProducerType("scripted", newProducerFactory())
	require.NoError(t, r.AddProducer(&testutil.ScriptedProducer{}))
	require.NoError(t, r.AddDisplayer(&testutil.RecordingDisplayer{}))

	r.Reset()

	require.Empty(t, r.Producers())
	require.Empty(t, r.Displayers())
	_, ok := r.ProducerType("scripted")
	require.True(t, ok, "Reset must not drop registered types")
}

func TestAdd_ConcurrentRegistrationIsSafe(t *testing.T) {
	t.Parallel()

	r := registry.New()
	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.AddProducer(&testutil.ScriptedProducer{})
			_ = r.AddDisplayer(&testutil.RecordingDisplayer{})
		}()
	}
	wg.Wait()

	require.Len(t, r.Producers(), n)
	require.Len(t, r.Displayers(), n)
}

func TestValidateModel_ReportsAllProblems(t *testing.T) {
	t.Parallel()

	r := registry.New()
	r.RegisterProducerType("clock", newProducerFactory())

	model := &config.Model{
		Producers: []*config.Capability{
			{Type: "clock", Name: "a"},
			{Type: "clock", Name: "a"},
			{Type: "missing", Name: "b"},
		},
		Displayers: []*config.Capability{
			{Type: "nowhere", Name: "c"},
		},
	}

	err := r.ValidateModel(context.Background(), model)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no producer type 'missing'")
	require.Contains(t, err.Error(), "declared more than once")
	require.Contains(t, err.Error(), "no displayer type 'nowhere'")
}

func TestValidateModel_NilModelIsValid(t *testing.T) {
	t.Parallel()

	r := registry.New()
	require.NoError(t, r.ValidateModel(context.Background(), nil))
}
