package service

import (
	"context"
	"sync"
	"testing"

	"github.com/carpentries-incubator/python-testing/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProvider struct {
	mock.Mock
	id       string
	category types.Category
}

func newMockProvider(id string) *mockProvider {
	return &mockProvider{id: id, category: types.CategoryNumeric}
}

func (m *mockProvider) Definition() types.Service {
	return types.Service{
		ID:           m.id,
		Name:         "Mock Service",
		Description:  "A mock service for testing",
		Category:     m.category,
		Capabilities: []string{"sinc", "linear"},
		Tools: []types.Tool{
			{
				ID:          m.id + ".test",
				Name:        "Test Tool",
				Description: "A test tool",
				Returns:     "number",
			},
		},
	}
}

func (m *mockProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	args := m.Called(ctx, toolID, params, appCtx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Result), args.Error(1)
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(newMockProvider("test")))

	_, ok := r.Get("test")
	assert.True(t, ok, "service should be registered")
}

func TestRegisterRejectsEmptyAndDuplicate(t *testing.T) {
	r := NewRegistry()

	assert.Error(t, r.Register(newMockProvider("")))

	require.NoError(t, r.Register(newMockProvider("dup")))
	err := r.Register(newMockProvider("dup"))
	assert.ErrorIs(t, err, ErrDuplicateService)
}

func TestRegisterConcurrent(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- r.Register(newMockProvider("same"))
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded)
}

func TestUnregister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(newMockProvider("gone")))

	r.Unregister("gone")
	_, ok := r.Get("gone")
	assert.False(t, ok)
}

func TestList(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(newMockProvider("b")))
	require.NoError(t, r.Register(newMockProvider("a")))
	sys := newMockProvider("sys")
	sys.category = types.CategorySystem
	require.NoError(t, r.Register(sys))

	services := r.List(nil)
	require.Len(t, services, 3)
	assert.Equal(t, "a", services[0].ID)
	assert.Equal(t, "b", services[1].ID)

	cat := types.CategoryNumeric
	assert.Len(t, r.List(&cat), 2)
}

func TestListEmpty(t *testing.T) {
	assert.NotNil(t, NewRegistry().List(nil))
}

func TestDiscover(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(newMockProvider("numeric")))
	other := newMockProvider("other")
	other.category = types.CategorySystem
	require.NoError(t, r.Register(other))

	results := r.Discover("numeric sinc of two values", 5)
	require.NotEmpty(t, results)
	assert.Equal(t, "numeric", results[0].ID)

	assert.Len(t, r.Discover("mock service", 1), 1)
	assert.Empty(t, r.Discover("zzz", 5))
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	p := newMockProvider("test")
	require.NoError(t, r.Register(p))

	ctx := context.Background()
	params := map[string]interface{}{"x": 1.0}
	p.On("Execute", ctx, "test.test", params, (*types.Context)(nil)).
		Return(&types.Result{Success: true, Data: map[string]interface{}{"result": 2.0}}, nil)

	result, err := r.Execute(ctx, "test.test", params, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2.0, result.Data["result"])
	p.AssertExpectations(t)
}

func TestExecuteErrors(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()

	result, err := r.Execute(ctx, "noprefix", nil, nil)
	assert.ErrorIs(t, err, ErrInvalidToolID)
	assert.False(t, result.Success)

	result, err = r.Execute(ctx, "missing.tool", nil, nil)
	assert.ErrorIs(t, err, ErrServiceNotFound)
	require.NotNil(t, result.Error)
	assert.Contains(t, *result.Error, "missing")
}

func TestStats(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(newMockProvider("test1")))
	require.NoError(t, r.Register(newMockProvider("test2")))

	stats := r.Stats()
	assert.Equal(t, 2, stats["total_services"])
	assert.Equal(t, 2, stats["total_tools"])
	assert.Equal(t, map[string]int{"numeric": 2}, stats["categories"])
}
