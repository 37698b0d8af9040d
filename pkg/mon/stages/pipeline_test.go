package stages

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/mon/pkg/mon"
	"github.com/ib-77/mon/pkg/mon/cont"
)

func TestPipeline_RunWrapsPlainResults(t *testing.T) {
	t.Parallel()

	p := New(WithName("numbers")).Add(
		Func("inc", func(i int) int { return i + 1 }),
		Func("itoa", strconv.Itoa),
	)
	require.NoError(t, p.Build())
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, "numbers", p.Name())
	assert.NotEqual(t, uuid.Nil, p.ID())

	res, err := p.Run(context.Background(), 41)
	require.NoError(t, err)
	assert.Equal(t, mon.Just("42"), res)
}

func TestPipeline_FlattensVariantResults(t *testing.T) {
	t.Parallel()

	p := New().Add(
		Func("to-branch", func(i int) mon.Branch[int, float64] {
			if i == 12 {
				return mon.Left[int, float64](14)
			}
			return mon.Right[int](float64(i))
		}),
		Func("double", func(i int) int { return i * 2 }),
	)

	res, err := p.Run(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, mon.Just(28), res)

	res, err = p.Run(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, mon.Right[int](3.0), res, "right side ends the run unchanged")
}

func TestPipeline_FilterShortCircuits(t *testing.T) {
	t.Parallel()

	called := false
	p := New().Add(
		Filter("gt10", func(i int) bool { return i > 10 }),
		Func("mark", func(i int) int { called = true; return i }),
	)

	res, err := p.Run(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, mon.None[int](), res)
	assert.False(t, called)

	res, err = p.Run(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, mon.Just(11), res)
	assert.True(t, called)
}

func TestPipeline_BuildRejectsMismatch(t *testing.T) {
	t.Parallel()

	p := New().Add(
		Func("itoa", strconv.Itoa),
		Func("inc", func(i int) int { return i + 1 }),
	)

	err := p.Build()
	require.ErrorIs(t, err, ErrStageMismatch)

	var se *StageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.Index)
	assert.Equal(t, "inc", se.Stage)
	assert.Equal(t, "int", se.Want.String())
	assert.Equal(t, "string", se.Got.String())

	_, runErr := p.Run(context.Background(), 1)
	assert.ErrorIs(t, runErr, ErrStageMismatch)
}

func TestPipeline_BuildUnwrapsVariantOutputs(t *testing.T) {
	t.Parallel()

	p := New().Add(
		Func("maybe", func(s string) mon.Optional[int] {
			n, err := strconv.Atoi(s)
			return mon.FromPair(n, err == nil)
		}),
		Func("inc", func(i int) int { return i + 1 }),
	)
	require.NoError(t, p.Build())

	res, err := p.Run(context.Background(), "9")
	require.NoError(t, err)
	assert.Equal(t, mon.Just(10), res)
}

func TestPipeline_RunChecksDynamicTypes(t *testing.T) {
	t.Parallel()

	p := New().Add(
		Func("erase", func(i int) any { return strconv.Itoa(i) }),
		Func("inc", func(i int) int { return i + 1 }),
	)
	require.NoError(t, p.Build())

	_, err := p.Run(context.Background(), 1)
	var se *StageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.Index)

	_, err = p.Run(context.Background(), "not an int")
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 0, se.Index)

	_, err = p.Run(context.Background(), nil)
	assert.ErrorIs(t, err, ErrStageMismatch)
}

func TestPipeline_VariantInput(t *testing.T) {
	t.Parallel()

	p := New().Add(Func("inc", func(i int) int { return i + 1 }))

	res, err := p.Run(context.Background(), mon.Some(1))
	require.NoError(t, err)
	assert.Equal(t, mon.Just(2), res)

	res, err = p.Run(context.Background(), mon.None[int]())
	require.NoError(t, err)
	assert.Equal(t, mon.None[int](), res)
}

func TestPipeline_Empty(t *testing.T) {
	t.Parallel()

	_, err := New().Run(context.Background(), 1)
	assert.True(t, errors.Is(err, ErrEmptyPipeline))
}

func TestPipeline_AddChecksEachNewStage(t *testing.T) {
	t.Parallel()

	p := New().Add(Func("itoa", strconv.Itoa))
	require.NoError(t, p.Build())

	p.Add(Func("inc", func(i int) int { return i + 1 }))
	assert.ErrorIs(t, p.Build(), ErrStageMismatch)
}

func TestPipeline_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	p := New().Add(
		Func("cancel", func(i int) int { cancel(); return i }),
		Func("inc", func(i int) int { return i + 1 }),
	)

	res, err := p.Run(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, mon.Just(1), res)
}

func TestPipeline_Trace(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	var events []Event
	p := New(WithID(id), WithName("traced"), WithTrace(func(e Event) { events = append(events, e) })).Add(
		Func("inc", func(i int) int { return i + 1 }),
		Filter("small", func(i int) bool { return i < 2 }),
		Func("never", func(i int) int { return i }),
	)

	_, err := p.Run(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, Event{PipelineID: id, Pipeline: "traced", Stage: "inc", Index: 0, Kind: mon.KindPresent, Populated: true}, events[0])
	assert.Equal(t, Event{PipelineID: id, Pipeline: "traced", Stage: "small", Index: 1, Kind: mon.KindOptional, Populated: false}, events[1])
}

func TestFromContinuation(t *testing.T) {
	t.Parallel()

	k := cont.Then(cont.LeftOnly[string](func(i int) int { return i + 1 }), func(i int) int { return i + 2 })
	st := FromContinuation("k", k)
	assert.Equal(t, "k", st.Name())
	assert.Equal(t, "int", st.In().String())
	assert.Equal(t, "int", st.Out().String())

	res, err := New().Add(st).Run(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, mon.Just(3), res)
}

func TestFunc_NilPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, cont.ErrNilFunc, func() {
		Func[int, int]("nil", nil)
	})
}

type ids []int

type scores map[string]int

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

func TestPipeline_ConvertsAssignableNamedTypes(t *testing.T) {
	t.Parallel()

	p := New().Add(
		Func("make", func(n int) ids {
			out := make(ids, 0, n)
			for i := 1; i <= n; i++ {
				out = append(out, i)
			}
			return out
		}),
		Func("sum", sum),
	)
	require.NoError(t, p.Build())

	res, err := p.Run(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, mon.Just(6), res)

	res, err = New().Add(Func("sum", sum)).Run(context.Background(), ids{3, 4})
	require.NoError(t, err)
	assert.Equal(t, mon.Just(7), res)

	count := Func("count", func(m map[string]int) int { return len(m) })
	res, err = New().Add(count).Run(context.Background(), scores{"a": 1, "b": 2})
	require.NoError(t, err)
	assert.Equal(t, mon.Just(2), res)
}

func TestPipeline_ConvertsDynamicNamedTypes(t *testing.T) {
	t.Parallel()

	p := New().Add(
		Func("erase", func(n int) any { return ids{n, n} }),
		Func("sum", sum),
	)

	res, err := p.Run(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, mon.Just(10), res)
}

func TestPipeline_RejectsUnrelatedSliceTypes(t *testing.T) {
	t.Parallel()

	p := New().Add(
		Func("erase", func(n int) any { return []string{"x"} }),
		Func("sum", sum),
	)

	res, err := p.Run(context.Background(), 1)
	var se *StageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.Index)
	assert.Equal(t, "[]string", se.Got.String())
	assert.Equal(t, mon.Just[any]([]string{"x"}), res)
}

func TestPipeline_ConcurrentRuns(t *testing.T) {
	t.Parallel()

	p := New().Add(
		Func("inc", func(i int) int { return i + 1 }),
		Func("double", func(i int) int { return i * 2 }),
	)

	const workers = 8
	results := make([]mon.Variant, workers)
	errs := make([]error, workers)

	wg := &sync.WaitGroup{}
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = p.Run(context.Background(), i)
		}()
	}
	wg.Wait()

	for i := range workers {
		require.NoError(t, errs[i])
		assert.Equal(t, mon.Just((i+1)*2), results[i])
	}
}
