package builder_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvgraph/builder"
	"github.com/katalvlaran/lvgraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairs lists "src>dst" for every edge in insertion order.
func pairs(g *core.Graph[string]) []string {
	var out []string
	for e := range g.Edges() {
		out = append(out, e.Src+">"+e.Dst)
	}
	return out
}

func TestConstructors_Topology(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ctor      builder.Constructor
		opts      []builder.BuilderOption
		wantNodes int
		wantEdges []string
	}{
		{"Path(4)", builder.Path(4), nil, 4, []string{"0>1", "1>2", "2>3"}},
		{"Cycle(3)", builder.Cycle(3), nil, 3, []string{"0>1", "1>2", "2>0"}},
		{"Star(3)", builder.Star(3), nil, 3, []string{"1>Center", "2>Center"}},
		{"Wheel(4)", builder.Wheel(4), nil, 4, []string{"0>1", "1>2", "2>0", "Center>0", "Center>1", "Center>2"}},
		{"Complete(3)", builder.Complete(3), nil, 3, []string{"0>1", "0>2", "1>2"}},
		{"Bipartite(1,2)", builder.CompleteBipartite(1, 2), nil, 3, []string{"L0>R0", "L0>R1"}},
		{"Bipartite prefixes", builder.CompleteBipartite(1, 1), []builder.BuilderOption{builder.WithPartitionPrefix("u", "")}, 2, []string{"u0>R0"}},
		{"Grid(2,2)", builder.Grid(2, 2), nil, 4, []string{"0,0>0,1", "0,0>1,0", "0,1>1,1", "1,0>1,1"}},
		{"Isolated(3)", builder.Isolated(3), nil, 3, nil},
		{"Path symmetric", builder.Path(3), []builder.BuilderOption{builder.WithSymmetric()}, 3, []string{"0>1", "1>0", "1>2", "2>1"}},
		{"Path letters", builder.Path(3), []builder.BuilderOption{builder.WithSymbolIDs()}, 3, []string{"A>B", "B>C"}},
		{"RandomSparse p=1", builder.RandomSparse(3, 1), nil, 3, []string{"0>1", "0>2", "1>0", "1>2", "2>0", "2>1"}},
		{"RandomSparse p=0", builder.RandomSparse(3, 0), nil, 3, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.opts, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantNodes, g.NodeCount())
			if diff := cmp.Diff(tc.wantEdges, pairs(g)); diff != "" {
				t.Errorf("edges mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConstructors_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Bipartite(0,1)", builder.CompleteBipartite(0, 1), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"Isolated(0)", builder.Isolated(0), builder.ErrTooFewVertices},
		{"RandomSparse(0,.5)", builder.RandomSparse(0, .5), builder.ErrTooFewVertices},
		{"RandomSparse p<0", builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse p>1", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse no rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
		{"Offset(nil)", builder.Offset(1, nil), builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

func TestRandomSparse_SeedIsDeterministic(t *testing.T) {
	t.Parallel()

	build := func(seed int64, extra ...builder.BuilderOption) []string {
		g, err := builder.BuildGraph(append([]builder.BuilderOption{builder.WithSeed(seed)}, extra...), builder.RandomSparse(30, 0.1))
		require.NoError(t, err)
		return pairs(g)
	}

	assert.Equal(t, build(42), build(42))
	assert.NotEqual(t, build(42), build(43))

	sym := build(42, builder.WithSymmetric())
	for _, p := range sym {
		src, dst, _ := strings.Cut(p, ">")
		assert.Contains(t, sym, dst+">"+src)
		assert.NotEqual(t, src, dst, "no self-loops")
	}
}

func TestOptions_LabelAttrsWeight(t *testing.T) {
	t.Parallel()

	shared := core.Attrs{"kind": "road"}
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithLabel("next"),
		builder.WithEdgeAttrs(shared),
		builder.WithNodeAttrs(core.Attrs{"color": "red"}),
		builder.WithRand(rand.New(rand.NewSource(1))),
		builder.WithUniformWeight(1, 2),
		builder.WithSymmetric(),
	}, builder.Path(2))
	require.NoError(t, err)
	shared["kind"] = "mutated"

	fwd, ok := g.Edge("0", "1", "next")
	require.True(t, ok)
	back, ok := g.Edge("1", "0", "next")
	require.True(t, ok)

	assert.Equal(t, "road", fwd["kind"], "options snapshot their attrs")
	w := core.GetOr(fwd, builder.AttrWeight, -1.0)
	assert.GreaterOrEqual(t, w, 1.0)
	assert.Less(t, w, 2.0)
	assert.Equal(t, w, back[builder.AttrWeight], "both directions share one draw")

	n, _ := g.Node("1")
	assert.Equal(t, "red", n["color"])
	assert.False(t, g.HasEdge("0", "1", ""), "unlabelled edge not emitted")
}

func TestComposition_OffsetAndApply(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Cycle(3), builder.Offset(3, builder.Cycle(3)))
	require.NoError(t, err)
	assert.Equal(t, 6, g.NodeCount())
	assert.Equal(t, 6, g.EdgeCount())
	assert.True(t, g.HasEdge("5", "3", ""))

	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithLabel("bridge")}, builder.Path(4)))
	assert.Equal(t, 6, g.NodeCount(), "Path(4) reuses 0..3")
	assert.True(t, g.HasEdge("2", "3", "bridge"))

	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Path(2)), builder.ErrConstructFailed)
}

func TestIDFns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "A", builder.SymbolIDFn(0))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Equal(t, []string{"A", "Z", "AA", "AZ", "BA"}, []string{
		builder.ExcelColumnIDFn(0), builder.ExcelColumnIDFn(25), builder.ExcelColumnIDFn(26),
		builder.ExcelColumnIDFn(51), builder.ExcelColumnIDFn(52),
	})
	assert.Equal(t, "v7", builder.PrefixIDFn("v")(7))
	assert.Equal(t, "3,4", builder.GridID(3, 4))

	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
}

func TestWeightFns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3.0, builder.ConstantWeightFn(3)(nil))
	assert.Equal(t, 2.0, builder.UniformWeightFn(2, 5)(nil))
	assert.Equal(t, 4.0, builder.UniformWeightFn(4, 4)(rand.New(rand.NewSource(1))))
	assert.Equal(t, 0.0, builder.NormalWeightFn(-1, 0)(nil))

	r := rand.New(rand.NewSource(9))
	for range 100 {
		assert.GreaterOrEqual(t, builder.NormalWeightFn(0, 1)(r), 0.0)
	}

	for name, fn := range map[string]func(){
		"constant negative": func() { builder.ConstantWeightFn(-1) },
		"uniform inverted":  func() { builder.UniformWeightFn(5, 4) },
		"uniform negative":  func() { builder.UniformWeightFn(-1, 4) },
		"normal stddev":     func() { builder.NormalWeightFn(0, -1) },
		"nil weight fn":     func() { builder.WithWeightFn(nil) },
		"nil id scheme":     func() { builder.WithIDScheme(nil) },
		"nil rand":          func() { builder.WithRand(nil) },
	} {
		assert.Panics(t, fn, name)
	}
}
