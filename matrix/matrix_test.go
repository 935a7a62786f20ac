package matrix_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/cetusw/g-loc/builder"
	"github.com/cetusw/g-loc/core"
	"github.com/cetusw/g-loc/matrix"
)

const square = `
0,1,0,1
1,0,1,0
0,1,0,1
1,0,1,0
`

func edgeSet(g *core.Graph) map[string]float64 {
	out := map[string]float64{}
	for _, e := range g.GetAllEdges() {
		out[e.ID] = e.Weight
	}

	return out
}

func TestParse_Square(t *testing.T) {
	g, err := matrix.Parse(square)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "3", "4"}, g.VertexIDs())
	require.Equal(t, "V3", g.GetVertex("3").Label)
	require.Equal(t, map[string]float64{"1-2": 1, "1-4": 1, "2-3": 1, "3-4": 1}, edgeSet(g))
	for _, v := range g.GetAllVertices() {
		require.Equal(t, 2, v.Degree)
	}
}

func TestParse_UpperTriangleOnly(t *testing.T) {
	g, err := matrix.Parse("5, 2.5, 0\n9, 7, 3\n0, 0, 4")
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"1-2": 2.5, "2-3": 3}, edgeSet(g), "diagonal and lower triangle ignored")

	_, err = matrix.Parse("0,2.5\n9,0", matrix.WithStrictSymmetry())
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		opts []matrix.Option
		want error
	}{
		{"empty", "", nil, matrix.ErrEmptyMatrix},
		{"blank lines", "\n  \n", nil, matrix.ErrEmptyMatrix},
		{"ragged", "0,1\n1", nil, matrix.ErrNonSquare},
		{"too wide", "0,1,1\n1,0,1", nil, matrix.ErrNonSquare},
		{"not a number", "0,x\nx,0", nil, matrix.ErrBadValue},
		{"nan", "0,NaN\n0,0", nil, matrix.ErrNaNInf},
		{"inf", "0,1\n+Inf,0", nil, matrix.ErrNaNInf},
		{"negative", "0,-2\n-2,0", nil, matrix.ErrNegativeWeight},
		{"negative diagonal", "-5,1\n1,0", nil, matrix.ErrNegativeWeight},
		{"negative lower triangle", "0,1\n-3,0", nil, matrix.ErrNegativeWeight},
		{"empty separator", "0", []matrix.Option{matrix.WithSeparator("")}, matrix.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := matrix.Parse(tc.text, tc.opts...)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, g)
		})
	}
}

func TestParse_NegativeCellAnywhere(t *testing.T) {
	for _, text := range []string{"-1,1\n1,0", "0,1\n1,-1", "0,1,0\n1,0,2\n0,-2,0"} {
		g, err := matrix.Parse(text)
		require.ErrorIs(t, err, matrix.ErrNegativeWeight, text)
		require.Nil(t, g)
	}
}

func TestParse_WideRow(t *testing.T) {
	pad := strings.Repeat(" ", 100*1024)
	g, err := matrix.Parse("0," + pad + "4\n4,0")
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"1-2": 4}, edgeSet(g))
}

func TestParseReader_ReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := matrix.ParseReader(iotest.ErrReader(boom))
	require.ErrorIs(t, err, boom)
}

func TestParse_Separator(t *testing.T) {
	g, err := matrix.Parse("0;3\n3;0", matrix.WithSeparator(";"))
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"1-2": 3}, edgeSet(g))
}

func TestFormat_RoundTrip(t *testing.T) {
	g, err := builder.RandomConnected(7, 5, builder.WithSeed(11))
	require.NoError(t, err)

	text, err := matrix.Format(g)
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimSpace(text), "\n"), 7)

	back, err := matrix.Parse(text, matrix.WithStrictSymmetry())
	require.NoError(t, err)
	require.Equal(t, edgeSet(g), edgeSet(back))
}

func TestFormat_Errors(t *testing.T) {
	_, err := matrix.Format(nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)

	_, err = matrix.Format(core.NewGraph(), matrix.WithSeparator(""))
	require.ErrorIs(t, err, matrix.ErrOptionViolation)
}
