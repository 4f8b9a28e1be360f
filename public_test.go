package posintset_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/min1324/posintset"
)

type opTyp int

const (
	opTypUnion opTyp = iota
	opTypInter
	opTypDiffe
	opTypComen
)

func (o opTyp) String() string {
	return [...]string{"Union", "Intersect", "Difference", "Complement"}[o]
}

func (o opTyp) apply(s, t posintset.Set) *posintset.PosIntSet {
	switch o {
	case opTypUnion:
		return posintset.Union(s, t)
	case opTypInter:
		return posintset.Intersect(s, t)
	case opTypDiffe:
		return posintset.Difference(s, t)
	case opTypComen:
		return posintset.Complement(s, t)
	}
	panic("invalid opTyp")
}

// span return the items [m,n)
func span(m, n int32) []int32 {
	a := make([]int32, 0, n-m)
	for i := m; i < n; i++ {
		a = append(a, i)
	}
	return a
}

func TestOperation(t *testing.T) {
	tests := []struct {
		s, t []int32
		op   opTyp
		want []int32
	}{
		{s: []int32{0, 1, 2, 3, 4, 5}, t: []int32{4, 5, 6, 7, 8}, op: opTypUnion, want: span(0, 9)},
		{s: []int32{0, 1, 2, 3, 4, 5}, t: []int32{4, 5, 6, 7, 8}, op: opTypInter, want: []int32{4, 5}},
		{s: []int32{0, 1, 2, 3, 4, 5}, t: []int32{4, 5, 6, 7, 8}, op: opTypDiffe, want: []int32{0, 1, 2, 3}},
		{s: []int32{0, 1, 2, 3, 4, 5}, t: []int32{4, 5, 6, 7, 8}, op: opTypComen, want: []int32{0, 1, 2, 3, 6, 7, 8}},
		{s: nil, t: []int32{-3, 1}, op: opTypUnion, want: []int32{-3, 1}},
		{s: nil, t: []int32{-3, 1}, op: opTypInter, want: []int32{}},
		{s: []int32{-3, 1}, t: nil, op: opTypDiffe, want: []int32{-3, 1}},
		{s: span(0, 1000), t: span(500, 1500), op: opTypInter, want: span(500, 1000)},
		{s: span(0, 1000), t: span(500, 1500), op: opTypComen, want: append(span(0, 500), span(1000, 1500)...)},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("%d_%v", i, tt.op), func(t *testing.T) {
			s := posintset.New(0, tt.s...)
			m := NewMapSet(tt.t...)
			p := posintset.New(0, tt.t...)

			got := tt.op.apply(s, p)
			assert.Equal(t, tt.want, posintset.Sorted(got))

			// mixed implementations give the same result
			got = tt.op.apply(s, m)
			assert.Equal(t, tt.want, posintset.Sorted(got))

			// operands are untouched
			assert.Equal(t, len(tt.s), s.Len())
			assert.Equal(t, len(tt.t), p.Len())
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		s, t []int32
		want bool
	}{
		{name: "empty", want: true},
		{name: "order", s: []int32{3, 1, 4}, t: []int32{4, 3, 1}, want: true},
		{name: "extra", s: []int32{3, 1, 4}, t: []int32{4, 3, 1, 5}, want: false},
		{name: "missing", s: []int32{3, 1, 4}, t: []int32{4, 3}, want: false},
		{name: "other", s: []int32{3, 1, 4}, t: []int32{4, 3, 2}, want: false},
		{name: "large", s: span(0, 5000), t: span(0, 5000), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := posintset.New(0, tt.s...)
			p := posintset.New(len(tt.t)*4, tt.t...)
			assert.Equal(t, tt.want, posintset.Equal(s, p))
			assert.Equal(t, tt.want, posintset.Equal(p, s))
			assert.Equal(t, tt.want, posintset.Equal(s, NewMapSet(tt.t...)))
			assert.Equal(t, tt.want, posintset.Equal(NewMapSet(tt.t...), s))
		})
	}
}

func TestCopy(t *testing.T) {
	m := NewMapSet(1, 2, 3)
	p := posintset.Copy(m)
	assert.True(t, posintset.Equal(m, p))
	m.Delete(1)
	assert.True(t, p.Load(1))

	q := posintset.Copy(p)
	require.NoError(t, q.Store(9))
	assert.False(t, p.Load(9))
}

func TestClearGeneral(t *testing.T) {
	for _, s := range []posintset.Set{NewMapSet(span(0, 100)...), posintset.New(0, span(0, 100)...)} {
		require.Equal(t, 100, posintset.Size(s))
		posintset.Clear(s)
		assert.True(t, posintset.Null(s))
		assert.Equal(t, 0, s.Len())
	}
}

func TestItemsAndString(t *testing.T) {
	s := posintset.New(0, 9, -5, 3, 100)
	assert.ElementsMatch(t, []int32{9, -5, 3, 100}, posintset.Items(s))
	assert.ElementsMatch(t, []int32{9, -5, 3, 100}, posintset.Items(NewMapSet(9, -5, 3, 100)))
	assert.Equal(t, "{-5 3 9 100}", posintset.String(s))
	assert.Equal(t, "{}", posintset.New(0).String())
}

func TestAddsRemoves(t *testing.T) {
	m := NewMapSet()
	err := posintset.Adds(m, 1, 2, posintset.EmptyKey, 3)
	assert.ErrorIs(t, err, posintset.ErrReservedValue)
	assert.Equal(t, 3, m.Len())

	posintset.Removes(m, 1, 2, 42)
	assert.Equal(t, "{3}", posintset.String(m))

	s := posintset.New(0, 1, 2, 3)
	s.Removes(1, 3)
	assert.Equal(t, "{2}", s.String())
}
