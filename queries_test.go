// Copyright © 2026 Microsoft <wastore@microsoft.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package layermask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasAll(t *testing.T) {
	a := assert.New(t)

	m := MustNew(1, 2, 3)

	a.True(m.Has().All(1, 2))
	a.True(m.Has().All(1, 2, 3))
	a.True(m.Has().All(MustNew(2, 3)))
	a.True(m.Has().All([]int{1, 3}))
	a.False(m.Has().All(1, 4))
	a.False(m.Has().All(MustNew(3, 4)))

	// Nothing asked for, nothing missing.
	a.True(m.Has().All())
	a.True(Mask{}.Has().All())
}

func TestHasAny(t *testing.T) {
	a := assert.New(t)

	m := MustNew(1, 2, 3)

	a.True(m.Has().Any(3))
	a.True(m.Has().Any(4, 3))
	a.True(m.Has().Any(MustNew(2, 3)))
	a.False(m.Has().Any(4, 5))
	a.False(m.Has().Any())

	// A mask candidate counts only when wholly present.
	a.False(m.Has().Any(MustNew(3, 4)))

	// An empty candidate mask never counts as a match.
	a.False(m.Has().Any(Mask{}))
	a.False(Mask{}.Has().Any(Mask{}))
	a.False(Mask{}.Has().Any(1, 2))
}

func TestHasNoneNegatesAny(t *testing.T) {
	a := assert.New(t)

	m := MustNew(1, 2, 3)

	candidateSets := [][]interface{}{
		{},
		{3},
		{4, 5},
		{4, 3},
		{Mask{}},
		{MustNew(2, 3), 9},
	}

	for _, candidates := range candidateSets {
		a.Equal(!m.Has().Any(candidates...), m.Has().None(candidates...))
	}

	a.True(m.Has().None(4, 5))
	a.False(m.Has().None(4, 3))
}

func TestHasOnly(t *testing.T) {
	a := assert.New(t)

	m := MustNew(1, 2, 3)

	a.True(m.Has().Only(1, 2, 3))
	a.False(m.Has().Only(1, 2))
	a.False(m.Has().Only(1, 2, 3, 4))

	// Duplicates collapse in the union, so they cost nothing.
	a.True(m.Has().Only(1, 1, 2, 3))
	a.True(m.Has().Only(MustNew(1, 2), 3))
	a.True(m.Has().Only([]int{3, 2, 1}))

	// The empty mask is exactly nothing.
	a.True(Mask{}.Has().Only())
	a.False(Mask{}.Has().Only(1))
	a.False(m.Has().Only())
}

func TestIsExactly(t *testing.T) {
	a := assert.New(t)

	a.True(MustNew(5).Is().Exactly(5))
	a.False(MustNew(5, 6).Is().Exactly(5))
	a.True(MustNew(5, 6).Is().Exactly(5, 6))
	a.True(MustNew(5, 6).Is().Exactly(MustNew(6), 5))
	a.True(MustNew(5, 6).Is().Exactly([]int{6, 5}))
	a.False(MustNew(5, 6).Is().Exactly(5, 6, 7))

	a.True(Mask{}.Is().Exactly())
	a.False(MustNew(5).Is().Exactly())
}

func TestIsAnyComparesCandidatesIndividually(t *testing.T) {
	a := assert.New(t)

	// Neither 5 alone nor 7 alone equals the two-layer mask.
	a.False(MustNew(5, 6).Is().Any(5, 7))

	a.True(MustNew(5).Is().Any(5, 7))
	a.True(MustNew(5, 6).Is().Any(MustNew(5, 6), 9))
	a.False(MustNew(5, 6).Is().Any(MustNew(5, 7), 9))
	a.False(MustNew(5).Is().Any())
}

func TestIsNotAndNone(t *testing.T) {
	a := assert.New(t)

	m := MustNew(5, 6)

	a.Equal(!m.Is().Exactly(5, 6), m.Is().Not(5, 6))
	a.Equal(!m.Is().Exactly(5), m.Is().Not(5))
	a.False(m.Is().Not(5, 6))
	a.True(m.Is().Not(5))

	a.Equal(!m.Is().Any(5, 7), m.Is().None(5, 7))
	a.True(m.Is().None(5, 7))
	a.False(m.Is().None(MustNew(5, 6)))
}

func BenchmarkHasAll(b *testing.B) {
	m := MustNew(1, 2, 3, 4, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Has().All(1, 2, 3)
	}
}

func BenchmarkIsExactly(b *testing.B) {
	m := MustNew(1, 2, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Is().Exactly(1, 2, 3)
	}
}
