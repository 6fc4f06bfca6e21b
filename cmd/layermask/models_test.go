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

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wastore/layermask"
)

func TestOutputFormatParse(t *testing.T) {
	a := assert.New(t)

	for raw, expected := range map[string]OutputFormat{
		"text": EOutputFormat.Text(),
		"json": EOutputFormat.Json(),
		"none": EOutputFormat.None(),
		"Text": EOutputFormat.Text(),
		"JSON": EOutputFormat.Json(),
	} {
		var of OutputFormat
		a.NoError(of.Parse(raw), raw)
		a.Equal(expected, of, raw)
	}

	var of OutputFormat
	a.Error(of.Parse("yaml"))

	a.Equal("Json", EOutputFormat.Json().String())
}

func TestQueryKindParseRoundTrip(t *testing.T) {
	a := assert.New(t)

	kinds := []QueryKind{
		EQueryKind.HasAll(), EQueryKind.HasAny(), EQueryKind.HasNone(), EQueryKind.HasOnly(),
		EQueryKind.IsExactly(), EQueryKind.IsAny(), EQueryKind.IsNot(), EQueryKind.IsNone(),
	}

	for _, kind := range kinds {
		var parsed QueryKind
		a.NoError(parsed.Parse(kind.String()))
		a.Equal(kind, parsed)
	}

	// Parsing is case-insensitive, matching the other flag enums.
	var parsed QueryKind
	a.NoError(parsed.Parse("hasall"))
	a.Equal(EQueryKind.HasAll(), parsed)

	a.Error(parsed.Parse("contains"))
}

func TestQueryKindEvaluate(t *testing.T) {
	a := assert.New(t)

	target := layermask.MustNew(1, 2, 3)
	one := layermask.MustNew(1)
	two := layermask.MustNew(2)
	nine := layermask.MustNew(9)
	whole := layermask.MustNew(1, 2, 3)

	verdicts := map[QueryKind][2]bool{
		// {verdict for (1, 2), verdict for (9,)}
		EQueryKind.HasAll():  {true, false},
		EQueryKind.HasAny():  {true, false},
		EQueryKind.HasNone(): {false, true},
		EQueryKind.HasOnly(): {false, false},
		EQueryKind.IsAny():   {false, false},
		EQueryKind.IsNone():  {true, true},
	}

	for kind, expected := range verdicts {
		a.Equal(expected[0], kind.Evaluate(target, one, two), kind.String())
		a.Equal(expected[1], kind.Evaluate(target, nine), kind.String())
	}

	a.True(EQueryKind.HasOnly().Evaluate(target, one, two, layermask.MustNew(3)))
	a.True(EQueryKind.IsExactly().Evaluate(target, one, two, layermask.MustNew(3)))
	a.False(EQueryKind.IsExactly().Evaluate(target, one, two))
	a.True(EQueryKind.IsNot().Evaluate(target, one, two))
	a.True(EQueryKind.IsAny().Evaluate(target, whole, nine))
}

func TestCombineOpParseRoundTrip(t *testing.T) {
	a := assert.New(t)

	ops := []CombineOp{
		ECombineOp.Union(), ECombineOp.Intersect(), ECombineOp.Subtract(), ECombineOp.Complement(),
	}

	for _, op := range ops {
		var parsed CombineOp
		a.NoError(parsed.Parse(op.String()))
		a.Equal(op, parsed)
	}

	var parsed CombineOp
	a.NoError(parsed.Parse("subtract"))
	a.Equal(ECombineOp.Subtract(), parsed)

	a.Error(parsed.Parse("xor"))
}

func TestCombineOpApply(t *testing.T) {
	a := assert.New(t)

	A := layermask.MustNew(1, 2, 3)
	B := layermask.MustNew(2, 3, 4)
	C := layermask.MustNew(3)

	a.Equal(layermask.MustNew(1, 2, 3, 4), ECombineOp.Union().Apply(A, B))
	a.Equal(layermask.MustNew(3), ECombineOp.Intersect().Apply(A, B, C))
	a.Equal(layermask.MustNew(1), ECombineOp.Subtract().Apply(A, B))

	// Subtract folds left to right, so later operands keep clearing.
	a.Equal(layermask.Mask{}, ECombineOp.Subtract().Apply(C, A, B))

	// Complement unions everything first, then inverts within the universe.
	a.Equal(layermask.MustNew(1, 2, 3, 4).Complement(), ECombineOp.Complement().Apply(A, B))
	a.Equal(layermask.AllLayers, ECombineOp.Complement().Apply())

	// A single operand passes through untouched for the pairwise operations.
	a.Equal(A, ECombineOp.Union().Apply(A))
	a.Equal(A, ECombineOp.Subtract().Apply(A))
	a.Equal(layermask.Mask{}, ECombineOp.Union().Apply())
}
