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
	"encoding/json"
	"reflect"

	"github.com/JeffreyRichter/enum/enum"
	"github.com/wastore/layermask"
)

var EOutputFormat = OutputFormat(0)

type OutputFormat uint32

func (OutputFormat) None() OutputFormat { return OutputFormat(0) }
func (OutputFormat) Text() OutputFormat { return OutputFormat(1) }
func (OutputFormat) Json() OutputFormat { return OutputFormat(2) }

func (of *OutputFormat) Parse(s string) error {
	val, err := enum.Parse(reflect.TypeOf(of), s, true)
	if err == nil {
		*of = val.(OutputFormat)
	}
	return err
}

func (of OutputFormat) String() string {
	return enum.StringInt(of, reflect.TypeOf(of))
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

var EQueryKind = QueryKind(0)

// QueryKind selects which batch predicate of the two query views runs against
// the target mask: the Has prefix is containment, the Is prefix is identity.
type QueryKind uint8

func (QueryKind) HasAll() QueryKind    { return QueryKind(0) }
func (QueryKind) HasAny() QueryKind    { return QueryKind(1) }
func (QueryKind) HasNone() QueryKind   { return QueryKind(2) }
func (QueryKind) HasOnly() QueryKind   { return QueryKind(3) }
func (QueryKind) IsExactly() QueryKind { return QueryKind(4) }
func (QueryKind) IsAny() QueryKind     { return QueryKind(5) }
func (QueryKind) IsNot() QueryKind     { return QueryKind(6) }
func (QueryKind) IsNone() QueryKind    { return QueryKind(7) }

func (qk *QueryKind) Parse(s string) error {
	val, err := enum.Parse(reflect.TypeOf(qk), s, true)
	if err == nil {
		*qk = val.(QueryKind)
	}
	return err
}

func (qk QueryKind) String() string {
	return enum.StringInt(qk, reflect.TypeOf(qk))
}

// Evaluate runs the selected predicate of target against the candidates.
func (qk QueryKind) Evaluate(target layermask.Mask, candidates ...interface{}) bool {
	switch qk {
	case EQueryKind.HasAll():
		return target.Has().All(candidates...)
	case EQueryKind.HasAny():
		return target.Has().Any(candidates...)
	case EQueryKind.HasNone():
		return target.Has().None(candidates...)
	case EQueryKind.HasOnly():
		return target.Has().Only(candidates...)
	case EQueryKind.IsExactly():
		return target.Is().Exactly(candidates...)
	case EQueryKind.IsAny():
		return target.Is().Any(candidates...)
	case EQueryKind.IsNot():
		return target.Is().Not(candidates...)
	case EQueryKind.IsNone():
		return target.Is().None(candidates...)
	default:
		panic("unexpected query kind " + qk.String())
	}
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

var ECombineOp = CombineOp(0)

type CombineOp uint8

func (CombineOp) Union() CombineOp      { return CombineOp(0) }
func (CombineOp) Intersect() CombineOp  { return CombineOp(1) }
func (CombineOp) Subtract() CombineOp   { return CombineOp(2) }
func (CombineOp) Complement() CombineOp { return CombineOp(3) }

func (op *CombineOp) Parse(s string) error {
	val, err := enum.Parse(reflect.TypeOf(op), s, true)
	if err == nil {
		*op = val.(CombineOp)
	}
	return err
}

func (op CombineOp) String() string {
	return enum.StringInt(op, reflect.TypeOf(op))
}

// Apply folds the operation across the operands left to right, so intersect
// and subtract chain pairwise rather than against one pre-unioned right side.
// Complement unions everything first and inverts the result.
func (op CombineOp) Apply(operands ...layermask.Mask) layermask.Mask {
	if op == ECombineOp.Complement() {
		all := layermask.Mask{}
		for _, m := range operands {
			all = all.Union(m)
		}
		return all.Complement()
	}

	if len(operands) == 0 {
		return layermask.Mask{}
	}
	result := operands[0]
	for _, m := range operands[1:] {
		switch op {
		case ECombineOp.Union():
			result = result.Union(m)
		case ECombineOp.Intersect():
			result = result.Intersect(m)
		case ECombineOp.Subtract():
			result = result.Subtract(m)
		}
	}
	return result
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

var EExitCode = ExitCode(0)

type ExitCode uint32

func (ExitCode) Success() ExitCode { return ExitCode(0) }

// NoMatch means the check ran cleanly but the verdict was false, so scripts
// can branch on the exit code alone.
func (ExitCode) NoMatch() ExitCode { return ExitCode(1) }
func (ExitCode) Error() ExitCode   { return ExitCode(2) }

// -------------------------------------- JSON templates -------------------------------------- //
// used to help formatting of JSON outputs

func GetJsonStringFromTemplate(template interface{}) string {
	jsonOutput, err := json.Marshal(template)
	panicIfErr(err)

	return string(jsonOutput)
}

type ExplainJsonTemplate struct {
	Input      string
	Mask       string
	Bits       uint32
	LayerCount int
	Layers     []int
	Names      []string
}

type CheckJsonTemplate struct {
	Target     string
	Query      string
	Candidates []string
	Verdict    bool
}

type CombineJsonTemplate struct {
	Op       string
	Operands []string
	Result   string
	Bits     uint32
	Layers   []int
}

func layerIndices(m layermask.Mask) []int {
	indices := make([]int, 0, m.LayerCount())
	for _, l := range m.Layers() {
		indices = append(indices, l.Index())
	}
	return indices
}

func panicIfErr(err error) {
	if err != nil {
		panic(err)
	}
}
