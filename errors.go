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

import "fmt"

// OutOfRangeError reports a layer index outside the [0, MaxLayerIndex] universe.
// Construction and query paths never truncate or wrap such an index; they fail
// with this error (returned from the erroring constructors, carried by the
// panics of the Must/fluent paths).
type OutOfRangeError struct {
	Index int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("layer index %d is outside the valid range [0, %d]", e.Index, MaxLayerIndex)
}

// UnknownLayerError reports a display-name lookup for a layer the name table
// has no entry for. It surfaces drift between the layer enumeration and its
// label table; the table never substitutes a placeholder string.
type UnknownLayerError struct {
	Layer Layer
}

func (e *UnknownLayerError) Error() string {
	return fmt.Sprintf("no display name registered for layer %d", int(e.Layer))
}

// UnsupportedOperandError reports an operand whose type is not one of the
// coercible shapes: Mask, Layer, a plain integer layer index, or a slice of
// those.
type UnsupportedOperandError struct {
	Value interface{}
}

func (e *UnsupportedOperandError) Error() string {
	return fmt.Sprintf("cannot interpret %T as a mask, a layer, or a layer index", e.Value)
}
