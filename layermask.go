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

// Package layermask provides a strongly-typed bitmask over a fixed universe of
// 32 layers, numbered 0 through 31. It replaces raw integer bit twiddling with
// an immutable Mask value whose constructors always read integers as layer
// indices, never as pre-built bit patterns; FromBits is the one explicit
// exception. That rule is what keeps "layer 5" and "bit pattern 5" from ever
// being confused.
package layermask

import (
	"fmt"
	"math/bits"
)

// Mask is an immutable set of layers, one bit per layer index. The zero value
// is the empty mask. Masks are comparable: == is bits equality, so a Mask is
// usable directly as a map key.
//
// Operands to construction, algebra and query methods may be a Mask, a Layer,
// a layer index of any integer width, or a slice of those. The erroring
// constructors report bad operands; the fluent algebra and query methods panic
// with the same typed error values instead, so callers with untrusted input
// validate through New or NewLayer first.
type Mask struct {
	bits uint32
}

// AllLayers is the full universe, all 32 layers set.
var AllLayers = Mask{bits: ^uint32(0)}

// New builds a Mask as the union of the given operands. No operands yields the
// empty mask.
func New(operands ...interface{}) (Mask, error) {
	return combine(operands...)
}

// MustNew is New for operands known to be valid; it panics with the error
// New would return.
func MustNew(operands ...interface{}) Mask {
	return mustCombine(operands...)
}

// FromLayers builds a Mask from already-typed layers. Layers forged out of
// range via a raw conversion fail the same way out-of-range indices do.
func FromLayers(layers ...Layer) (Mask, error) {
	return coerce(layers)
}

// FromBits wraps a raw 32-bit pattern verbatim. This is the single entry point
// that reads an integer as bits instead of as a layer index.
func FromBits(bits uint32) Mask {
	return Mask{bits: bits}
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

// Union returns the mask holding every layer of m plus every layer of the
// operands. Union never mutates an operand; the result is a new Mask.
func (m Mask) Union(operands ...interface{}) Mask {
	return Mask{bits: withBits(m.bits, mustCombine(operands...).bits)}
}

// Plus is an alternate spelling of Union for call sites that read better
// additively.
func (m Mask) Plus(operands ...interface{}) Mask {
	return m.Union(operands...)
}

// Intersect returns the mask holding only the layers present both in m and in
// the union of the operands. With no operands the result is empty.
func (m Mask) Intersect(operands ...interface{}) Mask {
	return Mask{bits: keepBits(m.bits, mustCombine(operands...).bits)}
}

// Subtract returns m with every layer of the operands cleared. Clearing a
// layer m never had is a no-op, not an error.
func (m Mask) Subtract(operands ...interface{}) Mask {
	return Mask{bits: clearBits(m.bits, mustCombine(operands...).bits)}
}

// Complement returns the mask holding exactly the layers m does not. The
// uint32 representation keeps the result inside the 32-layer universe, so
// m.Complement().Complement() == m always holds.
func (m Mask) Complement() Mask {
	return Mask{bits: ^m.bits}
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

// Equal reports whether m is exactly v: for a mask operand, bits equality; for
// a single layer or index, "m is exactly and only that layer"; for a
// collection, "m equals the union of the whole collection". Equality is
// stricter than containment: Mask holding layers 1 and 2 Contains(1) but is
// not Equal(1).
func (m Mask) Equal(v interface{}) bool {
	return m.bits == mustCoerce(v).bits
}

// NotEqual is the logical negation of Equal for the same operand.
func (m Mask) NotEqual(v interface{}) bool {
	return !m.Equal(v)
}

// Contains reports whether every layer of v is present in m. The empty mask is
// contained in every mask, vacuously.
func (m Mask) Contains(v interface{}) bool {
	return containsAllBits(m.bits, mustCoerce(v).bits)
}

// ContainsAndNotEmpty reports containment of v and that v brings at least one
// layer, distinguishing real overlap from the vacuous empty-set case.
func (m Mask) ContainsAndNotEmpty(v interface{}) bool {
	other := mustCoerce(v)
	return other.bits != 0 && containsAllBits(m.bits, other.bits)
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

// Bits returns the raw 32-bit pattern; the explicit numeric view.
func (m Mask) Bits() uint32 {
	return m.bits
}

// IsEmpty reports whether no layer is set.
func (m Mask) IsEmpty() bool {
	return m.bits == 0
}

// IsNonEmpty reports whether at least one layer is set; the explicit boolean
// view.
func (m Mask) IsNonEmpty() bool {
	return m.bits != 0
}

// LayerCount returns the number of layers set.
func (m Mask) LayerCount() int {
	return bits.OnesCount32(m.bits)
}

// Layers returns the member layers in ascending index order. The slice is
// freshly allocated on every call; m itself never changes.
func (m Mask) Layers() []Layer {
	layers := make([]Layer, 0, m.LayerCount())
	m.EnumerateLayers(func(l Layer) bool {
		layers = append(layers, l)
		return false
	})
	return layers
}

// EnumerateLayers calls callback for each member layer in ascending index
// order, stopping early if callback returns true. Enumerating twice yields the
// same sequence.
func (m Mask) EnumerateLayers(callback func(l Layer) (stop bool)) {
	for i := 0; i < LayerUniverseSize; i++ {
		if m.bits&(uint32(1)<<uint(i)) != 0 {
			if callback(Layer(i)) {
				return
			}
		}
	}
}

// String renders the bit pattern as fixed-width hex, e.g. "0x00000060".
func (m Mask) String() string {
	return fmt.Sprintf("0x%08X", m.bits)
}
