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
	"strconv"
)

const (
	// MaxLayerIndex is the highest valid layer index.
	MaxLayerIndex = 31

	// LayerUniverseSize is the number of layer slots in the universe.
	LayerUniverseSize = 32
)

// Layer identifies one slot of the 32-slot classification universe by its
// index in [0, MaxLayerIndex]. A Layer is a nominal label, not a bit pattern;
// only Mask translates layers into bits. Display names for layers live in a
// host-owned NameTable, not on the Layer itself.
type Layer uint8

// NewLayer validates index and returns it as a Layer. An index outside
// [0, MaxLayerIndex] yields an *OutOfRangeError.
func NewLayer(index int) (Layer, error) {
	if index < 0 || index > MaxLayerIndex {
		return 0, &OutOfRangeError{Index: index}
	}
	return Layer(index), nil
}

// MustLayer is NewLayer for indices known at compile time; it panics with the
// *OutOfRangeError instead of returning it.
func MustLayer(index int) Layer {
	l, err := NewLayer(index)
	if err != nil {
		panic(err)
	}
	return l
}

// ParseLayer parses a decimal layer index, e.g. "7".
func ParseLayer(s string) (Layer, error) {
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return NewLayer(index)
}

// Index returns the layer's numeric index.
func (l Layer) Index() int {
	return int(l)
}

// Bit returns the single-bit pattern of the layer, 1 << index.
// A Layer forged out of range via a raw conversion panics here with the same
// *OutOfRangeError the constructors return.
func (l Layer) Bit() uint32 {
	if l > MaxLayerIndex {
		panic(&OutOfRangeError{Index: int(l)})
	}
	return uint32(1) << l
}

// Mask promotes the layer to a Mask containing exactly that layer.
func (l Layer) Mask() Mask {
	return Mask{bits: l.Bit()}
}

func (l Layer) String() string {
	return strconv.Itoa(int(l))
}
