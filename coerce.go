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

// coerce normalizes one operand into a Mask. Integers of every width are layer
// indices, never raw bit patterns; FromBits is the only raw-bits entry point.
// Unrecognized shapes yield an *UnsupportedOperandError.
func coerce(operand interface{}) (Mask, error) {
	switch v := operand.(type) {
	case Mask:
		return v, nil
	case Layer:
		return indexMask(int64(v))
	case int:
		return indexMask(int64(v))
	case int8:
		return indexMask(int64(v))
	case int16:
		return indexMask(int64(v))
	case int32:
		return indexMask(int64(v))
	case int64:
		return indexMask(v)
	case uint:
		return indexMask(int64(v))
	case uint8:
		return indexMask(int64(v))
	case uint16:
		return indexMask(int64(v))
	case uint32:
		return indexMask(int64(v))
	case uint64:
		return indexMask(int64(v))
	case []Layer:
		var bits uint32
		for _, l := range v {
			m, err := indexMask(int64(l))
			if err != nil {
				return Mask{}, err
			}
			bits = withBits(bits, m.bits)
		}
		return Mask{bits: bits}, nil
	case []int:
		var bits uint32
		for _, index := range v {
			m, err := indexMask(int64(index))
			if err != nil {
				return Mask{}, err
			}
			bits = withBits(bits, m.bits)
		}
		return Mask{bits: bits}, nil
	case []Mask:
		var bits uint32
		for _, m := range v {
			bits = withBits(bits, m.bits)
		}
		return Mask{bits: bits}, nil
	case []interface{}:
		return combine(v...)
	default:
		return Mask{}, &UnsupportedOperandError{Value: operand}
	}
}

// combine coerces every operand and unions the results. No operands means the
// empty mask, the union identity.
func combine(operands ...interface{}) (Mask, error) {
	var bits uint32
	for _, operand := range operands {
		m, err := coerce(operand)
		if err != nil {
			return Mask{}, err
		}
		bits = withBits(bits, m.bits)
	}
	return Mask{bits: bits}, nil
}

// indexMask validates a layer index and returns its single-bit mask. The check
// runs in the int64 domain so that oversized inputs of any source width fail
// instead of wrapping into a valid index.
func indexMask(index int64) (Mask, error) {
	if index < 0 || index > MaxLayerIndex {
		return Mask{}, &OutOfRangeError{Index: int(index)}
	}
	return Mask{bits: uint32(1) << index}, nil
}

func mustCoerce(operand interface{}) Mask {
	m, err := coerce(operand)
	if err != nil {
		panic(err)
	}
	return m
}

func mustCombine(operands ...interface{}) Mask {
	m, err := combine(operands...)
	if err != nil {
		panic(err)
	}
	return m
}
