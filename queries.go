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

// Has is the containment-style query view of one Mask: does the mask hold
// these candidates. A Has carries no state beyond the mask it was built from;
// build one per call site via Mask.Has().
type Has struct {
	m Mask
}

// Has returns the containment-style query view of m.
func (m Mask) Has() Has {
	return Has{m: m}
}

// All reports whether the mask contains every candidate. An empty candidate
// list is vacuously true.
func (h Has) All(candidates ...interface{}) bool {
	for _, c := range candidates {
		if !h.m.Contains(c) {
			return false
		}
	}
	return true
}

// Any reports whether the mask has real overlap with at least one candidate:
// the candidate is contained and brings at least one layer, so an empty
// candidate mask never counts as a match. An empty candidate list is false.
func (h Has) Any(candidates ...interface{}) bool {
	for _, c := range candidates {
		if h.m.ContainsAndNotEmpty(c) {
			return true
		}
	}
	return false
}

// None is the exact negation of Any for the same candidates.
func (h Has) None(candidates ...interface{}) bool {
	return !h.Any(candidates...)
}

// Only reports whether the candidates collectively account for every layer of
// the mask: the mask contains each candidate, and the union of all candidates
// has exactly the mask's LayerCount, leaving no extra layer on either side.
func (h Has) Only(candidates ...interface{}) bool {
	union := mustCombine(candidates...)
	return containsAllBits(h.m.bits, union.bits) && union.LayerCount() == h.m.LayerCount()
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

// Is is the identity-style query view of one Mask: is the mask exactly this.
// Identity is stricter than containment; see Mask.Equal. Build one per call
// site via Mask.Is().
type Is struct {
	m Mask
}

// Is returns the identity-style query view of m.
func (m Mask) Is() Is {
	return Is{m: m}
}

// Exactly reports whether the mask equals the union of all candidates taken
// together.
func (i Is) Exactly(candidates ...interface{}) bool {
	return i.m.bits == mustCombine(candidates...).bits
}

// Any reports whether the mask equals at least one individual candidate. Each
// candidate is compared on its own, not unioned: a mask of layers 5 and 6 is
// not Any(5, 7), because it equals neither candidate by itself.
func (i Is) Any(candidates ...interface{}) bool {
	for _, c := range candidates {
		if i.m.Equal(c) {
			return true
		}
	}
	return false
}

// Not is the negation of Exactly for the same candidates.
func (i Is) Not(candidates ...interface{}) bool {
	return !i.Exactly(candidates...)
}

// None reports whether the mask equals none of the individual candidates; the
// negation of Any.
func (i Is) None(candidates ...interface{}) bool {
	return !i.Any(candidates...)
}
