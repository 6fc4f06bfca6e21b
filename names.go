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
	"fmt"
	"sync"
)

// NameTable maps layers to the display names the host runtime knows them by.
// The core operates on indices alone; names exist for diagnostics, and a
// missing entry is reported loudly rather than papered over with a
// placeholder, so drift between the enumeration and its labels surfaces
// immediately. A NameTable is safe for concurrent use.
type NameTable struct {
	lock   sync.RWMutex
	names  map[Layer]string
	layers map[string]Layer
}

func NewNameTable() *NameTable {
	return &NameTable{
		names:  make(map[Layer]string),
		layers: make(map[string]Layer),
	}
}

// SetName registers or replaces the display name of l. The empty string is
// rejected, as is a name already registered to a different layer; either would
// leave reverse lookups ambiguous.
func (nt *NameTable) SetName(l Layer, name string) error {
	if l > MaxLayerIndex {
		return &OutOfRangeError{Index: int(l)}
	}
	if name == "" {
		return fmt.Errorf("layer %v cannot be named the empty string", l)
	}
	nt.lock.Lock()
	defer nt.lock.Unlock()
	if existing, ok := nt.layers[name]; ok && existing != l {
		return fmt.Errorf("name %q is already registered to layer %v", name, existing)
	}
	if old, ok := nt.names[l]; ok {
		delete(nt.layers, old)
	}
	nt.names[l] = name
	nt.layers[name] = l
	return nil
}

// Name returns the display name registered for l, or an *UnknownLayerError if
// the host never registered one.
func (nt *NameTable) Name(l Layer) (string, error) {
	if l > MaxLayerIndex {
		return "", &OutOfRangeError{Index: int(l)}
	}
	nt.lock.RLock()
	name, ok := nt.names[l]
	nt.lock.RUnlock()
	if !ok {
		return "", &UnknownLayerError{Layer: l}
	}
	return name, nil
}

// LayerOf is the reverse lookup: the layer registered under name.
func (nt *NameTable) LayerOf(name string) (Layer, error) {
	nt.lock.RLock()
	l, ok := nt.layers[name]
	nt.lock.RUnlock()
	if !ok {
		return 0, fmt.Errorf("no layer is registered under the name %q", name)
	}
	return l, nil
}

// NamesOf resolves every member layer of m in ascending index order. The first
// layer without a registered name fails the whole call.
func (nt *NameTable) NamesOf(m Mask) ([]string, error) {
	names := make([]string, 0, m.LayerCount())
	var err error
	nt.lock.RLock()
	m.EnumerateLayers(func(l Layer) bool {
		name, ok := nt.names[l]
		if !ok {
			err = &UnknownLayerError{Layer: l}
			return true
		}
		names = append(names, name)
		return false
	})
	nt.lock.RUnlock()
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Len returns the number of layers with a registered name.
func (nt *NameTable) Len() int {
	nt.lock.RLock()
	defer nt.lock.RUnlock()
	return len(nt.names)
}
