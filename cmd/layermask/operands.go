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
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/wastore/layermask"
)

// parseOperand resolves one argument into a Mask. Only a 0x-prefixed string is
// a raw bit pattern; a plain number is a layer index, and anything else is a
// display name resolved through the --names table.
func parseOperand(arg string) (layermask.Mask, error) {
	if strings.HasPrefix(arg, "0x") || strings.HasPrefix(arg, "0X") {
		pattern, err := strconv.ParseUint(arg[2:], 16, 32)
		if err != nil {
			return layermask.Mask{}, fmt.Errorf("cannot read %s as a 32-bit hex pattern: %w", arg, err)
		}
		return layermask.FromBits(uint32(pattern)), nil
	}

	if _, err := strconv.Atoi(arg); err == nil {
		l, err := layermask.ParseLayer(arg)
		if err != nil {
			return layermask.Mask{}, err
		}
		return l.Mask(), nil
	}

	if nameTable == nil {
		return layermask.Mask{}, errors.New("operand " + arg + " is not a layer index or 0x pattern; use --names to resolve display names")
	}
	l, err := nameTable.LayerOf(arg)
	if err != nil {
		return layermask.Mask{}, err
	}
	return l.Mask(), nil
}

func parseOperands(args []string) ([]layermask.Mask, error) {
	masks := make([]layermask.Mask, 0, len(args))
	for _, arg := range args {
		m, err := parseOperand(arg)
		if err != nil {
			return nil, err
		}
		masks = append(masks, m)
	}
	return masks, nil
}

// asOperands widens parsed masks for the variadic query surfaces.
func asOperands(masks []layermask.Mask) []interface{} {
	operands := make([]interface{}, len(masks))
	for i, m := range masks {
		operands[i] = m
	}
	return operands
}
