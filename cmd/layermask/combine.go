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
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/wastore/layermask"
)

var combineOpRaw string

// combineCmd represents the combine command
var combineCmd = &cobra.Command{
	Use:     "combine [operand]...",
	Short:   combineCmdShortDescription,
	Long:    combineCmdLongDescription,
	Example: combineCmdExample,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var op CombineOp
		if err := op.Parse(combineOpRaw); err != nil {
			return errors.Wrapf(err, "failed to parse the operation %q", combineOpRaw)
		}

		operands, err := parseOperands(args)
		if err != nil {
			return err
		}

		result := op.Apply(operands...)

		printOutput(combineText(op, operands, result), CombineJsonTemplate{
			Op:       op.String(),
			Operands: maskStrings(operands),
			Result:   result.String(),
			Bits:     result.Bits(),
			Layers:   layerIndices(result),
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(combineCmd)

	combineCmd.PersistentFlags().StringVar(&combineOpRaw, "op", "Union", "Operation to fold across the operands. "+
		"Available values include: Union, Intersect, Subtract, Complement.")
}

func combineText(op CombineOp, operands []layermask.Mask, result layermask.Mask) string {
	members := make([]string, 0, result.LayerCount())
	for _, l := range result.Layers() {
		members = append(members, l.String())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%v(%s) -> %v\n", op, strings.Join(maskStrings(operands), ", "), result))
	sb.WriteString(fmt.Sprintf("Layer count: %d\n", result.LayerCount()))
	sb.WriteString("Layers: " + strings.Join(members, ", "))
	return sb.String()
}
