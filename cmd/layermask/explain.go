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

	"github.com/spf13/cobra"
	"github.com/wastore/layermask"
)

// explainCmd represents the explain command
var explainCmd = &cobra.Command{
	Use:     "explain [operand]...",
	Short:   explainCmdShortDescription,
	Long:    explainCmdLongDescription,
	Example: explainCmdExample,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			m, err := parseOperand(arg)
			if err != nil {
				return err
			}

			var names []string
			if nameTable != nil {
				names, err = nameTable.NamesOf(m)
				if err != nil {
					return err
				}
			}

			printOutput(explainText(arg, m, names), ExplainJsonTemplate{
				Input:      arg,
				Mask:       m.String(),
				Bits:       m.Bits(),
				LayerCount: m.LayerCount(),
				Layers:     layerIndices(m),
				Names:      names,
			})
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func explainText(input string, m layermask.Mask, names []string) string {
	members := make([]string, 0, m.LayerCount())
	for i, l := range m.Layers() {
		if names != nil {
			members = append(members, l.String()+"="+names[i])
		} else {
			members = append(members, l.String())
		}
	}

	var sb strings.Builder
	sb.WriteString(input + " -> " + m.String() + "\n")
	sb.WriteString(fmt.Sprintf("Layer count: %d\n", m.LayerCount()))
	sb.WriteString("Layers: " + strings.Join(members, ", "))
	return sb.String()
}
