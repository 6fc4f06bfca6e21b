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

var checkQueryRaw string

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:     "check [target] [candidate]...",
	Short:   checkCmdShortDescription,
	Long:    checkCmdLongDescription,
	Example: checkCmdExample,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var query QueryKind
		if err := query.Parse(checkQueryRaw); err != nil {
			return errors.Wrapf(err, "failed to parse the query kind %q", checkQueryRaw)
		}

		target, err := parseOperand(args[0])
		if err != nil {
			return errors.Wrapf(err, "failed to parse the target %q", args[0])
		}
		candidates, err := parseOperands(args[1:])
		if err != nil {
			return err
		}

		verdict := query.Evaluate(target, asOperands(candidates)...)
		if !verdict {
			finalExitCode = EExitCode.NoMatch()
		}

		printOutput(checkText(query, target, candidates, verdict), CheckJsonTemplate{
			Target:     target.String(),
			Query:      query.String(),
			Candidates: maskStrings(candidates),
			Verdict:    verdict,
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.PersistentFlags().StringVar(&checkQueryRaw, "query", "HasAll", "Predicate to run against the target. "+
		"Available values include: HasAll, HasAny, HasNone, HasOnly, IsExactly, IsAny, IsNot, IsNone.")
}

func checkText(query QueryKind, target layermask.Mask, candidates []layermask.Mask, verdict bool) string {
	return fmt.Sprintf("%v.%v(%s) = %v",
		target, query, strings.Join(maskStrings(candidates), ", "), verdict)
}

func maskStrings(masks []layermask.Mask) []string {
	rendered := make([]string, len(masks))
	for i, m := range masks {
		rendered[i] = m.String()
	}
	return rendered
}
