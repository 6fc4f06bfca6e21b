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
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wastore/layermask"
)

var outputFormatRaw string
var namesFilePath string
var outputFormat OutputFormat
var nameTable *layermask.NameTable
var finalExitCode = EExitCode.Success()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "layermask",
	Short: rootCmdShortDescription,
	Long:  rootCmdLongDescription,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		err := outputFormat.Parse(outputFormatRaw)
		if err != nil {
			return err
		}

		if namesFilePath != "" {
			nameTable, err = loadNameTable(namesFilePath)
			if err != nil {
				return err
			}
		}
		return nil
	},
}

// Execute runs the command tree once and reports the process exit code.
// This is called by main.main().
func Execute() ExitCode {
	finalExitCode = EExitCode.Success()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return EExitCode.Error()
	}
	return finalExitCode
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFormatRaw, "output-type", "text", "Format of the command's output. The choices include: text, json, none. The default value is 'text'.")
	rootCmd.PersistentFlags().StringVar(&namesFilePath, "names", "", "Path of a JSON file of display names for layer indices, e.g. {\"3\": \"Water\"}. Operands that are neither numbers nor 0x patterns resolve through this table.")
}

// printOutput renders one command result in the selected output format.
// EOutputFormat.None suppresses printing; verdicts still reach the caller
// through the exit code.
func printOutput(textForm string, jsonTemplate interface{}) {
	switch outputFormat {
	case EOutputFormat.Json():
		fmt.Println(GetJsonStringFromTemplate(jsonTemplate))
	case EOutputFormat.None():
		// nothing
	default:
		fmt.Println(textForm)
	}
}

func loadNameTable(path string) (*layermask.NameTable, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read the layer name file %s: %w", path, err)
	}

	entries := make(map[string]string)
	if err = json.Unmarshal(content, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse the layer name file %s: %w", path, err)
	}

	table := layermask.NewNameTable()
	for indexText, name := range entries {
		l, err := layermask.ParseLayer(indexText)
		if err != nil {
			return nil, fmt.Errorf("the layer name file %s has a bad index %q: %w", path, indexText, err)
		}
		if err = table.SetName(l, name); err != nil {
			return nil, fmt.Errorf("the layer name file %s has a bad entry for layer %v: %w", path, l, err)
		}
	}
	return table, nil
}
