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
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/spf13/pflag"
)

var docCmdInput = struct {
	outputLocation string
	format         string
}{}

// docCmd represents the doc command
var docCmd = &cobra.Command{
	Use:   "doc",
	Short: docCmdShortDescription,
	Long:  docCmdLongDescription,
	RunE: func(cmd *cobra.Command, args []string) error {
		// verify the output location
		f, err := os.Stat(docCmdInput.outputLocation)
		switch {
		case err != nil && os.IsNotExist(err):
			// create the output location if it does not exist yet
			if err = os.MkdirAll(docCmdInput.outputLocation, os.ModePerm); err != nil {
				return errors.Wrap(err, "unable to create the output location")
			}
		case err != nil:
			return errors.Wrap(err, "cannot access the output location")
		case !f.IsDir():
			return fmt.Errorf("the output location %s is invalid as it is pointing to a file", docCmdInput.outputLocation)
		}

		switch docCmdInput.format {
		case "table":
			// one page per command, flags rendered as markdown tables
			return generateReferencePages(rootCmd, docCmdInput.outputLocation)
		default:
			// dump the entire command tree's doc into the folder
			// it will include this command too, which is intended
			return doc.GenMarkdownTree(rootCmd, docCmdInput.outputLocation)
		}
	},
}

func init() {
	rootCmd.AddCommand(docCmd)
	docCmd.PersistentFlags().StringVar(&docCmdInput.outputLocation, "output-location", "./doc",
		"where to put the generated markdown files")
	docCmd.PersistentFlags().StringVar(&docCmdInput.format, "format", "default",
		"output format: 'default' (cobra standard) or 'table' (one page per command with flag tables)")
}

// flagRow holds information about a command flag for templating
type flagRow struct {
	Name         string
	Type         string
	DefaultValue string
	Description  string
}

// commandPage holds information about a command for templating
type commandPage struct {
	FullName          string
	Short             string
	Long              string
	UseLine           string
	Example           string
	LocalFlags        []flagRow
	InheritedFlags    []flagRow
	HasExample        bool
	HasLocalFlags     bool
	HasInheritedFlags bool
}

// generateReferencePages writes one markdown page per visible command in the
// tree rooted at root.
func generateReferencePages(root *cobra.Command, outputDir string) error {
	tmpl, err := template.New("command").Parse(referencePageTemplate)
	if err != nil {
		return err
	}

	var walk func(c *cobra.Command) error
	walk = func(c *cobra.Command) error {
		page := newCommandPage(c)

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, page); err != nil {
			return errors.Wrapf(err, "failed to generate the page for %s", c.Name())
		}

		// "layermask check" becomes layermask_check.md, the cobra default scheme
		filename := filepath.Join(outputDir, strings.ReplaceAll(c.CommandPath(), " ", "_")+".md")
		if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
			return err
		}

		for _, child := range c.Commands() {
			if child.Hidden || !child.IsAvailableCommand() {
				continue
			}
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(root)
}

func newCommandPage(cmd *cobra.Command) commandPage {
	page := commandPage{
		FullName:       cmd.CommandPath(),
		Short:          cmd.Short,
		Long:           cmd.Long,
		UseLine:        cmd.UseLine(),
		Example:        cmd.Example,
		LocalFlags:     flagRows(cmd.LocalFlags()),
		InheritedFlags: flagRows(cmd.InheritedFlags()),
	}

	page.HasExample = len(page.Example) > 0
	page.HasLocalFlags = len(page.LocalFlags) > 0
	page.HasInheritedFlags = len(page.InheritedFlags) > 0
	return page
}

func flagRows(flags *pflag.FlagSet) []flagRow {
	rows := make([]flagRow, 0)
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		rows = append(rows, flagRow{
			Name:         "--" + f.Name,
			Type:         f.Value.Type(),
			DefaultValue: f.DefValue,
			Description:  cleanDescription(f.Usage),
		})
	})
	return rows
}

func cleanDescription(s string) string {
	// Replace newlines with spaces and trim
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	// Remove multiple spaces
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	// Escape pipe characters for markdown tables
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.TrimSpace(s)
}

const referencePageTemplate = `# {{ .FullName }}

{{ .Short }}

## Synopsis

{{ .Long }}

## Usage

` + "```" + `bash
{{ .UseLine }}
` + "```" + `
{{ if .HasExample }}
## Examples

` + "```" + `bash
{{ .Example }}
` + "```" + `
{{ end }}
{{ if .HasLocalFlags }}
## Options

| Flag | Type | Default | Description |
|------|------|---------|-------------|
{{ range .LocalFlags }}| ` + "`{{ .Name }}`" + ` | {{ .Type }} | ` + "`{{ .DefaultValue }}`" + ` | {{ .Description }} |
{{ end }}{{ end }}
{{ if .HasInheritedFlags }}
## Global Options

These options are inherited from parent commands.

| Flag | Type | Default | Description |
|------|------|---------|-------------|
{{ range .InheritedFlags }}| ` + "`{{ .Name }}`" + ` | {{ .Type }} | ` + "`{{ .DefaultValue }}`" + ` | {{ .Description }} |
{{ end }}{{ end }}
`
