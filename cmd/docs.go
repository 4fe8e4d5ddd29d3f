package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// docsCmd writes Markdown documentation for every command
var docsCmd = &cobra.Command{
	Use:    "docs [dir]",
	Short:  "Write Markdown documentation for each command",
	Args:   cobra.MaximumNArgs(1),
	RunE:   docsExec,
	Hidden: true,
}

// docsExec writes the docs to the directory argument, ./docs by default
func docsExec(cmd *cobra.Command, args []string) error {
	dir := "./docs"
	if len(args) > 0 {
		dir = args[0]
	}
	return makeDocs(dir)
}

// makeDocs writes a Markdown page per available command with the
// front matter of the just-the-docs theme:
// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
func makeDocs(dir string) error {
	pages := docPages(RootCmd)

	prepender := func(filename string) string {
		if c, ok := pages[docName(filename)]; ok {
			return frontMatter(c)
		}
		return ""
	}

	if err := doc.GenMarkdownTreeCustom(RootCmd, dir, prepender, linkHandler); err != nil {
		return fmt.Errorf("failed to write docs to %s: %w", dir, err)
	}
	return nil
}

// docPages maps the base name of each command's page to the command,
// the same name cobra/doc gives the page: "seqmotif_find_exact"
func docPages(root *cobra.Command) map[string]*cobra.Command {
	pages := make(map[string]*cobra.Command)

	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		pages[strings.ReplaceAll(c.CommandPath(), " ", "_")] = c
		for _, sub := range c.Commands() {
			if sub.IsAvailableCommand() {
				walk(sub)
			}
		}
	}
	walk(root)

	return pages
}

// frontMatter is the YAML heading of a command's page. A page's parent
// and grandparent come from the command tree, its nav order from its
// position among its siblings
func frontMatter(c *cobra.Command) string {
	var b strings.Builder
	b.WriteString("---\nlayout: default\n")
	fmt.Fprintf(&b, "title: %s\n", c.Name())

	if parent := c.Parent(); parent != nil {
		fmt.Fprintf(&b, "parent: %s\n", parent.Name())
		if grandParent := parent.Parent(); grandParent != nil {
			fmt.Fprintf(&b, "grand_parent: %s\n", grandParent.Name())
		}
	}
	fmt.Fprintf(&b, "nav_order: %d\n", navOrder(c))

	if c.HasAvailableSubCommands() {
		b.WriteString("has_children: true\n")
	}
	if !c.HasParent() {
		b.WriteString("permalink: /\n")
	}

	b.WriteString("---\n")
	return b.String()
}

// navOrder is the index of c among the available commands of its parent
func navOrder(c *cobra.Command) int {
	if !c.HasParent() {
		return 0
	}

	i := 0
	for _, sibling := range c.Parent().Commands() {
		if sibling == c {
			return i
		}
		if sibling.IsAvailableCommand() {
			i++
		}
	}
	return i
}

// docName is the base name of a page without its extension
func docName(filename string) string {
	name := filepath.Base(filename)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	if base := docName(filename); base != RootCmd.Name() {
		return base
	}
	return "/"
}

// set flags
func init() {
	RootCmd.AddCommand(docsCmd)
}
