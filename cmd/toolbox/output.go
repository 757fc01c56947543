package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"toolbox/internal/domain"
)

func writeJSON(w io.Writer, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printDescriptors(w io.Writer, descriptors []domain.ToolDescriptor, jsonOutput bool) error {
	if jsonOutput {
		if descriptors == nil {
			descriptors = []domain.ToolDescriptor{}
		}
		return writeJSON(w, map[string]any{"tools": descriptors})
	}
	table := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	for _, descriptor := range descriptors {
		fmt.Fprintf(table, "%s\t%s\t%s\n", descriptor.Slug, descriptor.Name, descriptor.ShortDesc)
	}
	return table.Flush()
}

func printMatches(w io.Writer, query string, matches []domain.ScoredMatch, jsonOutput bool) error {
	if jsonOutput {
		if matches == nil {
			matches = []domain.ScoredMatch{}
		}
		return writeJSON(w, map[string]any{"query": query, "matches": matches})
	}
	table := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	for _, match := range matches {
		fmt.Fprintf(table, "%5.1f\t%s\t%s\n", match.Score, match.Descriptor.Slug, match.Descriptor.Name)
	}
	return table.Flush()
}

func printDescriptor(w io.Writer, descriptor domain.ToolDescriptor, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(w, descriptor)
	}
	fmt.Fprintf(w, "%s %s\n", iconOf(descriptor), descriptor.Name)
	fmt.Fprintf(w, "slug:     %s\n", descriptor.Slug)
	fmt.Fprintf(w, "id:       %d\n", descriptor.ID)
	fmt.Fprintf(w, "category: %s\n", descriptor.Category)
	fmt.Fprintf(w, "featured: %t\n", descriptor.Featured)
	if len(descriptor.Keywords) > 0 {
		fmt.Fprintf(w, "keywords: %s\n", strings.Join(descriptor.Keywords, ", "))
	}
	fmt.Fprintf(w, "\n%s\n", descriptor.ShortDesc)
	if descriptor.Usage != "" {
		fmt.Fprintf(w, "\nusage: toolbox run %s %s\n", descriptor.Slug, descriptor.Usage)
	}
	return nil
}

func printResult(w io.Writer, slug string, result domain.ToolResult, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(w, map[string]any{"tool": slug, "result": result})
	}
	_, err := fmt.Fprintln(w, result.Text)
	return err
}

func iconOf(descriptor domain.ToolDescriptor) string {
	if descriptor.Icon == "" {
		return "•"
	}
	return descriptor.Icon
}
