// Package output provides utilities for formatting and displaying project
// detail views and field lists on the command line.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/iwvelando/teaser/internal/catalog"
	"github.com/iwvelando/teaser/internal/detail"
	"github.com/iwvelando/teaser/internal/listing"
)

// OverviewTitle heads the overview card rows.
const OverviewTitle = "Overview"

// DocumentsTitle heads the document list.
const DocumentsTitle = "Documents"

type block struct {
	title string
	rows  [][2]string
}

func viewBlocks(v detail.View) []block {
	var blocks []block
	add := func(title string, entries []detail.Entry) {
		if len(entries) == 0 {
			return
		}
		b := block{title: title}
		for _, e := range entries {
			b.rows = append(b.rows, [2]string{e.Label, e.Value})
		}
		blocks = append(blocks, b)
	}

	add(OverviewTitle, v.Overview.Entries)
	for _, s := range v.Sections {
		add(s.Title, s.Entries)
	}
	if v.Funding != nil {
		add(v.Funding.Title, v.Funding.Entries)
	}
	if v.Contact != nil {
		add(v.Contact.Title, v.Contact.Entries)
	}
	if len(v.Documents) > 0 {
		b := block{title: DocumentsTitle}
		for _, d := range v.Documents {
			b.rows = append(b.rows, [2]string{d.Title, d.URL})
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// PrettyFormat writes a human-readable rendering of the detail view.
func PrettyFormat(w io.Writer, v detail.View) error {
	if _, err := fmt.Fprintf(w, "=== %s ===\n", v.ProjectName); err != nil {
		return err
	}
	if v.Description != "" {
		if _, err := fmt.Fprintf(w, "%s\n", v.Description); err != nil {
			return err
		}
	}

	for _, b := range viewBlocks(v) {
		if _, err := fmt.Fprintf(w, "\n--- %s ---\n", b.title); err != nil {
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
		for _, row := range b.rows {
			if _, err := fmt.Fprintf(tw, "%s\t| %s\n", row[0], singleLine(row[1])); err != nil {
				return err
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// CsvFormat writes the detail view as section,label,value records.
func CsvFormat(w io.Writer, v detail.View) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"section", "label", "value"}); err != nil {
		return err
	}
	for _, b := range viewBlocks(v) {
		for _, row := range b.rows {
			if err := cw.Write([]string{b.title, row[0], row[1]}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// FieldsPretty writes a field list as an aligned table.
func FieldsPretty(w io.Writer, title string, fields catalog.List) error {
	if _, err := fmt.Fprintf(w, "--- %s ---\n", title); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "Key\t| Label\t| Type\t| Required\n")
	fmt.Fprintf(tw, "___\t| _____\t| ____\t| ________\n")
	for _, f := range fields {
		fmt.Fprintf(tw, "%s\t| %s\t| %s\t| %t\n", f.Key(), f.Name, typeName(f), f.Props.Required)
	}
	return tw.Flush()
}

// FieldsCsv writes a field list as CSV records.
func FieldsCsv(w io.Writer, category string, fields catalog.List) error {
	return FieldListsCsv(w, catalog.FieldLists{listing.Category(category): fields})
}

// FieldListsCsv writes every category of lists under a single header, in
// input step order.
func FieldListsCsv(w io.Writer, lists catalog.FieldLists) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"category", "key", "label", "type", "required"}); err != nil {
		return err
	}
	for _, category := range categories(lists) {
		for _, f := range lists[category] {
			record := []string{string(category), f.Key(), f.Name, typeName(f), fmt.Sprintf("%t", f.Props.Required)}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// categories orders known categories first, then any others by name.
func categories(lists catalog.FieldLists) []listing.Category {
	out := lists.Categories()
	var extra []listing.Category
	for c := range lists {
		if !c.Valid() {
			extra = append(extra, c)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

func typeName(f catalog.Field) string {
	if f.Hidden() {
		return "hidden"
	}
	return string(f.Props.Type)
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
