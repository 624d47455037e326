package renderer

import (
	"bytes"
	"strings"

	"github.com/etnz/rental"
	md "github.com/nao1215/markdown"
)

// SeedsMarkdown renders the common items each category starts with.
func SeedsMarkdown(seeds rental.Seeds) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Common Items")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Category", "Items"},
		Rows:      [][]string{},
	}
	for _, k := range rental.Kinds {
		names := seeds.Of(k)
		list := "-"
		if len(names) > 0 {
			list = strings.Join(names, ", ")
		}
		table.Rows = append(table.Rows, []string{k.Title(), list})
	}
	doc.Table(table)

	return doc.String()
}
