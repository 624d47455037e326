package renderer

import (
	"bytes"

	"github.com/etnz/rental"
	md "github.com/nao1215/markdown"
)

// CategoryMarkdown renders the non-zero items of a category and its total.
func CategoryMarkdown(c *rental.Category) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(c.Name())

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Item", "Amount"},
		Rows:      [][]string{},
	}
	for _, item := range c.Listing() {
		table.Rows = append(table.Rows, []string{item.Name, item.Amount.String()})
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), md.Bold(c.Total().String())})
	doc.Table(table)

	return doc.String()
}
