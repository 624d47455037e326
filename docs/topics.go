// Package docs embeds the help topics of rroi.
package docs

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
)

//go:embed *.md
var pages embed.FS

// Index is the topic that lists every other topic.
const Index = "readme"

// ErrUnknownTopic is returned when reading a topic that does not exist.
var ErrUnknownTopic = errors.New("unknown topic")

// Topic is an entry of the index.
type Topic struct {
	Name        string
	Description string
}

// indexEntry matches "* name: description" lines of the index.
var indexEntry = regexp.MustCompile(`^\*\s+([^:]+):\s*(.*)$`)

// Topics returns the topics listed in the index, in order.
func Topics() ([]Topic, error) {
	index, err := pages.ReadFile(Index + ".md")
	if err != nil {
		return nil, err
	}
	var topics []Topic
	scanner := bufio.NewScanner(bytes.NewReader(index))
	for scanner.Scan() {
		if m := indexEntry.FindStringSubmatch(scanner.Text()); m != nil {
			topics = append(topics, Topic{Name: strings.TrimSpace(m[1]), Description: m[2]})
		}
	}
	return topics, scanner.Err()
}

// Names returns the names of the pages other than the index, sorted.
func Names() []string {
	// an embed.FS lists a directory sorted by name.
	entries, _ := fs.ReadDir(pages, ".")
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name != Index {
			names = append(names, name)
		}
	}
	return names
}

// Read returns the content of the named topics, one after the other.
// "*" stands for every topic of the index.
func Read(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		if name == "*" {
			topics, err := Topics()
			if err != nil {
				return "", err
			}
			for _, t := range topics {
				if err := readInto(&b, t.Name); err != nil {
					return "", err
				}
			}
			continue
		}
		if err := readInto(&b, name); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func readInto(b *strings.Builder, name string) error {
	name = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), ".md")
	content, err := pages.ReadFile(name + ".md")
	if err != nil {
		return fmt.Errorf("%w %q, see 'rroi topic' for the list", ErrUnknownTopic, name)
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.Write(content)
	return nil
}
