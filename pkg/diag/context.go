package diag

import (
	"fmt"
	"strings"
)

// Context is a range of text in a source code, used for errors that can be
// associated with a part of the source code, like lex, parse and eval errors.
type Context struct {
	Name   string
	Source string
	Ranging
}

// NewContext creates a new Context.
func NewContext(name, source string, r Ranger) *Context {
	return &Context{name, source, r.Range()}
}

// Rendering of the culprit within the excerpt.
var (
	culpritBegin       = "\033[1;4m"
	culpritEnd         = "\033[m"
	culpritPlaceholder = "^"
)

// Show renders the context: the source name and line number on one line,
// followed by an excerpt of the line containing the culprit, with the culprit
// itself highlighted. The excerpt is prefixed with indent.
func (c *Context) Show(indent string) string {
	from, to := c.From, c.To
	if from < 0 || to > len(c.Source) || from > to {
		return fmt.Sprintf("%s (invalid range %d-%d)", c.Name, from, to)
	}

	line := strings.Count(c.Source[:from], "\n") + 1
	head := lastLine(c.Source[:from])
	culprit := c.Source[from:to]
	tail := firstLine(c.Source[to:])
	// A multi-line culprit is cut at the first line boundary; the range
	// still identifies the full extent.
	if i := strings.IndexByte(culprit, '\n'); i >= 0 {
		culprit, tail = culprit[:i], ""
	}
	if culprit == "" {
		culprit = culpritPlaceholder
	}

	return fmt.Sprintf("%s, line %d:\n%s%s%s%s%s%s",
		c.Name, line, indent, head, culpritBegin, culprit, culpritEnd, tail)
}

func firstLine(s string) string {
	i := strings.IndexByte(s, '\n')
	if i == -1 {
		return s
	}
	return s[:i]
}

func lastLine(s string) string {
	return s[strings.LastIndexByte(s, '\n')+1:]
}
