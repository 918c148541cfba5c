// Where: internal/infra/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize emojis, indentation, and stream choice across both commands.
package ui

import (
	"fmt"
	"io"
	"strings"
)

// Console provides helper methods for formatted output. Errors go to Err so that
// stdout stays clean when it is piped.
type Console struct {
	Out          io.Writer
	Err          io.Writer
	EmojiEnabled bool
}

// New creates a new Console writing both streams to out.
func New(out io.Writer) *Console {
	return &Console{Out: out, Err: out, EmojiEnabled: true}
}

// NewWithStreams creates a new Console with separate output and error streams.
func NewWithStreams(out, errOut io.Writer, emoji bool) *Console {
	if errOut == nil {
		errOut = out
	}
	return &Console{Out: out, Err: errOut, EmojiEnabled: emoji}
}

// Header prints a section header with an emoji.
func (c *Console) Header(emoji, title string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.emojiPrefix(emoji), title)
}

// BlockStart starts a logical block with a blank line before its header.
func (c *Console) BlockStart(emoji, title string) {
	fmt.Fprintln(c.Out)
	c.Header(emoji, title)
}

// Item prints a key-value item with indentation.
// Example:    projectId: acme-crm-stg-000123.
func (c *Console) Item(key string, value any) {
	fmt.Fprintf(c.Out, "    %s: %v\n", key, value)
}

// ItemPlain prints a generic indented line.
func (c *Console) ItemPlain(msg string) {
	fmt.Fprintf(c.Out, "  %s\n", msg)
}

// Lines prints each line verbatim.
func (c *Console) Lines(lines []string) {
	fmt.Fprint(c.Out, strings.Join(lines, "\n")+"\n")
}

// Success prints a success message with a checkmark.
func (c *Console) Success(msg string) {
	prefix := c.emojiPrefix("✅")
	if prefix == "" {
		prefix = "[ok] "
	}
	fmt.Fprintf(c.Out, "%s%s\n", prefix, msg)
}

// Info prints an info message.
func (c *Console) Info(msg string) {
	fmt.Fprintf(c.Out, "%s\n", msg)
}

// Warn prints a warning message with an emoji.
func (c *Console) Warn(msg string) {
	prefix := c.emojiPrefix("⚠️")
	if prefix == "" {
		prefix = "[warn] "
	}
	fmt.Fprintf(c.Err, "%s%s\n", prefix, msg)
}

// Error prints an error line to the error stream without decoration.
func (c *Console) Error(msg string) {
	fmt.Fprintf(c.Err, "%s\n", msg)
}

func (c *Console) emojiPrefix(emoji string) string {
	if !c.EmojiEnabled || strings.TrimSpace(emoji) == "" {
		return ""
	}
	return emoji + " "
}
