// Package notify abstracts the user-facing confirmation dialog the bulk
// operations report through.
package notify

import (
	"fmt"

	"github.com/fatih/color"
)

// Notifier reports an operation outcome to the user. Fire and forget.
type Notifier interface {
	Notify(title, message string)
}

// Console prints notifications to the terminal.
type Console struct{}

func (Console) Notify(title, message string) {
	t := color.New(color.Bold)
	_, _ = fmt.Fprintf(color.Output, "%s: %s\n", t.Sprint(title), message)
}
