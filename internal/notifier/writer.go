package notifier

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Notifier delivers a formatted report.
type Notifier interface {
	Send(text string) error
}

// WriterNotifier writes each report to W, separated by a blank line.
type WriterNotifier struct {
	W  io.Writer
	mu sync.Mutex
}

// NewWriterNotifier creates a WriterNotifier writing to w.
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{W: w}
}

func (n *WriterNotifier) Send(text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if _, err := io.WriteString(n.W, text+"\n"); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
