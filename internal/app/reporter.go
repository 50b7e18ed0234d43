package app

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

// Reporter receives run progress and per-item warnings. It is injected so
// the extraction and rendering logic stays testable without capturing
// process output.
type Reporter interface {
	// Info reports a run-level message.
	Info(msg string)
	// Progress reports that done of total records have been converted.
	Progress(done, total int)
	// Warn reports a recovered per-item failure; subject names the file or
	// record the warning is about.
	Warn(subject, msg string)
}

// ConsoleReporter prints progress to stdout and routes warnings through the
// structured logger.
type ConsoleReporter struct {
	// Out defaults to os.Stdout.
	Out io.Writer
}

func (c *ConsoleReporter) out() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

func (c *ConsoleReporter) Info(msg string) {
	fmt.Fprintln(c.out(), msg)
}

func (c *ConsoleReporter) Progress(done, total int) {
	fmt.Fprintf(c.out(), "Converted %d/%d recipes...\n", done, total)
}

func (c *ConsoleReporter) Warn(subject, msg string) {
	log.Warn().Str("subject", subject).Msg(msg)
}
