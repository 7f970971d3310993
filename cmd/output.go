package cmd

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

//nolint:gochecknoglobals // Output styles
var (
	success = color.New(color.FgGreen).SprintFunc()
	warning = color.New(color.FgYellow).SprintFunc()
	heading = color.New(color.FgCyan, color.Bold).SprintFunc()
	faint   = color.New(color.Faint).SprintFunc()
)

func printDone(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", success("✓"), fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", warning("!"), fmt.Sprintf(format, args...))
}

// spinner shows progress while a gateway call is in flight.
type spinner struct {
	message string
	stop    chan struct{}
	done    chan struct{}
	once    sync.Once
}

func newSpinner(message string) (s *spinner) {
	s = &spinner{
		message: message,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	return s
}

func (s *spinner) start() {
	go func() {
		defer close(s.done)

		chars := []string{"|", "/", "-", "\\"}
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		fmt.Printf("%s ", s.message)
		for i := 0; ; i++ {
			select {
			case <-s.stop:
				fmt.Printf("\r%s\r", strings.Repeat(" ", len(s.message)+2))
				return
			case <-ticker.C:
				fmt.Printf("\r%s %s", s.message, chars[i%len(chars)])
			}
		}
	}()
}

func (s *spinner) stopSpinner() {
	s.once.Do(func() {
		close(s.stop)
		<-s.done
	})
}

// withSpinner runs fn behind a spinner, or with a plain progress line in verbose mode.
func withSpinner(message string, fn func() error) (err error) {
	if getVerbose() {
		fmt.Println(message)
		err = fn()
		return err
	}

	s := newSpinner(message)
	s.start()
	err = fn()
	s.stopSpinner()
	return err
}
