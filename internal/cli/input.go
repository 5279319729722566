// Package cli handles cmd line input for checking words interactively, mainly for DBG and testing.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	addPrefix    = "+"
	statsCommand = ":stats"
	quitCommand  = ":q"
)

var (
	wordStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	knownStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
	unknownStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"})
	mutedStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.AdaptiveColor{Light: "#797593", Dark: "#908caa"})
)

// InputHandler reads words line by line, reports whether each is known and
// prints suggestions for the unknown ones.
//
// Lines starting with "+" add the rest of the line as a word, ":stats"
// prints the checker counters and ":q" ends the session.
type InputHandler struct {
	checker    suggest.IChecker
	in         io.Reader
	out        io.Writer
	showTiming bool
	requests   int
}

// NewInputHandler handles initialization of the InputHandler
func NewInputHandler(checker suggest.IChecker, in io.Reader, out io.Writer, showTiming bool) *InputHandler {
	return &InputHandler{
		checker:    checker,
		in:         in,
		out:        out,
		showTiming: showTiming,
	}
}

// Start runs the input loop until the input ends or ":q" is read.
func (h *InputHandler) Start() error {
	fmt.Fprintln(h.out, "WordCheck CLI")
	fmt.Fprintln(h.out, mutedStyle.Render("type a word and press Enter, +word to add it, :stats for counters, :q to exit"))

	scanner := bufio.NewScanner(h.in)
	for {
		fmt.Fprint(h.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(h.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == quitCommand {
			return nil
		}
		h.handleInput(line)
	}
}

// Requests returns the number of handled lines.
func (h *InputHandler) Requests() int { return h.requests }

func (h *InputHandler) handleInput(line string) {
	h.requests++
	switch {
	case line == statsCommand:
		h.printStats()
	case strings.HasPrefix(line, addPrefix):
		h.addWord(strings.TrimSpace(strings.TrimPrefix(line, addPrefix)))
	default:
		h.checkWord(line)
	}
}

func (h *InputHandler) checkWord(word string) {
	start := time.Now()
	known := h.checker.Check(word)
	if known {
		fmt.Fprintf(h.out, "%s %s\n", knownStyle.Render("known"), wordStyle.Render(word))
		h.printElapsed(start)
		return
	}

	suggestions := h.checker.Suggest(word)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for '%s'", elapsed, word)

	fmt.Fprintf(h.out, "%s %s, %d suggestions:\n", unknownStyle.Render("unknown"), wordStyle.Render(word), len(suggestions))
	for i, s := range suggestions {
		label := s
		if s != suggest.ManualEntry && s != suggest.Ignore {
			label = wordStyle.Render(s)
		}
		fmt.Fprintf(h.out, "%2d. %s\n", i+1, label)
	}
	h.printElapsed(start)
}

func (h *InputHandler) addWord(word string) {
	if word == "" {
		log.Warn("Nothing to add")
		return
	}
	if h.checker.AddWord(word) {
		fmt.Fprintf(h.out, "added %s\n", wordStyle.Render(word))
		return
	}
	fmt.Fprintf(h.out, "%s is already known\n", wordStyle.Render(word))
}

func (h *InputHandler) printStats() {
	stats := h.checker.Stats()
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(h.out, "%-14s %12s\n", k, utils.FormatWithCommas(stats[k]))
	}
}

func (h *InputHandler) printElapsed(start time.Time) {
	if h.showTiming {
		fmt.Fprintln(h.out, mutedStyle.Render("took "+utils.FormatElapsed(time.Since(start))))
	}
}
