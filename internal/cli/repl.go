package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/coregx/bytere"
	"github.com/coregx/bytere/meta"
)

const replHelp = `commands:
  :pattern PAT   compile PAT (alias :p)
  :debug         dump the compiled program
  :help          show this help
  :quit          leave (alias :q)
any other line is searched with the current pattern`

// prompter is the part of *liner.State the REPL uses, so tests and piped
// input can drive it without a terminal.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// lineReader reads one line per prompt from a non-terminal input.
type lineReader struct {
	sc *bufio.Scanner
}

func (r *lineReader) Prompt(string) (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.sc.Text(), nil
}

func (r *lineReader) AppendHistory(string) {}

func (r *lineReader) Close() error { return nil }

func newPrompter(stdin io.Reader) prompter {
	if f, ok := stdin.(*os.File); ok && f == os.Stdin && isTerminal(f) {
		state := liner.NewLiner()
		state.SetCtrlCAborts(true)
		return state
	}
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	return &lineReader{sc: bufio.NewScanner(stdin)}
}

func runInteractive(stdin io.Reader, out io.Writer, logger *slog.Logger, cfg Config) error {
	p := newPrompter(stdin)
	defer p.Close()

	s := &session{config: cfg.Engine, log: logger}
	fprintln(out, "bgrep interactive; :help for commands")

	for {
		line, err := p.Prompt("bgrep> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		p.AppendHistory(line)

		reply, quit := s.eval(line)
		if reply != "" {
			fprintln(out, reply)
		}
		if quit {
			return nil
		}
	}
}

// session holds the REPL's current pattern.
type session struct {
	config meta.Config
	re     *bytere.Regex
	log    *slog.Logger
}

func (s *session) eval(line string) (reply string, quit bool) {
	cmd, arg, _ := strings.Cut(line, " ")
	switch cmd {
	case ":q", ":quit":
		return "", true
	case ":help":
		return replHelp, false
	case ":p", ":pattern":
		return s.setPattern(arg), false
	case ":debug":
		if s.re == nil || s.re.Status() != nil {
			return "no valid pattern", false
		}
		return strings.TrimRight(s.re.Prog().String(), "\n"), false
	}

	if strings.HasPrefix(line, ":") && !strings.HasPrefix(line, "::") {
		return "unknown command " + cmd + "; :help for commands", false
	}
	// "::" escapes a subject that starts with ':'
	if strings.HasPrefix(line, "::") {
		line = line[1:]
	}
	return s.search(line), false
}

func (s *session) setPattern(pattern string) string {
	if s.re == nil {
		s.re = bytere.NewWithConfig(pattern, s.config)
	} else {
		_ = s.re.Assign(pattern)
	}

	if err := s.re.Status(); err != nil {
		s.log.Debug("pattern rejected", "pattern", pattern, "error", err)
		return "error: " + err.Error()
	}
	return fmt.Sprintf("ok: %d slots, %s", s.re.Prog().Slots(), s.re.Strategy())
}

func (s *session) search(subject string) string {
	if s.re == nil {
		return "no pattern; use :pattern PAT"
	}
	if err := s.re.Status(); err != nil {
		return "no valid pattern: " + err.Error()
	}
	loc := s.re.FindStringIndex(subject)
	if loc == nil {
		return "no match"
	}
	return fmt.Sprintf("match [%d, %d) %q", loc[0], loc[1], subject[loc[0]:loc[1]])
}
