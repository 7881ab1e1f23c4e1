package cli

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/coregx/bytere"
)

const stdinName = "(standard input)"

// grep matches one compiled pattern against the lines of each input.
// Lines are matched without their trailing newline, so $ anchors at the
// end of the line.
type grep struct {
	re     *bytere.Regex
	opts   *options
	w      io.Writer
	log    *slog.Logger
	stdin  io.Reader
	labels bool
}

// run searches every named input, or stdin when there are none. It
// returns the total number of selected lines and whether any input could
// not be read.
func (g *grep) run(names []string) (selected int, hadErr bool) {
	if len(names) == 0 {
		names = []string{"-"}
	}

	for _, name := range names {
		data, label, err := g.read(name)
		if err != nil {
			g.log.Error("cannot read input", "path", name, "error", err)
			hadErr = true

			continue
		}

		n := g.search(label, data)
		g.log.Debug("searched input", "path", label, "bytes", len(data), "selected", n)
		selected += n
	}
	return selected, hadErr
}

func (g *grep) read(name string) ([]byte, string, error) {
	if name == "-" {
		if g.stdin == nil {
			return nil, stdinName, nil
		}
		data, err := io.ReadAll(g.stdin)
		return data, stdinName, err
	}
	data, err := os.ReadFile(name)
	return data, name, err
}

func (g *grep) search(label string, data []byte) int {
	selected := 0
	lineNo := 0
	for off := 0; off < len(data); {
		lineNo++
		end, next := len(data), len(data)
		if i := bytes.IndexByte(data[off:], '\n'); i >= 0 {
			end, next = off+i, off+i+1
		}
		line := data[off:end]

		if g.re.Match(line) != g.opts.invert {
			selected++
			if !g.opts.count {
				g.emit(label, lineNo, off, line)
			}
		}
		off = next
	}

	if g.opts.count {
		var out []byte
		if g.labels {
			out = append(out, label...)
			out = append(out, ':')
		}
		out = strconv.AppendInt(out, int64(selected), 10)
		out = append(out, '\n')
		_, _ = g.w.Write(out)
	}
	return selected
}

func (g *grep) emit(label string, lineNo, off int, line []byte) {
	if !g.opts.onlyMatching || g.opts.invert {
		g.write(label, lineNo, off, line)
		return
	}
	for _, loc := range g.re.FindAllIndex(line, -1) {
		if loc[0] == loc[1] {
			continue
		}
		g.write(label, lineNo, off+loc[0], line[loc[0]:loc[1]])
	}
}

func (g *grep) write(label string, lineNo, off int, text []byte) {
	var out []byte
	if g.labels {
		out = append(out, label...)
		out = append(out, ':')
	}
	if g.opts.lineNumber {
		out = strconv.AppendInt(out, int64(lineNo), 10)
		out = append(out, ':')
	}
	if g.opts.byteOffset {
		out = strconv.AppendInt(out, int64(off), 10)
		out = append(out, ':')
	}
	out = append(out, text...)
	out = append(out, '\n')
	_, _ = g.w.Write(out)
}
