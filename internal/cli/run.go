// Package cli implements the bgrep command line.
package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/natefinch/atomic"
	flag "github.com/spf13/pflag"

	"github.com/coregx/bytere"
	"github.com/coregx/bytere/meta"
)

// Exit codes follow grep: 0 when something was selected, 1 when nothing
// was, 2 on any error.
const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

var errNoPattern = errors.New("missing PATTERN")

type options struct {
	count        bool
	lineNumber   bool
	onlyMatching bool
	invert       bool
	byteOffset   bool
	noPrefilter  bool
	debug        bool
	interactive  bool
	help         bool
	capacity     int
	output       string
	configPath   string
	logLevel     string
	logFormat    string

	flags *flag.FlagSet
	args  []string
}

func newFlagSet(o *options) *flag.FlagSet {
	fs := flag.NewFlagSet("bgrep", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.BoolVarP(&o.count, "count", "c", false, "print only a count of selected lines per input")
	fs.BoolVarP(&o.lineNumber, "line-number", "n", false, "prefix each output line with its line number")
	fs.BoolVarP(&o.onlyMatching, "only-matching", "o", false, "print only the matched parts of lines")
	fs.BoolVarP(&o.invert, "invert-match", "v", false, "select non-matching lines")
	fs.BoolVarP(&o.byteOffset, "byte-offset", "b", false, "prefix each output line with its byte offset")
	fs.IntVar(&o.capacity, "capacity", 0, "program storage capacity (default 128)")
	fs.BoolVar(&o.noPrefilter, "no-prefilter", false, "disable literal prefiltering")
	fs.BoolVar(&o.debug, "debug", false, "dump the compiled program and chosen strategy to stderr")
	fs.StringVar(&o.output, "output", "", "write results to `FILE` atomically instead of stdout")
	fs.StringVar(&o.configPath, "config", "", "read configuration from `FILE`")
	fs.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&o.logFormat, "log-format", "", "log format: text, json")
	fs.BoolVarP(&o.interactive, "interactive", "i", false, "start an interactive pattern tester")
	fs.BoolVarP(&o.help, "help", "h", false, "show help")

	return fs
}

func parseFlags(args []string) (*options, error) {
	o := &options{}
	o.flags = newFlagSet(o)
	if len(args) > 0 {
		args = args[1:]
	}
	if err := o.flags.Parse(args); err != nil {
		return o, err
	}
	o.args = o.flags.Args()
	return o, nil
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fprintln(w, "Usage: bgrep [flags] PATTERN [FILE...]")
	fprintln(w, "       bgrep --interactive")
	fprintln(w)
	fprintln(w, "Flags:")
	fprint(w, fs.FlagUsages())
}

// Run is the main entry point. Returns exit code.
func Run(stdin io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string) int {
	opts, err := parseFlags(args)
	if err != nil {
		fprintln(errOut, "bgrep:", err)
		printUsage(errOut, opts.flags)

		return exitError
	}

	if opts.help {
		printUsage(out, opts.flags)

		return exitMatch
	}

	cfg, err := resolveConfig(opts, env)
	if err != nil {
		fprintln(errOut, "bgrep:", err)

		return exitError
	}

	logger, err := newLogger(errOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fprintln(errOut, "bgrep:", err)

		return exitError
	}

	if opts.interactive {
		if err := runInteractive(stdin, out, logger, cfg); err != nil {
			fprintln(errOut, "bgrep:", err)

			return exitError
		}

		return exitMatch
	}

	if len(opts.args) == 0 {
		fprintln(errOut, "bgrep:", errNoPattern)
		printUsage(errOut, opts.flags)

		return exitError
	}

	re, err := bytere.CompileWithConfig(opts.args[0], cfg.Engine)
	if err != nil {
		fprintln(errOut, "bgrep:", err)

		return exitError
	}

	logger.Debug("compiled pattern",
		"pattern", re.String(),
		"strategy", re.Strategy().String(),
		"slots", re.Prog().Slots(),
		"capacity", cfg.Engine.Capacity)

	if opts.debug {
		dumpProgram(errOut, re, cfg.Engine)
	}

	var buf bytes.Buffer

	w := out
	if opts.output != "" {
		w = &buf
	}

	g := &grep{
		re:     re,
		opts:   opts,
		w:      w,
		log:    logger,
		stdin:  stdin,
		labels: len(opts.args) > 2,
	}
	selected, hadErr := g.run(opts.args[1:])

	if opts.output != "" {
		if err := atomic.WriteFile(opts.output, &buf); err != nil {
			fprintln(errOut, "bgrep:", fmt.Errorf("write %s: %w", opts.output, err))

			return exitError
		}
	}

	switch {
	case hadErr:
		return exitError
	case selected > 0:
		return exitMatch
	default:
		return exitNoMatch
	}
}

// resolveConfig layers defaults, the config file and explicit flags.
func resolveConfig(opts *options, env map[string]string) (Config, error) {
	path, mustExist := opts.configPath, true
	if path == "" {
		path, mustExist = defaultConfigPath(env), false
	}

	cfg, err := loadConfig(defaultConfig(), path, mustExist)
	if err != nil {
		return cfg, err
	}

	fs := opts.flags
	if fs.Changed("capacity") {
		cfg.Engine.Capacity = opts.capacity
	}
	if opts.noPrefilter {
		cfg.Engine.EnablePrefilter = false
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if fs.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}

	if err := cfg.Engine.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func dumpProgram(w io.Writer, re *bytere.Regex, config meta.Config) {
	prog := re.Prog()
	strategy, lit := meta.SelectStrategy(prog, config)
	fprintf(w, "pattern %q: %d instructions, %d slots\n", re.String(), prog.Len(), prog.Slots())
	fprint(w, prog.String())
	fprintf(w, "strategy: %s (%s)\n", strategy, meta.StrategyReason(strategy, lit))
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func fprintf(w io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(w, format, a...)
}

func fprint(w io.Writer, a ...any) {
	_, _ = fmt.Fprint(w, a...)
}
