package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/lmorg/readline"
	"github.com/mattn/go-isatty"

	"github.com/Creamy-pie-96/Pythonic-sub004/internal/config"
)

const helpText = `Expressions:  1 + 2      2.5 * 4      7l % 3l      "a" + "b"
Literals:     42 (int)  5000000000 (int64)  3u (uint)  9l (int64)
              2.5 (double)  1.5f (float)  true/false  [1, 2, 3]
Reductions:   sum 1 2 3     product 2 3 4     dot [1,2,3] [4,5,6]
Commands:     :help  :stats  :reset  :history  :quit`

// REPL drives an interactive calculator over a Session.
type REPL struct {
	session  *Session
	settings config.Settings
	out      io.Writer
	color    bool
	history  []string
}

func New(settings config.Settings, out io.Writer) *REPL {
	return &REPL{
		session:  NewSession(),
		settings: settings,
		out:      out,
		color:    useColor(settings.Color),
	}
}

func useColor(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}

// Run reads lines interactively until :quit or EOF.
func (r *REPL) Run() error {
	rline := readline.NewInstance()
	rline.SetPrompt(r.settings.Prompt)
	for {
		line, err := rline.Readline()
		if err != nil {
			if err == readline.CtrlC {
				continue
			}
			return nil
		}
		if r.handleLine(line) {
			return nil
		}
	}
}

// RunScript evaluates lines from in without line editing, for piped
// input.
func (r *REPL) RunScript(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if r.handleLine(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

// EvalOnce evaluates a single expression and prints the result, for
// one-shot command line use.
func (r *REPL) EvalOnce(line string) error {
	result, err := r.session.Eval(line)
	if err != nil {
		r.printError(err)
		return err
	}
	if result != nil {
		fmt.Fprintln(r.out, result.Inspect())
	}
	return nil
}

func (r *REPL) handleLine(line string) (quit bool) {
	switch line {
	case "":
		return false
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprintln(r.out, helpText)
		return false
	case ":reset":
		r.session.Reset()
		fmt.Fprintln(r.out, "caches cleared")
		return false
	case ":stats":
		fmt.Fprint(r.out, r.session.Stats())
		return false
	case ":history":
		for _, h := range r.history {
			fmt.Fprintln(r.out, h)
		}
		return false
	}

	r.remember(line)
	result, err := r.session.Eval(line)
	if err != nil {
		r.printError(err)
		return false
	}
	if result != nil {
		fmt.Fprintln(r.out, result.Inspect())
	}
	return false
}

func (r *REPL) remember(line string) {
	r.history = append(r.history, line)
	if limit := r.settings.HistoryLimit; limit > 0 && len(r.history) > limit {
		r.history = r.history[len(r.history)-limit:]
	}
}

func (r *REPL) printError(err error) {
	if r.color {
		fmt.Fprintf(r.out, "\033[31m%s\033[0m\n", err)
		return
	}
	fmt.Fprintln(r.out, err)
}
