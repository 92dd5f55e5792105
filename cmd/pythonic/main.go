package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/Creamy-pie-96/Pythonic-sub004/internal/config"
	"github.com/Creamy-pie-96/Pythonic-sub004/internal/repl"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	expr := flag.String("e", "", "evaluate one expression and exit")
	flag.Parse()

	settings := config.Default()
	if *configPath != "" {
		s, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		settings = s
	}

	r := repl.New(settings, os.Stdout)

	if *expr != "" {
		if err := r.EvalOnce(*expr); err != nil {
			os.Exit(1)
		}
		return
	}

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		if err := r.Run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := r.RunScript(os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
