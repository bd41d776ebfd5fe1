package main

import (
	"log"
	"os"

	"golang.org/x/term"

	"github.com/trezcool/gradecalc/core"
	"github.com/trezcool/gradecalc/core/grade"
	logsvc "github.com/trezcool/gradecalc/services/logger"
)

func main() {
	stdLogger := log.New(os.Stderr, "CLI : ", log.LstdFlags)

	conf, err := core.NewConfig()
	if err != nil {
		stdLogger.Fatal(err)
	}
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	defer logger.Close()

	validate, translator := newValidator()
	cli := commandLine{
		in:         os.Stdin,
		out:        os.Stdout,
		svc:        grade.NewService(conf, logger),
		validate:   validate,
		translator: translator,
		styles:     newStyles(term.IsTerminal(int(os.Stdout.Fd()))),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			stdLogger.Printf("error: %s\n", err)
		}
		logger.Close()
		os.Exit(1)
	}
}
