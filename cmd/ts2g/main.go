package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/ts2g-lang/ts2g"
	"github.com/ts2g-lang/ts2g/internal/eval"
)

var log = logrus.New()

var (
	configFile = kingpin.Flag("config", "Interpreter configuration in YML format.").String()
	logLevel   = kingpin.Flag("log-level", "Logging level: panic, fatal, error, warn, info, debug.").String()
	timing     = kingpin.Flag("timing", "Log elapsed wall time for the run.").Bool()
	exprSrc    = kingpin.Flag("eval", "Evaluate the given source text instead of a file.").Short('e').String()
	sourceFile = kingpin.Arg("file", "Source file to run; reads stdin when omitted.").String()
)

func main() {
	kingpin.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	// command line overrides the config file
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *timing {
		cfg.Timing = true
	}

	if cfg.LogLevel != "" {
		ll, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			log.Fatalf("invalid log level: %s", err)
		}
		log.Level = ll
		if err := eval.SetLogLevel(cfg.LogLevel); err != nil {
			log.Fatalf("invalid log level: %s", err)
		}
	}

	src, filename, err := readSource()
	if err != nil {
		log.Fatalf("failed to read source: %s", err)
	}

	start := time.Now()

	var opts []ts2g.Option
	if filename != "" {
		opts = append(opts, ts2g.WithFilename(filename))
	}

	if err := ts2g.Run(src, os.Stdout, opts...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if cfg.Timing {
		log.Infof("evaluated in %s", time.Since(start))
	}
}

// readSource picks the input source: -e text, a file argument, or stdin.
func readSource() (src, filename string, err error) {
	if *exprSrc != "" {
		return *exprSrc, "", nil
	}

	if *sourceFile != "" {
		data, err := os.ReadFile(*sourceFile)
		if err != nil {
			return "", "", err
		}
		return string(data), *sourceFile, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", err
	}
	return string(data), "<stdin>", nil
}
