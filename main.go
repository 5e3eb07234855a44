package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lumafield/s3-benchmark/s3mark"
)

const usage = `usage: s3-benchmark <standalone|client|server> [options]

standalone  run a benchmark against one endpoint and print the results
client      register with a benchmark server (not implemented)
server      coordinate remote benchmark clients (not implemented)

Run 's3-benchmark <mode> -h' for the options of a mode.
`

// program entry point
func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "standalone":
		err = runStandalone(os.Args[2:])
	case "client":
		err = runClient(os.Args[2:])
	case "server":
		err = runServer(os.Args[2:])
	case "-h", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n\n%s", os.Args[1], usage)
		os.Exit(1)
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runStandalone(args []string) error {
	cfg, err := s3mark.ParseStandalone(args)
	if err != nil {
		return err
	}

	logger, closeLog, err := setupLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	client, err := s3mark.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("creating storage client: %w", err)
	}

	payload := s3mark.NewPayload(cfg.Size)
	pool := s3mark.NewPool(cfg, client, payload, logger)
	samples, started, finished := pool.Run(context.Background())

	summary := s3mark.Aggregate(cfg.Operation, samples, started, finished)
	report := s3mark.NewReport(cfg, summary)
	report.Print(os.Stdout)

	if cfg.JsonFile != "" {
		jsonReport, err := s3mark.ToJson(report)
		if err != nil {
			return fmt.Errorf("creating .json output: %w", err)
		}
		if err := os.WriteFile(cfg.JsonFile, jsonReport, 0644); err != nil {
			return fmt.Errorf("writing .json output: %w", err)
		}
		fmt.Printf("JSON results were written to %s\n", cfg.JsonFile)
	}

	if cfg.CsvFile != "" {
		csvReport, err := s3mark.ToCsv(report)
		if err != nil {
			return fmt.Errorf("creating .csv output: %w", err)
		}
		if err := os.WriteFile(cfg.CsvFile, csvReport, 0644); err != nil {
			return fmt.Errorf("writing .csv output: %w", err)
		}
		fmt.Printf("CSV results were written to %s\n", cfg.CsvFile)
	}

	return nil
}

func runClient(args []string) error {
	cfg, err := s3mark.ParseClient(args)
	if err != nil {
		return err
	}
	return s3mark.RunClient(cfg)
}

func runServer(args []string) error {
	cfg, err := s3mark.ParseServer(args)
	if err != nil {
		return err
	}
	return s3mark.RunServer(cfg)
}

func setupLogger() (*log.Logger, func(), error) {
	file, err := os.OpenFile("s3-benchmark.log", os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := log.New(file, "s3-benchmark ", log.Ldate|log.Ltime|log.Lmsgprefix)
	logger.Print("==== Starting new run ====")
	return logger, func() { _ = file.Close() }, nil
}
