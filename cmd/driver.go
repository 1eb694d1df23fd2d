package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cminor/ast"
	"cminor/config"
	"cminor/report"
	"cminor/sema"
	"cminor/syntax"
)

// runOptions gathers the resolved settings a single analysis run
// needs, after CLI flags and the project config file have been
// merged.
type runOptions struct {
	sourcePath  string
	logLevel    int
	bucketCount int
	outputDir   string
}

// run lexes, parses, and analyzes one source file, then writes its
// *_log.txt and *_error.txt outputs. It mirrors the teacher's
// InitPackage -> WalkPackages phase sequencing, collapsed to a single
// Lex -> Parse -> Analyze pipeline since this language has no
// packages or imports to resolve first.
func run(opts runOptions) error {
	src, err := os.Open(opts.sourcePath)
	if err != nil {
		fmt.Println("could not open source file:", err)
		return nil
	}
	defer src.Close()

	base := strings.TrimSuffix(filepath.Base(opts.sourcePath), filepath.Ext(opts.sourcePath))
	outDir := opts.outputDir
	if outDir == "" {
		outDir = filepath.Dir(opts.sourcePath)
	}

	logFile, err := os.Create(filepath.Join(outDir, base+"_log.txt"))
	if err != nil {
		return fmt.Errorf("creating log file: %w", err)
	}
	defer logFile.Close()

	reporter := report.New(logFile, opts.logLevel)
	analyzer := sema.NewAnalyzer(opts.bucketCount, reporter)

	report.BeginPhase("Parsing and analysis")
	parser := syntax.NewParser(bufio.NewReader(src), analyzer)
	program := parser.Parse()
	report.EndPhase(reporter.HardErrorCount() == 0)

	reporter.WriteLog(ast.Render(program))

	totalLines := countLines(opts.sourcePath)
	if err := reporter.FinishLog(totalLines); err != nil {
		return fmt.Errorf("writing log file: %w", err)
	}

	errFile, err := os.Create(filepath.Join(outDir, base+"_error.txt"))
	if err != nil {
		return fmt.Errorf("creating error file: %w", err)
	}
	defer errFile.Close()

	if err := reporter.WriteErrorFile(errFile); err != nil {
		return fmt.Errorf("writing error file: %w", err)
	}

	report.Summary(reporter.HardErrorCount(), reporter.WarningCount())
	return nil
}

func countLines(path string) int {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
	}
	return count
}

// resolveOptions merges CLI-supplied overrides with a project's
// cminor.toml, CLI flags winning ties.
func resolveOptions(sourcePath string, logLevelName string, bucketCount, outDirFlag string) runOptions {
	dir := filepath.Dir(sourcePath)
	cfg, err := config.Load(dir)
	if err != nil {
		fmt.Println("warning: could not load project config:", err)
		cfg = &config.ProjectConfig{LogLevel: "verbose"}
	}

	opts := runOptions{
		sourcePath:  sourcePath,
		logLevel:    parseLogLevel(cfg.LogLevel),
		bucketCount: cfg.BucketCount,
		outputDir:   cfg.OutputDir,
	}

	if logLevelName != "" {
		opts.logLevel = parseLogLevel(logLevelName)
	}
	if bucketCount != "" {
		if n, err := strconv.Atoi(bucketCount); err == nil {
			opts.bucketCount = n
		}
	}
	if outDirFlag != "" {
		opts.outputDir = outDirFlag
	}

	return opts
}

func parseLogLevel(name string) int {
	switch name {
	case "silent":
		return report.LogLevelSilent
	case "error":
		return report.LogLevelError
	case "warn":
		return report.LogLevelWarn
	default:
		return report.LogLevelVerbose
	}
}
