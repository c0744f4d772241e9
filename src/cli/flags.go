package cli

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	flag "github.com/spf13/pflag"
)

// SubCommand represents CLI subcommands
type SubCommand string

const (
	ScanSubCommand   SubCommand = "scan"
	CheckSubCommand  SubCommand = "check"
	ExportSubCommand SubCommand = "export"
)

var KnownSubCommands = []SubCommand{ScanSubCommand, CheckSubCommand, ExportSubCommand}

// Flags holds all CLI flags and configuration
type Flags struct {
	SubCommand   SubCommand
	LogLevel     slog.Level
	ScanConfig   ScanConfig
	CheckConfig  CheckConfig
	ExportConfig ExportConfig
	ShowHelp     bool
	ShowVersion  bool
	Workers      int
}

// ParseFlags parses command line arguments and returns configuration
func ParseFlags(args []string, version string) (*Flags, error) {
	flags := &Flags{}

	// Global flags
	defaults := flag.NewFlagSet("mitch-scraper", flag.ContinueOnError)
	defaults.BoolVarP(&flags.ShowHelp, "help", "h", false, "print this help and exit")
	defaults.BoolVarP(&flags.ShowVersion, "version", "V", false, "print program version and exit")

	var logLevelStr string
	defaults.StringVar(&logLevelStr, "log-level", "info", "verbosity level. one of: debug, info, warn, error")
	defaults.IntVar(&flags.Workers, "workers", 0, "number of concurrent update checks (default: from config)")

	// Determine subcommand
	var subcommand string
	if len(args) > 1 {
		subcommand = args[1]
	}

	var flagset *flag.FlagSet
	scanConfig := ScanConfig{}
	checkConfig := CheckConfig{}
	exportConfig := ExportConfig{}

	switch subcommand {
	case string(ScanSubCommand):
		flagset = flag.NewFlagSet("scan", flag.ExitOnError)
		flagset.StringArrayVar(&scanConfig.URLs, "url", []string{}, "store page URL to scan (repeatable)")
		flagset.StringArrayVar(&scanConfig.OutputFiles, "out", []string{}, "write library to file (default: stdout)")
		flagset.AddFlagSet(defaults)

	case string(CheckSubCommand):
		flagset = flag.NewFlagSet("check", flag.ExitOnError)
		flagset.AddFlagSet(defaults)

	case string(ExportSubCommand):
		flagset = flag.NewFlagSet("export", flag.ExitOnError)
		flagset.StringArrayVar(&exportConfig.OutputFiles, "out", []string{}, "write library to file (default: stdout)")
		flagset.AddFlagSet(defaults)

	default:
		flagset = defaults
	}

	// Parse flags
	if err := flagset.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Handle help and version
	if flags.ShowHelp {
		printUsage(flagset)
		os.Exit(0)
	}

	if flags.ShowVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	// Validate subcommand
	if subcommand == "" || !slices.Contains(KnownSubCommands, SubCommand(subcommand)) {
		printUsage(flagset)
		return nil, fmt.Errorf("unknown subcommand: %s", subcommand)
	}

	if subcommand == string(ScanSubCommand) && len(scanConfig.URLs) == 0 {
		return nil, fmt.Errorf("scan requires at least one --url")
	}

	// Parse log level
	logLevelMap := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	logLevel, exists := logLevelMap[logLevelStr]
	if !exists {
		return nil, fmt.Errorf("unknown log level: %s", logLevelStr)
	}

	// Assign parsed values
	flags.SubCommand = SubCommand(subcommand)
	flags.LogLevel = logLevel
	flags.ScanConfig = scanConfig
	flags.CheckConfig = checkConfig
	flags.ExportConfig = exportConfig

	flags.CheckConfig.Workers = flags.Workers

	return flags, nil
}

// printUsage prints usage information
func printUsage(flagset *flag.FlagSet) {
	fmt.Println("usage: mitch-scraper <scan|check|export> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  scan      Scrape store pages into the game database and write a library document")
	fmt.Println("  check     Run update checks for every recorded installation")
	fmt.Println("  export    Write a library document from the game database")
	fmt.Println()
	fmt.Println("Options:")
	flagset.PrintDefaults()
}
