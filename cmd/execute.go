package cmd

import (
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"

	"minigo/common"
	"minigo/depm"
	"minigo/report"
)

// Execute is the main entry point for the `minigoc` CLI utility.
func Execute() {
	// set up the argument parser and all its commands and arguments
	cli := olive.NewCLI("minigoc", "minigoc is a tool for managing minigo modules", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	checkCmd := cli.AddSubcommand("check", "type-check a module", true)
	checkCmd.AddPrimaryArg("module-path", "the path to the module to check", true)

	modCmd := cli.AddSubcommand("mod", "manage modules", true)
	modInitCmd := modCmd.AddSubcommand("init", "initialize a module", true)
	modInitCmd.AddPrimaryArg("module-name", "the name of the new module", true)

	cli.AddSubcommand("version", "print the minigo version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal("%s", err.Error())
	}

	// process the inputted command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		execCheckCommand(subResult, result.Arguments["loglevel"].(string))
	case "mod":
		execModCommand(subResult)
	case "version":
		report.DisplayInfoMessage("minigo version", common.Version)
	}
}

// execCheckCommand executes the check subcommand and handles all its errors.
func execCheckCommand(result *olive.ArgParseResult, loglevel string) {
	initReporter(loglevel)

	modRelPath, _ := result.PrimaryArg()
	modAbsPath, err := filepath.Abs(modRelPath)
	if err != nil {
		report.ReportFatal("invalid module path: %s", modRelPath)
	}

	mod, err := depm.LoadModule(modAbsPath)
	if err != nil {
		report.ReportFatal("%s", err.Error())
	}

	// The semantic analysis pipeline runs over parsed units via
	// walk.CheckUnit; this build carries no parser frontend.
	report.ReportFatal("parsing not implemented yet: module `%s` must be checked through walk.CheckUnit", mod.Name)
}

// execModCommand executes the `mod` subcommand and its subcommands.
func execModCommand(result *olive.ArgParseResult) {
	subcmdName, subResult, _ := result.Subcommand()

	workDir, err := os.Getwd()
	if err != nil {
		report.ReportFatal("error reading working directory: %s", err.Error())
	}

	switch subcmdName {
	case "init":
		modName, _ := subResult.PrimaryArg()
		if err := depm.InitModule(modName, workDir); err != nil {
			report.ReportFatal("%s", err.Error())
		}
	}
}

// initReporter initializes the global reporter from the CLI log level.
func initReporter(loglevel string) {
	switch loglevel {
	case "silent":
		report.InitReporter(report.LogLevelSilent)
	case "error":
		report.InitReporter(report.LogLevelError)
	case "warn":
		report.InitReporter(report.LogLevelWarn)
	default:
		report.InitReporter(report.LogLevelVerbose)
	}
}
