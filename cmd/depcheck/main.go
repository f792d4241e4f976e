// Command depcheck reports loop-carried dependences of single-loop sources.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/nickng/loopdep/depcheck"
	"github.com/nickng/loopdep/dependence"
	"github.com/nickng/loopdep/report"
	"github.com/spf13/cobra"
)

var (
	logPath  string
	format   string
	exprSrc  []string
	noColour bool

	rootCmd = &cobra.Command{
		Use:   "depcheck [flags] file.py...",
		Short: "Report loop-carried dependences of for-range loops",
		Long: `depcheck analyses source files, each holding a single
for <var> in range(...) loop, and reports the true, anti and output
dependences carried between iterations of the loop.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
)

// errNotAnalyzable makes the command exit non-zero without printing anything
// beyond the reports.
type errNotAnalyzable int

func (e errNotAnalyzable) Error() string {
	return fmt.Sprintf("%d loops not analyzable", int(e))
}

func init() {
	rootCmd.Flags().StringVar(&logPath, "log", "", "Specify analysis log file (use '-' for stderr)")
	rootCmd.Flags().StringVar(&format, "format", "text", "Report format (text, yaml or json)")
	rootCmd.Flags().StringArrayVarP(&exprSrc, "expr", "e", nil, "Analyse inline loop source (repeatable)")
	rootCmd.Flags().BoolVar(&noColour, "no-color", false, "Disable coloured output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if _, ok := err.(errNotAnalyzable); !ok {
			log.Print(err)
		}
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && len(exprSrc) == 0 {
		return cmd.Help()
	}
	f, err := report.ParseFormat(format)
	if err != nil {
		return err
	}
	if noColour {
		color.NoColor = true
	}

	analyser := depcheck.New()
	switch logPath {
	case "":
	case "-":
		analyser.SetBuildLog(os.Stderr)
		analyser.AddLogFiles()
	default:
		logFile, err := os.Create(logPath)
		if err != nil {
			return fmt.Errorf("cannot create log %s: %v", logPath, err)
		}
		defer logFile.Close()
		analyser.SetBuildLog(logFile)
		analyser.AddLogFiles(logFile.Name())
	}

	out := cmd.OutOrStdout()
	failed := 0
	for i, src := range exprSrc {
		name := fmt.Sprintf("<expr %d>", i+1)
		if err := write(out, name, analyser.AnalyseNamed(name, src), f, &failed); err != nil {
			return err
		}
	}
	for _, file := range args {
		res, err := analyser.AnalyseFile(file)
		if err != nil {
			return err
		}
		if err := write(out, file, res, f, &failed); err != nil {
			return err
		}
	}
	if failed > 0 {
		return errNotAnalyzable(failed)
	}
	return nil
}

func write(w io.Writer, name string, res dependence.Result, f report.Format, failed *int) error {
	if !res.Analyzable {
		*failed++
	}
	return report.Write(w, name, res, f)
}
