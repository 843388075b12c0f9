package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
	"go.uber.org/zap"

	"sheetflow/catalog"
	"sheetflow/constants/lipgloss"
	"sheetflow/executor"
	"sheetflow/ops"
	"sheetflow/prompt"
	"sheetflow/security"
	"sheetflow/utils"
)

// handleSessionCommand drives the interactive loop: read an instruction,
// generate a script, screen it, execute it, report — one turn at a time.
// Quit instructions or an interrupt end the session; scratch scripts are
// cleaned up on the way out.
func handleSessionCommand(deps *RootDependencies) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	defer cleanupScratch(deps)

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgLightBlue)).WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").WithDelay(100).WithRemoveWhenDone(true)

	helpBox := lipgloss.BoxStyle.Render(strings.Join([]string{
		"Describe a spreadsheet task in plain language, e.g.:",
		"  deduplicate sales.xlsx sheet Sheet1 by the Name column",
		"  sum the Amount column of orders.csv",
		"",
		"list          refresh the file listing",
		"exit / quit   end the session",
	}, "\n"))
	fmt.Println(helpBox)

	deps.Logger.Info("session started")

	spinnerScan, _ := spinner.Start("Scanning spreadsheet files...")
	files, err := deps.Catalog.Scan()
	spinnerScan.Stop()
	fmt.Print("\r")
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		deps.Logger.Error("catalog scan failed", zap.Error(err))
		return
	}
	displayFiles(files)

	functions := ops.Registry()
	reader := bufio.NewReader(os.Stdin)

	for {
		select {
		case <-ctx.Done():
			fmt.Println(lipgloss.Yellow.Render("\nSession interrupted."))
			return

		default:
			userInput, err := utils.InputPromptWithContext(ctx, reader)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
					fmt.Println(lipgloss.Yellow.Render("\nExiting..."))
					return
				}
				fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
				continue
			}

			switch strings.ToLower(userInput) {
			case "":
				fmt.Println(lipgloss.Yellow.Render("Instruction must not be empty."))
				continue
			case "exit", "quit":
				fmt.Println(lipgloss.Green.Render("Goodbye!"))
				return
			case "list":
				files, err = deps.Catalog.Scan()
				if err != nil {
					fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
					deps.Logger.Error("catalog scan failed", zap.Error(err))
					continue
				}
				displayFiles(files)
				continue
			}

			if !anyUsable(files) {
				fmt.Println(lipgloss.Yellow.Render("No usable spreadsheet files. Put .xlsx/.xlsm/.csv files into the uploads directory and run 'list'."))
				continue
			}

			deps.Logger.Info("instruction received", zap.String("instruction", userInput))
			runTurn(ctx, deps, spinner, files, functions, userInput)
		}
	}
}

// runTurn executes one generate → screen → execute cycle. Every failure path
// reports a distinct message and returns the loop to the instruction prompt.
func runTurn(ctx context.Context, deps *RootDependencies, spinner *pterm.SpinnerPrinter, files []catalog.FileDescriptor, functions []ops.Descriptor, instruction string) {
	promptText := prompt.Build(files, functions, instruction)

	spinnerGen, _ := spinner.Start("Generating processing script...")
	completion, err := deps.Provider.Complete(ctx, promptText)
	spinnerGen.Stop()
	fmt.Print("\r")
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Script generation failed: %v", err)))
		deps.Logger.Error("generation failed", zap.Error(err))
		return
	}

	script := utils.ExtractScript(completion)

	verdict := security.Screen(script)
	if !verdict.Passed {
		fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("Security check failed: script contains %q. The script was discarded; rephrase the instruction.", verdict.Pattern)))
		deps.Logger.Warn("security check failed", zap.String("pattern", verdict.Pattern))
		return
	}
	fmt.Println(lipgloss.Green.Render("Security check passed."))

	fmt.Println(lipgloss.Gray.Render("Generated script:"))
	utils.RenderScript(script, deps.Config.Theme)

	fmt.Println(lipgloss.BlueSky.Render("Executing script..."))
	result := deps.Executor.Run(ctx, script)
	reportResult(deps, result)
}

func reportResult(deps *RootDependencies, result executor.Result) {
	if result.ScriptPath != "" {
		fmt.Println(lipgloss.Gray.Render(fmt.Sprintf("Script saved to %s", result.ScriptPath)))
	}

	switch {
	case result.Succeeded:
		fmt.Println(lipgloss.Green.Render("Script executed successfully. Results are in the results directory."))
		deps.Logger.Info("execution succeeded", zap.String("script", result.ScriptPath))
	case result.Class == executor.FailureSyntax:
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Script syntax error:\n%s", result.Diagnostic)))
		deps.Logger.Error("script syntax error", zap.String("diagnostic", result.Diagnostic))
	default:
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Script execution failed:\n%s", result.Diagnostic)))
		deps.Logger.Error("script execution failed", zap.String("diagnostic", result.Diagnostic))
	}
}

// cleanupScratch removes the session's scratch scripts. Failures are
// reported and logged but never change the exit outcome.
func cleanupScratch(deps *RootDependencies) {
	errs := deps.Executor.Cleanup()
	for _, err := range errs {
		fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("Cleanup: %v", err)))
		deps.Logger.Warn("scratch cleanup failed", zap.Error(err))
	}
	if len(errs) == 0 {
		fmt.Println(lipgloss.Gray.Render("Scratch scripts cleaned up."))
	}
	deps.Logger.Info("session ended")
}

func anyUsable(files []catalog.FileDescriptor) bool {
	for i := range files {
		if files[i].Usable() {
			return true
		}
	}
	return false
}

// displayFiles renders the catalog listing the way the session shows it after
// startup and on 'list'.
func displayFiles(files []catalog.FileDescriptor) {
	if len(files) == 0 {
		fmt.Println(lipgloss.Yellow.Render("The uploads directory is empty. Supported formats: .xlsx, .xlsm, .csv"))
		return
	}

	var b strings.Builder
	for i, f := range files {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "[%d] %s (%.2f KB, modified %s)\n", i+1, f.Filename, float64(f.Size)/1024, f.Modified.Format("2006-01-02 15:04:05"))
		if f.Err != nil {
			fmt.Fprintf(&b, "    read error: %v\n", f.Err)
			continue
		}
		for _, s := range f.Sheets {
			if s.Err != nil {
				fmt.Fprintf(&b, "    sheet %s: read error: %v\n", s.Name, s.Err)
				continue
			}
			headers := s.Columns
			suffix := ""
			if len(headers) > 10 {
				headers = headers[:10]
				suffix = "..."
			}
			fmt.Fprintf(&b, "    sheet %s: %d rows, %d columns [%s%s]\n", s.Name, s.Rows, len(s.Columns), strings.Join(headers, ", "), suffix)
		}
	}
	fmt.Println(lipgloss.BoxStyle.Render(strings.TrimRight(b.String(), "\n")))
}
