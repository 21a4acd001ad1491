package main

import (
	"fmt"
	"os"
	"strings"

	"serpsim/internal/app"
	"serpsim/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const (
	version = "1.0.0"
	repoURL = "https://github.com/serpsim/serpsim"
)

func generateCompletion(shell string) error {
	switch shell {
	case "bash":
		fmt.Println("# bash completion for serpsim")
		fmt.Println("_serpsim_completions() {")
		fmt.Println("    local cur prev opts")
		fmt.Println("    COMPREPLY=()")
		fmt.Println("    cur=\"${COMP_WORDS[COMP_CWORD]}\"")
		fmt.Println("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"")
		fmt.Println("    opts=\"analyze template completion help version --device --output --help\"")
		fmt.Println("    if [[ $COMP_CWORD -eq 1 ]]; then")
		fmt.Println("        COMPREPLY=( $(compgen -W \"${opts}\" -- \"${cur}\" )")
		fmt.Println("    fi")
		fmt.Println("    return 0")
		fmt.Println("}")
		fmt.Println("complete -F _serpsim_completions serpsim")
	case "zsh":
		fmt.Println("# zsh completion for serpsim")
		fmt.Println("compdef _serpsim serpsim")
		fmt.Println("_serpsim() {")
		fmt.Println("    _arguments -C \\")
		fmt.Println("        '(-h --help)'{-h,--help}'[show help]' \\")
		fmt.Println("        '(-v --version)'{-v,--version}'[print version]' \\")
		fmt.Println("        '(-d --device)'{-d,--device}'[device profile]:device:(desktop mobile)' \\")
		fmt.Println("        '*::command:->command'")
		fmt.Println("}")
	case "fish":
		fmt.Println("# fish completion for serpsim")
		fmt.Println("complete -c serpsim -f -a 'analyze template completion help version'")
		fmt.Println("complete -c serpsim -s h -l help -d 'Show help'")
		fmt.Println("complete -c serpsim -s v -l version -d 'Print version'")
		fmt.Println("complete -c serpsim -s d -l device -d 'Device profile' -a 'desktop mobile'")
	default:
		return fmt.Errorf("unsupported shell: %s", shell)
	}
	return nil
}

func loadApp(deviceFlag string) (*app.Application, app.DeviceProfile, error) {
	cfg, err := app.LoadConfig(app.DefaultConfigPath())
	if err != nil {
		return nil, "", err
	}
	application := app.NewApplication(cfg, os.Stderr)
	device := application.Device()
	if deviceFlag != "" {
		d, ok := app.ParseDevice(deviceFlag)
		if !ok {
			return nil, "", fmt.Errorf("unknown device %q (expected desktop or mobile)", deviceFlag)
		}
		device = d
	}
	return application, device, nil
}

func main() {
	root := &cobra.Command{
		Use:     "serpsim",
		Short:   "SERP snippet simulator",
		Long:    "serpsim previews how a page title, meta description and URL would be truncated on a search-engine results page, estimating pixel widths against desktop and mobile limits.\n\nUse without arguments for the live TUI preview, or 'serpsim analyze' for bulk CSV analysis.\n\nFor more information, visit: " + repoURL,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Printf("serpsim v%s\n", version)
				fmt.Printf("Repository: %s\n", repoURL)
				return nil
			}
			if comp, _ := cmd.Flags().GetString("completion"); comp != "" {
				return generateCompletion(comp)
			}

			application, device, err := loadApp(rootDevice)
			if err != nil {
				return err
			}
			p := tea.NewProgram(tui.New(application, device), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return err
			}
			return nil
		},
	}

	root.Flags().StringVarP(&rootDevice, "device", "d", "", "device profile: desktop|mobile")
	root.Flags().BoolP("version", "v", false, "Print version information")
	root.Flags().String("completion", "", "Generate shell completion (bash|zsh|fish)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze <input.csv>",
		Short: "Bulk-analyze snippets from a CSV file",
		Long:  "Analyze every row of a CSV file with columns: title, description, url.\n\nExamples:\n  - serpsim analyze pages.csv\n  - serpsim analyze --device mobile pages.csv\n  - serpsim analyze -o results.csv pages.csv",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, device, err := loadApp(analyzeDevice)
			if err != nil {
				return err
			}
			runID := uuid.NewString()

			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			rows, err := app.ReadSnippets(in)
			if err != nil {
				application.Logger.Error("invalid bulk input", map[string]interface{}{
					"run_id": runID,
					"file":   args[0],
					"error":  err.Error(),
				})
				return err
			}

			results := application.Estimator.AnalyzeAll(rows, device)
			summary := app.Summarize(results)
			application.Logger.Info("bulk analysis complete", map[string]interface{}{
				"run_id": runID,
				"file":   args[0],
				"device": string(device),
				"rows":   summary.Total,
			})

			outName := analyzeOutput
			if outName == "" {
				outName = fmt.Sprintf("bulk_serp_analysis_%s.csv", device)
			}
			out, err := os.Create(outName)
			if err != nil {
				return err
			}
			defer out.Close()
			if err := app.WriteResults(out, results, device); err != nil {
				return fmt.Errorf("write results: %w", err)
			}

			fmt.Printf("\nBulk Analysis Complete (%s)\n", device)
			fmt.Printf("Total analyzed: %d\n", summary.Total)
			fmt.Printf("Titles OK: %d/%d\n", summary.TitlesOK, summary.Total)
			fmt.Printf("Descriptions OK: %d/%d\n", summary.DescriptionsOK, summary.Total)
			fmt.Printf("Both OK: %d/%d\n", summary.BothOK, summary.Total)
			fmt.Printf("Results written to %s\n\n", outName)
			return nil
		},
	}

	analyzeCmd.Flags().StringVarP(&analyzeDevice, "device", "d", "", "device profile: desktop|mobile")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "output CSV path")
	root.AddCommand(analyzeCmd)

	templateCmd := &cobra.Command{
		Use:   "template",
		Short: "Write a starter CSV for bulk analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			name := templateOutput
			f, err := os.Create(name)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := app.WriteTemplate(f); err != nil {
				return err
			}
			fmt.Printf("Template written to %s\n", name)
			return nil
		},
	}
	templateCmd.Flags().StringVarP(&templateOutput, "output", "o", "serp_template.csv", "template CSV path")
	root.AddCommand(templateCmd)

	completionCmd := &cobra.Command{
		Use:   "completion [shell]",
		Short: "Generate shell completion",
		Long:  "Generate shell completion script for serpsim.\n\nExamples:\n  - serpsim completion bash >> ~/.bashrc\n  - serpsim completion zsh > ~/.zsh/completion/_serpsim\n  - serpsim completion fish > ~/.config/fish/completions/serpsim.fish",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateCompletion(args[0])
		},
	}
	root.AddCommand(completionCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimSpace(err.Error()))
		os.Exit(1)
	}
}

var (
	rootDevice     string
	analyzeDevice  string
	analyzeOutput  string
	templateOutput string
)
