// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msondoc

// msondoc renders Refract element trees as MSON.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-isatty"

	"github.com/woozymasta/msondoc"
	"github.com/woozymasta/msondoc/internal/logging"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/msondoc"
	_buildTime string
)

// cliOptions describes msondoc CLI flags and subcommands.
type cliOptions struct {
	LogLevel string `long:"log-level" description:"Diagnostics level" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info"`

	Version versionCommand `command:"version" description:"Print version information"`
	Render  renderCommand  `command:"render" description:"Render element tree as MSON"`
	Example exampleCommand `command:"example" description:"Generate sample payload from element tree"`
}

// inputFlags groups element tree input flags.
type inputFlags struct {
	Format string `short:"F" long:"format" description:"Input encoding (auto detects from extension or content)" choice:"auto" choice:"json" choice:"yaml" default:"auto"`
}

// msonRenderFlags groups MSON rendering flags.
type msonRenderFlags struct {
	Spaces         int    `short:"s" long:"spaces" description:"Indent width per nesting level (0 disables indentation)" default:"4"`
	Marker         string `short:"m" long:"marker" description:"List marker" choice:"+" choice:"-" choice:"*" default:"+"`
	HeadingMarker  string `short:"H" long:"heading" description:"Heading marker for titled structures" default:"###"`
	AttributesName string `short:"a" long:"attributes-name" description:"Block name for untitled structures" default:"Attributes"`
	NoIndent       bool   `long:"no-indent" description:"Do not indent untitled structure block"`
}

// renderCommand converts element tree to MSON.
type renderCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input element tree file path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output MSON file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	InputFlags  inputFlags      `group:"Input"`
	RenderFlags msonRenderFlags `group:"MSON Render"`
}

// Execute runs render subcommand.
func (command *renderCommand) Execute(_ []string) error {
	return command.runner.runRender(
		msondoc.Options{
			Spaces:         cliSpaces(command.RenderFlags.Spaces),
			Marker:         command.RenderFlags.Marker,
			HeadingMarker:  command.RenderFlags.HeadingMarker,
			AttributesName: command.RenderFlags.AttributesName,
			NoIndent:       command.RenderFlags.NoIndent,
			Format:         inputFormat(command.InputFlags.Format),
		},
		command.Args.Input,
		command.Args.Output,
	)
}

// exampleCommand generates sample payload from element tree.
type exampleCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input element tree file path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output payload file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	InputFlags    inputFlags `group:"Input"`
	ExampleFormat string     `short:"e" long:"example-format" description:"Payload encoding" choice:"json" choice:"yaml" default:"json"`
	ExampleMode   string     `short:"M" long:"example-mode" description:"Member coverage" choice:"all" choice:"required" default:"all"`
}

// Execute runs example subcommand.
func (command *exampleCommand) Execute(_ []string) error {
	return command.runner.runExample(
		inputFormat(command.InputFlags.Format),
		msondoc.ExampleMode(command.ExampleMode),
		msondoc.ExampleFormat(command.ExampleFormat),
		command.Args.Input,
		command.Args.Output,
	)
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo(command.runner.stdout)
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	logger      *log.Logger
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "msondoc"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
		logger:      logging.NewWithWriter(stderr, "info"),
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	runner.logger.Error("command failed", logging.FieldError, err)
	return 1
}

// runRender renders element tree from file or stdin and writes MSON to stdout or file.
func (runner *cliRunner) runRender(options msondoc.Options, inputPath, outputPath string) error {
	root, err := runner.readElementInput(inputPath, options.Format)
	if err != nil {
		return err
	}

	options.Logger = runner.logger
	rendered, err := msondoc.Render(root, options)
	if err != nil {
		return err
	}

	return runner.writeOutput(outputPath, []byte(rendered), "mson")
}

// runExample generates example payload from element tree.
func (runner *cliRunner) runExample(format msondoc.Format, mode msondoc.ExampleMode, exampleFormat msondoc.ExampleFormat, inputPath, outputPath string) error {
	root, err := runner.readElementInput(inputPath, format)
	if err != nil {
		return err
	}

	payload, err := msondoc.GenerateExample(root, mode, exampleFormat)
	if err != nil {
		return fmt.Errorf("generate example: %w", err)
	}

	return runner.writeOutput(outputPath, payload, "example")
}

// readElementInput decodes element tree from file path or stdin.
func (runner *cliRunner) readElementInput(path string, format msondoc.Format) (*msondoc.Element, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		runner.logger.Debug("reading element tree", logging.FieldInput, path, logging.FieldFormat, string(format))
		return msondoc.ParseFile(path, format)
	}

	if isTerminal(runner.stdin) {
		return nil, errors.New("no input: pass element tree file or pipe it to stdin")
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, fmt.Errorf("read element tree from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("read element tree from stdin: empty input")
	}

	return msondoc.Parse(data, format)
}

// isTerminal reports whether reader is an interactive terminal.
func isTerminal(reader io.Reader) bool {
	file, ok := reader.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// writeOutput writes result to stdout or file.
func (runner *cliRunner) writeOutput(path string, data []byte, what string) error {
	if strings.TrimSpace(path) == "" {
		if _, err := runner.stdout.Write(data); err != nil {
			return fmt.Errorf("write %s to stdout: %w", what, err)
		}

		return nil
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", what, path, err)
	}

	runner.logger.Debug("output written", logging.FieldOutput, path)
	return nil
}

// cliSpaces maps explicit zero width to msondoc.NoSpaces.
func cliSpaces(value int) int {
	if value == 0 {
		return msondoc.NoSpaces
	}

	return value
}

// inputFormat maps CLI format choice to decoder format.
func inputFormat(value string) msondoc.Format {
	if value == "auto" {
		return msondoc.FormatAuto
	}

	return msondoc.Format(value)
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Render.runner = runner
	options.Example.runner = runner
	options.Version.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		runner.logger.SetLevel(logging.ParseLevel(options.LogLevel))
		if command == nil {
			return nil
		}

		return command.Execute(args)
	}
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"render": strings.TrimSpace(fmt.Sprintf(`
Render Refract element tree (JSON or YAML, optionally .gz/.zst compressed) as MSON.
Titled structures render as heading blocks, untitled ones as an indented attributes block.
Reads from file argument or stdin; writes to file argument or stdout.

Examples:
> $ %s render user.refract.json > user.mson.md
> $ cat payload.yaml | %s render --format yaml --no-indent
`, programName, programName)),
		"example": strings.TrimSpace(fmt.Sprintf(`
Generate sample payload from Refract element tree.
Sample and default attributes win over literal content; untyped values get placeholders.

Examples:
> $ %s example user.refract.json
> $ %s example -e yaml user.refract.yaml user.example.yaml
> $ %s example --example-mode required user.refract.json
`, programName, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo(output io.Writer) {
	_, _ = fmt.Fprintf(output, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
