package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/code-game-project/text-utils/casing"
	"github.com/code-game-project/text-utils/cli"
	"github.com/code-game-project/text-utils/feedback"
	"github.com/code-game-project/text-utils/strutil"
)

var errOutputExists = errors.New("output file already exists")

type convertOptions struct {
	target casing.NamingFormat
	file   string
	output string
	force  bool
}

func newConvertCmd(a *app) *cobra.Command {
	opts := &convertOptions{target: casing.Underscores}
	cmd := &cobra.Command{
		Use:   "convert [identifier...]",
		Short: "Convert identifiers to another naming format",
		Long: `Convert identifiers to another naming format.

The identifiers are taken from the arguments, from the lines of --file or from stdin.
If stdin is a terminal and no identifiers are given, casefmt asks for them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatGiven := cmd.Flags().Changed("to")
			if !formatGiven {
				opts.target = a.cfg.Format
			}

			in := cmd.InOrStdin()
			if opts.output != "" {
				err := confirmOverwrite(in, opts.output, opts.force)
				if err != nil {
					return err
				}
			}

			// The output file is only touched once every identifier has been converted.
			var results bytes.Buffer
			var err error
			switch {
			case opts.file != "":
				err = a.convertFile(&results, opts.file, opts.target)
			case len(args) > 0:
				err = convertAll(&results, args, opts.target)
			case isInteractive(in):
				err = a.convertInteractive(&results, opts.target, formatGiven)
			default:
				err = a.convertLines(&results, in, opts.target)
			}
			if err != nil {
				return err
			}

			if opts.output == "" {
				_, err = cmd.OutOrStdout().Write(results.Bytes())
				return err
			}
			return writeOutput(opts.output, results.Bytes())
		},
	}
	cmd.Flags().VarP(&opts.target, "to", "t", "Target naming format (underscores|pascal|camel)")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Convert every line of the file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the results to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing output file without asking")
	return cmd
}

func convertAll(w io.Writer, identifiers []string, target casing.NamingFormat) error {
	for _, id := range identifiers {
		result, err := casing.Convert(id, target)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, result)
	}
	return nil
}

func (a *app) convertLines(w io.Writer, r io.Reader, target casing.NamingFormat) error {
	trimSet := strutil.Chars(a.cfg.TrimChars)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strutil.Trim(scanner.Text(), trimSet)
		if line == "" {
			continue
		}
		result, err := casing.Convert(line, target)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, result)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read identifiers: %w", err)
	}
	return nil
}

func (a *app) convertFile(w io.Writer, path string, target casing.NamingFormat) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read identifiers: %w", err)
	}

	trimSet := strutil.Chars(a.cfg.TrimChars)
	identifiers := make([]string, 0)
	for i, line := range strings.Split(string(data), "\n") {
		line = strutil.Trim(strings.TrimSuffix(line, "\r"), trimSet)
		if line == "" {
			feedback.Debug(FeedbackPkg, "%s:%d: skipping empty line", path, i+1)
			continue
		}
		identifiers = append(identifiers, line)
	}

	total := int64(len(identifiers))
	for i, id := range identifiers {
		result, err := casing.Convert(id, target)
		if err != nil {
			if a.showProgress {
				cli.CancelProgressBars()
			}
			return fmt.Errorf("convert '%s': %w", id, err)
		}
		fmt.Fprintln(w, result)
		if a.showProgress {
			feedback.Progress(FeedbackPkg, "convert", "Converting", int64(i+1), total)
		}
	}
	feedback.Debug(FeedbackPkg, "Converted %d identifiers from %s to %s.", total, path, target)
	return nil
}

func (a *app) convertInteractive(w io.Writer, target casing.NamingFormat, formatGiven bool) error {
	if !formatGiven {
		formats := casing.Formats()
		names := make([]string, len(formats))
		defaultIndex := 0
		for i, f := range formats {
			names[i] = f.String()
			if f == target {
				defaultIndex = i
			}
		}
		index, err := cli.Select("Target format:", names, defaultIndex)
		if err != nil {
			return err
		}
		target = formats[index]
	}

	id, err := cli.Input("Identifier:", true, "", noWhitespace)
	if err != nil {
		return err
	}
	result, err := casing.Convert(id, target)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, result)
	return nil
}

func noWhitespace(ans any) error {
	s, ok := ans.(string)
	if !ok {
		return errors.New("expected text")
	}
	if strings.IndexFunc(s, strutil.Whitespace.Contains) >= 0 {
		return errors.New("identifiers must not contain whitespace")
	}
	return nil
}

func confirmOverwrite(in io.Reader, path string, force bool) error {
	if _, err := os.Stat(path); err != nil || force {
		return nil
	}
	if !isInteractive(in) {
		return fmt.Errorf("%w: %s (use --force to overwrite)", errOutputExists, path)
	}
	overwrite, err := cli.YesNo(fmt.Sprintf("%s already exists. Overwrite?", path), false)
	if err != nil {
		return err
	}
	if !overwrite {
		return cli.ErrCanceled
	}
	return nil
}

func writeOutput(path string, data []byte) error {
	err := os.WriteFile(path, data, 0o644)
	if err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	cli.Success("Wrote results to %s.", path)
	return nil
}
