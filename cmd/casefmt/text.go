package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/runes"

	"github.com/code-game-project/text-utils/strutil"
)

var errNotComposed = errors.New("text contains characters outside the allowed set")

var charClasses = map[string]runes.Set{
	"alnum":      strutil.Alphanumerics,
	"upper":      strutil.Uppercase,
	"urlquery":   strutil.URLQueryAllowed,
	"whitespace": strutil.Whitespace,
}

func newDashesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashes <text...>",
		Short: "Replace spaces with dashes and lowercase the text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strutil.ReplaceSpacesWithDashes(strings.Join(args, " ")))
			return nil
		},
	}
}

func newURLEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "urlencode <text...>",
		Short: "Percent-encode text for use in a URL query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoded, err := strutil.URLEncode(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), encoded)
			return nil
		},
	}
}

func newTrimCmd(a *app) *cobra.Command {
	var chars string
	cmd := &cobra.Command{
		Use:   "trim <text...>",
		Short: "Remove characters from both ends of each text",
		Long: `Remove characters from both ends of each text.

Text starting with a dash must follow "--", otherwise it is read as a flag:

  casefmt trim --chars "-" -- -value-`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("chars") {
				chars = a.cfg.TrimChars
			}
			set := strutil.Chars(chars)
			for _, arg := range args {
				fmt.Fprintln(cmd.OutOrStdout(), strutil.Trim(arg, set))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&chars, "chars", "", "Characters to remove (default: trim_chars of the config)")
	return cmd
}

func newFirstCmd() *cobra.Command {
	var upper, lower bool
	cmd := &cobra.Command{
		Use:   "first <text>",
		Short: "Change the case of the first character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if upper == lower {
				return errors.New("exactly one of --upper and --lower is required")
			}
			result := strutil.LowercaseFirst(args[0])
			if upper {
				result = strutil.UppercaseFirst(args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&upper, "upper", "u", false, "Uppercase the first character")
	cmd.Flags().BoolVarP(&lower, "lower", "l", false, "Lowercase the first character")
	cmd.MarkFlagsMutuallyExclusive("upper", "lower")
	return cmd
}

func newCheckCmd() *cobra.Command {
	var allowed, class string
	cmd := &cobra.Command{
		Use:   "check <text>",
		Short: "Check that text only consists of allowed characters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var set runes.Set
			switch {
			case class != "":
				var ok bool
				set, ok = charClasses[class]
				if !ok {
					return fmt.Errorf("unknown character class '%s' (available: %s)", class, strings.Join(classNames(), ", "))
				}
			case cmd.Flags().Changed("allowed"):
				set = strutil.Chars(allowed)
			default:
				return errors.New("one of --allowed and --class is required")
			}

			composed := strutil.IsComposedOf(args[0], set)
			fmt.Fprintln(cmd.OutOrStdout(), composed)
			if !composed {
				return errNotComposed
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&allowed, "allowed", "a", "", "Allowed characters")
	cmd.Flags().StringVar(&class, "class", "", "Allowed character class (alnum|upper|urlquery|whitespace)")
	cmd.MarkFlagsMutuallyExclusive("allowed", "class")
	return cmd
}

func classNames() []string {
	names := make([]string, 0, len(charClasses))
	for name := range charClasses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
