package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jingkaihe/appkit/internal/errx"
	"github.com/jingkaihe/appkit/pkg/text"
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Run a text transform or check",
}

// textOp is one `appkit text` subcommand. Multiple positional words are
// joined with a single space before the op runs.
type textOp struct {
	use   string
	short string
	args  cobra.PositionalArgs
	run   func(w io.Writer, args []string) error
}

var textOps = []textOp{
	{"slug <text>...", "Convert text to a URL slug", cobra.MinimumNArgs(1), stringOp(text.ToSlug)},
	{"sanitize <text>...", "Escape angle brackets", cobra.MinimumNArgs(1), stringOp(text.SanitizeHTML)},
	{"capitalize <text>...", "Capitalize every word", cobra.MinimumNArgs(1), stringOp(text.CapitalizeWords)},
	{"normalize <text>...", "Collapse whitespace runs", cobra.MinimumNArgs(1), stringOp(text.NormalizeWhitespace)},
	{"truncate <max> <text>...", "Shorten text to max characters with an ellipsis", cobra.MinimumNArgs(2), runTruncate},
	{"count <text>...", "Count words", cobra.MinimumNArgs(1), runCount},
	{"hashtags <text>...", "List #hashtags", cobra.MinimumNArgs(1), listOp(text.ExtractHashtags)},
	{"mentions <text>...", "List @mentions", cobra.MinimumNArgs(1), listOp(text.ExtractMentions)},
	{"email <address>", "Check an email address", cobra.ExactArgs(1), checkOp(text.IsValidEmail)},
	{"url <url>", "Check a URL", cobra.ExactArgs(1), checkOp(text.IsValidURL)},
	{"random <length>", "Print a random alphanumeric string", cobra.ExactArgs(1), runRandom},
}

func init() {
	for _, op := range textOps {
		textCmd.AddCommand(&cobra.Command{
			Use:   op.use,
			Short: op.short,
			Args:  op.args,
			RunE: func(cmd *cobra.Command, args []string) error {
				return op.run(cmd.OutOrStdout(), args)
			},
		})
	}
	rootCmd.AddCommand(textCmd)
}

func stringOp(fn func(string) string) func(io.Writer, []string) error {
	return func(w io.Writer, args []string) error {
		_, err := fmt.Fprintln(w, fn(strings.Join(args, " ")))
		return err
	}
}

func listOp(fn func(string) []string) func(io.Writer, []string) error {
	return func(w io.Writer, args []string) error {
		for _, item := range fn(strings.Join(args, " ")) {
			if _, err := fmt.Fprintln(w, item); err != nil {
				return err
			}
		}
		return nil
	}
}

func checkOp(fn func(string) bool) func(io.Writer, []string) error {
	return func(w io.Writer, args []string) error {
		_, err := fmt.Fprintln(w, fn(args[0]))
		return err
	}
}

func runTruncate(w io.Writer, args []string) error {
	max, err := parseLength(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, text.Truncate(strings.Join(args[1:], " "), max))
	return err
}

func runCount(w io.Writer, args []string) error {
	_, err := fmt.Fprintln(w, text.WordCount(strings.Join(args, " ")))
	return err
}

func runRandom(w io.Writer, args []string) error {
	n, err := parseLength(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, text.RandomString(n))
	return err
}

func parseLength(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errx.With(ErrInvalidLength, ": %q (expected a non-negative integer)", raw)
	}
	return n, nil
}
