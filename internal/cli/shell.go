package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	shellName   = "shell"
	shellPrompt = "hotelres> "
)

var shellCmd = &cobra.Command{
	Use:   shellName,
	Short: "Interactive session sharing one registry across commands",
	Long: `Start an interactive session. Each line is run as a hotelres command
against the same in-memory registry, e.g.

  reservation add --guest "Goku:26:176" --days 2 --breakfast
  reservation list

Type "exit" or "quit" to leave.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd.Root(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func runShell(root *cobra.Command, in io.Reader, out, errOut io.Writer) error {
	prompt := isTerminal(in)
	scanner := bufio.NewScanner(in)

	root.SetOut(out)
	root.SetErr(errOut)

	for {
		if prompt {
			fmt.Fprint(out, shellPrompt)
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		words, err := shellwords.Parse(line)
		if err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			continue
		}
		if len(words) > 0 && words[0] == "hotelres" {
			words = words[1:]
		}
		if len(words) > 0 && words[0] == shellName {
			fmt.Fprintln(errOut, "Error: already in a shell")
			continue
		}

		root.SetArgs(words)
		if err := root.Execute(); err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
		}
		resetFlags(root)
	}

	return scanner.Err()
}

// resetFlags restores every flag in the tree to its default so values from
// one shell line do not leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
