package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShell_SharesRegistryAcrossLines(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	color.NoColor = true

	script := strings.Join([]string{
		`# booking desk session`,
		`reservation add --guest "Goku:26:176" --guest "Son Gohan:39:160" --days 2 --breakfast`,
		`reservation add --guest "Goku:26:176" --days 1`,
		`reservation add --guest "Krilin:27:120" --days 3`,
		`reservation list`,
		`quote --guests 3 --days 2 --breakfast`,
		`reservation cancel Vinícius`,
		`reservation add --guest "Bulma:64:140" --days 1 --clerk NIGHT-SHIFT`,
		`reservation ids --config elsewhere.yaml`,
		`shell`,
		`audit --limit 0`,
		`audit --summary`,
		`exit`,
		`reservation list`,
	}, "\n")

	var out, errOut bytes.Buffer
	root := RootCmd()
	root.SetIn(strings.NewReader(script))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"shell"})

	require.NoError(t, root.Execute())

	stdout := out.String()
	stderr := errOut.String()

	assert.Equal(t, 3, strings.Count(stdout, "Reservation successfully saved!"))
	assert.Contains(t, stdout, "+    PRICE: 104.95$")
	// --breakfast from the first line must not carry over to the third.
	assert.Contains(t, stdout, "+    PRICE: 62.97$")
	assert.Contains(t, stdout, "+    BREAKFAST: NO")

	assert.Contains(t, stdout, "Reservation 2")
	assert.NotContains(t, stdout, "Reservation 3")
	assert.Contains(t, stdout, "PRICE: 157.43$")

	assert.Contains(t, stderr, "reservation found for a customer")
	assert.Contains(t, stderr, "no reservation found (id: Vinícius)")
	assert.Contains(t, stderr, "already in a shell")

	assert.Contains(t, stdout, "REJECT")
	assert.Contains(t, stdout, "FRONT-DESK")
	// --clerk applies to its own line only.
	assert.Contains(t, stdout, "NIGHT-SHIFT")
	assert.Contains(t, stderr, "configuration is already loaded; restart hotelres to use elsewhere.yaml")
	assert.Contains(t, stdout, "COUNT")

	// Nothing after exit runs.
	assert.Equal(t, 1, strings.Count(stdout, "List of reservations"))
}

func TestRunShell_DispatchesLinesToRoot(t *testing.T) {
	var ran []string
	root := &cobra.Command{Use: "hotelres", SilenceUsage: true, SilenceErrors: true}
	echo := &cobra.Command{
		Use: "echo",
		RunE: func(cmd *cobra.Command, args []string) error {
			loud, _ := cmd.Flags().GetBool("loud")
			if loud {
				ran = append(ran, strings.ToUpper(strings.Join(args, " ")))
			} else {
				ran = append(ran, strings.Join(args, " "))
			}
			return nil
		},
	}
	echo.Flags().Bool("loud", false, "")
	root.AddCommand(echo)

	script := strings.Join([]string{
		`echo --loud "front desk"`,
		`hotelres echo lobby`,
		`shell`,
		`echo 'unterminated`,
		`quit`,
		`echo after`,
	}, "\n")

	var out, errOut bytes.Buffer
	require.NoError(t, runShell(root, strings.NewReader(script), &out, &errOut))

	assert.Equal(t, []string{"FRONT DESK", "lobby"}, ran)
	assert.Contains(t, errOut.String(), "already in a shell")
	assert.Equal(t, 2, strings.Count(errOut.String(), "Error:"))
	assert.Empty(t, out.String())
}
