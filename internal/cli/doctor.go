package cli

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/aidev-labs/aidev/internal/platform"
	"github.com/aidev-labs/aidev/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the aidev installation",
	Long:  `Run diagnostic checks on the template store and the host environment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		runEnvironmentCheck(out)
		fmt.Fprintln(out)
		return store.Check(out)
	},
}

func runEnvironmentCheck(w io.Writer) {
	fmt.Fprintln(w, "Environment check:")
	checkBinary(w, "git")
	if platform.DirLinkSupported() {
		fmt.Fprintln(w, "  [ OK ] directory links supported")
	} else {
		fmt.Fprintln(w, "  [WARN] directory links unavailable; init falls back to copies")
	}
}

func checkBinary(w io.Writer, name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found\n", name)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s found at %s\n", name, path)
}
