package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aidev-labs/aidev/internal/adapters"
)

// askPlatform presents a numbered menu of assistant platforms on r/w and
// returns the selection. "all" is always the last entry.
func askPlatform(r io.Reader, w io.Writer) (adapters.Platform, error) {
	names := adapters.ValidNames()

	fmt.Fprintf(w, "\nSelect assistant platform:\n")
	for i, name := range names {
		fmt.Fprintf(w, "  %d) %s\n", i+1, name)
	}
	fmt.Fprintf(w, "Enter number [1-%d]: ", len(names))

	reader := bufio.NewReader(r)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading selection: %w", err)
	}

	num, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil || num < 1 || num > len(names) {
		return "", fmt.Errorf("invalid selection %q: choose 1-%d", strings.TrimSpace(line), len(names))
	}

	p, _ := adapters.ParsePlatform(names[num-1])
	return p, nil
}
