package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/awnumar/memguard"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// promptLine reads a single line of visible input.
func promptLine(cmd *cobra.Command, label string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), label)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptPassword reads a password with echo disabled and returns it inside
// a memguard LockedBuffer so it can be wiped once the request is sent.
// When stdin is not a terminal (tests, pipes) it falls back to a plain
// line read.
func promptPassword(cmd *cobra.Command, label string) (*memguard.LockedBuffer, error) {
	fmt.Fprint(cmd.OutOrStdout(), label)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return nil, fmt.Errorf("reading password: %w", err)
		}
		return memguard.NewBufferFromBytes(raw), nil
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return nil, fmt.Errorf("reading password: %w", err)
	}
	return memguard.NewBufferFromBytes([]byte(strings.TrimRight(line, "\r\n"))), nil
}
