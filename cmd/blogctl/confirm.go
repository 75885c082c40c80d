package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// terminalConfirmer prompts on the terminal and accepts y/yes.
type terminalConfirmer struct{}

func (terminalConfirmer) Confirm(message string) bool {
	fmt.Printf("%s [y/N]: ", message)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// autoConfirmer grants every confirmation, used with --yes.
type autoConfirmer struct{}

func (autoConfirmer) Confirm(string) bool { return true }
