package input

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"
)

var stdinReader *bufio.Reader

// GetInput reads a line of input from stdin.
func GetInput() string {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}

	line, err := stdinReader.ReadString('\n')
	if err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
		return ""
	}

	return strings.Trim(line, "\n")
}

func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence after the
// given first byte. Returns the arrow code if successful, empty otherwise.
func tryReadArrowKey(firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}

	b2, err := readByte()
	if err != nil {
		return ""
	}

	// CSI sequences (ESC [) and SS3 sequences (ESC O) both carry the key
	// in the next byte.
	if b2 != '[' && b2 != 'O' {
		return ""
	}

	b3, err := readByte()
	if err != nil {
		return ""
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

// GetInputWithArrows reads input with support for arrow keys.
// Arrow keys return immediately without needing Enter; text input is
// collected until Enter as normal.
func GetInputWithArrows() string {
	// Reset the buffered reader to avoid conflicts with raw mode.
	stdinReader = nil

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	b1, err := readByte()
	if err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
		return ""
	}

	if arrowKey := tryReadArrowKey(b1); arrowKey != "" {
		fmt.Println()
		return arrowKey
	}

	// Ctrl+C
	if b1 == 3 {
		term.Restore(int(os.Stdin.Fd()), oldState)
		fmt.Println()
		os.Exit(0)
	}

	if b1 == '\n' || b1 == '\r' {
		return ""
	}

	var collected []byte
	if b1 >= 32 && b1 < 127 {
		collected = append(collected, b1)
		fmt.Print(string(b1))
	}

	for {
		b, err := readByte()
		if err != nil {
			break
		}

		switch {
		case b == 0x1b:
			// Arrow pressed during text entry: consume and discard.
			tryReadArrowKey(b)
		case b == 127 || b == 8:
			if len(collected) > 0 {
				collected = collected[:len(collected)-1]
				fmt.Print("\b \b")
			}
		case b == '\n' || b == '\r':
			fmt.Println()
			return string(collected)
		case b == 3:
			term.Restore(int(os.Stdin.Fd()), oldState)
			fmt.Println()
			os.Exit(0)
		case b >= 32 && b < 127:
			collected = append(collected, b)
			fmt.Print(string(b))
		}
	}

	return string(collected)
}
