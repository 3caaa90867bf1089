// Package confirmations provides console prompts that wait on the user.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
)

// DefaultPausePrompt is shown when the console holds output open after an error
const DefaultPausePrompt = "Press Enter to continue..."

// Pause writes prompt to out and blocks until a line (or EOF) is read from in
func Pause(in io.Reader, out io.Writer, prompt string) error {
	if prompt == "" {
		prompt = DefaultPausePrompt
	}
	if _, err := fmt.Fprint(out, prompt); err != nil {
		return err
	}

	reader := bufio.NewReader(in)
	_, err := reader.ReadString('\n')
	if err == io.EOF {
		err = nil
	}
	_, _ = fmt.Fprintln(out)
	return err
}
