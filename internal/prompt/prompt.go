// filepath: internal/prompt/prompt.go
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks yes/no questions over the given streams.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Confirm writes question and blocks until one line of input arrives.
// Only "y" (any case, surrounding whitespace ignored) counts as yes;
// anything else, including "yes", an empty line or EOF, is a no.
func (p *Prompter) Confirm(question string) bool {
	fmt.Fprint(p.out, question)

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.ToLower(strings.TrimSpace(line)) == "y"
}
