package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const invalidInput = "Your input is invalid!"

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// line prints label and reads one line without its terminator. io.EOF is returned only
// when the input is exhausted and nothing was read.
func (p *prompter) line(label string) (string, error) {
	if label != "" {
		fmt.Fprintln(p.out, label)
	}
	return p.read()
}

func (p *prompter) read() (string, error) {
	s, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// integer re-prompts until the line parses as an integer.
func (p *prompter) integer(label string) (int, error) {
	if label != "" {
		fmt.Fprintln(p.out, label)
	}
	for {
		s, err := p.read()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(p.out, invalidInput)
	}
}

// until re-prompts with retry until ok accepts the value.
func (p *prompter) until(label, retry string, ok func(string) bool) (string, error) {
	s, err := p.line(label)
	for err == nil && !ok(s) {
		s, err = p.line(retry)
	}
	return s, err
}

// integerUntil is until for integers.
func (p *prompter) integerUntil(label, retry string, ok func(int) bool) (int, error) {
	n, err := p.integer(label)
	for err == nil && !ok(n) {
		n, err = p.integer(retry)
	}
	return n, err
}

func (p *prompter) choice() (int, error) {
	for {
		fmt.Fprint(p.out, "Please make your choice: ")
		s, err := p.read()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(p.out, invalidInput)
	}
}
