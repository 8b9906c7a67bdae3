package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/AlecAivazis/survey/v2"
	surveyterm "github.com/AlecAivazis/survey/v2/terminal"
	"golang.org/x/term"
)

// InputConfig configures a single-line input prompt.
type InputConfig struct {
	Message string
	Help    string
}

// PromptDriver abstracts the prompt implementation so the loop can be
// tested without a real terminal.
type PromptDriver interface {
	// Input reads one line. It returns io.EOF when input is exhausted and
	// ErrAborted when the user interrupts the prompt.
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Info(ctx context.Context, msg string) error
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewDriver returns a survey-backed driver when in is a terminal and out is
// a file, and a plain line reader otherwise.
func NewDriver(in *os.File, out io.Writer) PromptDriver {
	if f, ok := out.(*os.File); ok && IsTerminal(in) {
		return &surveyDriver{in: in, out: f}
	}
	return newLineDriver(in, out)
}

type surveyDriver struct {
	in  *os.File
	out *os.File
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
	}
	if err := survey.AskOne(prompt, &out, survey.WithStdio(d.in, d.out, os.Stderr)); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

func translateSurveyErr(err error) error {
	if errors.Is(err, surveyterm.InterruptErr) {
		return ErrAborted
	}
	return err
}

// lineDriver reads newline-terminated input, for pipes and redirected stdin.
// Close stops the reader goroutine once it next has a line to hand over.
type lineDriver struct {
	lines     <-chan lineResult
	done      chan struct{}
	closeOnce sync.Once
	out       io.Writer
}

type lineResult struct {
	text string
	err  error
}

func newLineDriver(in io.Reader, out io.Writer) *lineDriver {
	lines := make(chan lineResult)
	done := make(chan struct{})
	go func() {
		defer close(lines)
		send := func(res lineResult) bool {
			select {
			case lines <- res:
				return true
			case <-done:
				return false
			}
		}
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			if !send(lineResult{text: sc.Text()}) {
				return
			}
		}
		err := sc.Err()
		if err == nil {
			err = io.EOF
		}
		send(lineResult{err: err})
	}()
	return &lineDriver{lines: lines, done: done, out: out}
}

func (d *lineDriver) Close() error {
	d.closeOnce.Do(func() { close(d.done) })
	return nil
}

// Input waits for the next line or for ctx to be done. The prompt message is
// not echoed; piped sessions print results only.
func (d *lineDriver) Input(ctx context.Context, _ InputConfig) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-d.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimRight(res.text, "\r"), res.err
	}
}

func (d *lineDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}
