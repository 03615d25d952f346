package main

import (
	"fmt"
	"io"
	"os"

	// Packages
	glamour "github.com/charmbracelet/glamour"
	termenv "github.com/muesli/termenv"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	schema "github.com/mutablelogic/go-wearbot/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type AdviceCommand struct {
	schema.AdviceRequest
}

const (
	maxWrapWidth = 100
)

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *AdviceCommand) Run(ctx *Globals) (err error) {
	advisor, _, err := ctx.Advisor()
	if err != nil {
		return err
	}

	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "AdviceCommand",
		attribute.String("city", advisor.City(cmd.City)),
	)
	defer func() { endSpan(err) }()

	stop := startSpinner(parent, os.Stderr, fetchingText(advisor.City(cmd.City)))
	advice, err := advisor.Advice(parent, cmd.City)
	stop()
	if err != nil {
		return fmt.Errorf("something went wrong: %w", err)
	}

	fmt.Fprintln(os.Stderr, "Here's your advice for today!")
	return render(os.Stdout, advice)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// render writes markdown to a terminal, or plain text otherwise
func render(w *os.File, text string) error {
	fd := int(w.Fd())
	if !term.IsTerminal(fd) {
		return plain(w, text)
	}

	style := "dark"
	if !termenv.HasDarkBackground() {
		style = "light"
	}
	width := maxWrapWidth
	if cols, _, err := term.GetSize(fd); err == nil && cols > 0 && cols < width {
		width = cols
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return plain(w, text)
	}
	out, err := renderer.Render(text)
	if err != nil {
		return plain(w, text)
	}
	_, err = fmt.Fprint(w, out)
	return err
}

func plain(w io.Writer, text string) error {
	_, err := fmt.Fprintln(w, text)
	return err
}
