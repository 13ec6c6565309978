package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/randsent/expand"
	"github.com/revelaction/randsent/grammar"
	"github.com/revelaction/randsent/render"
)

const quit = "quit"

type Handler struct {
	Grammar       *grammar.Grammar
	Expander      *expand.Expander
	Renderer      *render.TextRenderer
	MaxExpansions int

	// Err receives generation errors
	Err io.Writer
}

func NewHandler(g *grammar.Grammar, e *expand.Expander, r *render.TextRenderer, maxExpansions int, errw io.Writer) *Handler {
	return &Handler{
		Grammar:       g,
		Expander:      e,
		Renderer:      r,
		MaxExpansions: maxExpansions,
		Err:           errw,
	}
}

// Run reads start symbols until quit. An input of "ROOT 3" generates three
// sentences from ROOT.
func (h *Handler) Run() error {

	fmt.Fprintln(h.Renderer.W, "🔑 Ctrl+F: next Format, Ctrl+X: Toggle prefix, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input("      🌳 ", h.completer,
			prompt.OptionTitle("randsent repl"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Fprintln(h.Renderer.W, "Format set to: "+h.Renderer.Format)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPrefix()
					fmt.Fprintf(h.Renderer.W, "Prefix set to %t\n", h.Renderer.HasPrefix)
				}}),
		)

		if strings.TrimSpace(in) == quit {
			return nil
		}

		history = append(history, in)

		if err := h.Eval(in); err != nil {
			fmt.Fprintf(h.Err, "✍  %v\n", err)
		}
	}
}

// Eval generates and renders the sentences requested by one input line.
func (h *Handler) Eval(in string) error {
	start, n, err := parse(in)
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		t, err := h.Expander.Generate(start, h.MaxExpansions)
		if err != nil {
			return err
		}

		if err := h.Renderer.Render(t); err != nil {
			return err
		}
	}

	return nil
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	s := []prompt.Suggest{}
	befCursor := in.TextBeforeCursor()

	// only complete the start symbol
	if "" == befCursor || strings.Contains(befCursor, " ") {
		return s
	}

	return h.completeSymbol(befCursor)
}

func (h *Handler) completeSymbol(token string) (s []prompt.Suggest) {
	for _, nt := range h.Grammar.Nonterminals() {
		if strings.HasPrefix(nt, token) {
			desc := fmt.Sprintf("🌿 %d rules", len(h.Grammar.RulesFor(nt)))
			s = append(s, prompt.Suggest{Text: nt, Description: desc})
		}
	}

	return s
}
