package terminal

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/chemtrans/internal/service/translate"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatHTML = "html"
)

// Renderer writes Views to an output stream in one format.
// It is safe for concurrent use.
type Renderer struct {
	mu     sync.Mutex
	w      io.Writer
	format string
}

// NewRenderer creates a Renderer. format is case-insensitive.
func NewRenderer(format string, w io.Writer) (*Renderer, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	switch f {
	case FormatText, FormatJSON, FormatYAML, FormatHTML:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &Renderer{w: w, format: f}, nil
}

// Render writes one view.
func (r *Renderer) Render(v translate.View) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
		_, err := io.WriteString(r.w, "---\n")
		return err
	case FormatHTML:
		_, err := fmt.Fprintln(r.w, renderHTML(v))
		return err
	default:
		_, err := io.WriteString(r.w, renderText(v))
		return err
	}
}

func renderText(v translate.View) string {
	if !v.Found() {
		return v.Message + "\n"
	}
	return fmt.Sprintf("Name: %s\nFormula: %s\n", v.Name, v.Display)
}

var (
	htmlPolicyOnce sync.Once
	htmlPolicy     *bluemonday.Policy
)

func htmlSanitizer() *bluemonday.Policy {
	htmlPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("strong", "br")
		htmlPolicy = policy
	})
	return htmlPolicy
}

// renderHTML produces the result fragment
// <strong>Name:</strong> N<br><strong>Formula:</strong> F
// from the remote values as received. The policy keeps only strong and br,
// drops any other markup PubChem sends and escapes the remaining text.
func renderHTML(v translate.View) string {
	if !v.Found() {
		return htmlSanitizer().Sanitize(v.Message)
	}
	raw := "<strong>Name:</strong> " + v.Name +
		"<br><strong>Formula:</strong> " + v.Display
	return htmlSanitizer().Sanitize(raw)
}
