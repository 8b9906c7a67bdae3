package translate

import "github.com/heartmarshall/chemtrans/internal/domain"

// Kind is the outcome of a Translate call.
type Kind string

const (
	KindResult     Kind = "result"
	KindNotFound   Kind = "not_found"
	KindEmptyInput Kind = "empty_input"
	KindBusy       Kind = "busy"
)

// User-facing messages.
const (
	MsgEmptyInput = "Please enter a chemical name or formula."
	MsgBusy       = "Please wait for the current request to finish."
	MsgNotFound   = "Compound not found."
)

// View is what a renderer needs to show one Translate outcome.
// Name, Formula and Display are set only for KindResult.
type View struct {
	Kind      Kind             `json:"kind"                 yaml:"kind"`
	Message   string           `json:"message,omitempty"    yaml:"message,omitempty"`
	Query     string           `json:"query,omitempty"      yaml:"query,omitempty"`
	QueryKind domain.QueryKind `json:"query_kind,omitempty" yaml:"query_kind,omitempty"`
	Name      string           `json:"name,omitempty"       yaml:"name,omitempty"`
	Formula   string           `json:"formula,omitempty"    yaml:"formula,omitempty"`
	Display   string           `json:"display,omitempty"    yaml:"display,omitempty"`
	RequestID string           `json:"request_id,omitempty" yaml:"request_id,omitempty"`
}

// Found reports whether the view carries a compound.
func (v View) Found() bool { return v.Kind == KindResult }

func resultView(query string, kind domain.QueryKind, c *domain.Compound) View {
	return View{
		Kind:      KindResult,
		Query:     query,
		QueryKind: kind,
		Name:      c.Name,
		Formula:   c.Formula,
		Display:   domain.FormatWithSubscript(c.Formula),
	}
}

func notFoundView(query string, kind domain.QueryKind) View {
	return View{Kind: KindNotFound, Message: MsgNotFound, Query: query, QueryKind: kind}
}
