package pubchem

import (
	"fmt"
	"net/url"

	"github.com/heartmarshall/chemtrans/internal/domain"
)

// echoPolicy says which Compound field is copied from the query term
// instead of being read from the record.
type echoPolicy int

const (
	echoNone echoPolicy = iota
	echoFormula
	echoName
)

// lookup parametrises the single request/parse path shared by the formula,
// name and listkey endpoints.
type lookup struct {
	name    string   // endpoint name, for logs
	path    string   // path below the base URL; %s is the escaped term
	extract []string // property labels read from the record
	echo    echoPolicy
}

var (
	byFormula = lookup{
		name:    "formula",
		path:    "/compound/formula/%s/JSON",
		extract: []string{domain.LabelIUPACName},
		echo:    echoFormula,
	}
	byName = lookup{
		name:    "name",
		path:    "/compound/name/%s/JSON",
		extract: []string{domain.LabelMolecularFormula},
		echo:    echoName,
	}
	byListKey = lookup{
		name:    "listkey",
		path:    "/compound/listkey/%s/JSON",
		extract: []string{domain.LabelIUPACName, domain.LabelMolecularFormula},
		echo:    echoNone,
	}
)

func (l lookup) url(baseURL, term string) string {
	return baseURL + fmt.Sprintf(l.path, url.PathEscape(term))
}

// build maps a compound record to a Compound. Extracted fields that are
// missing or empty become domain.Unknown; the echoed field is term verbatim.
func (l lookup) build(term string, rec apiCompound) (*domain.Compound, error) {
	out := &domain.Compound{Name: domain.Unknown, Formula: domain.Unknown}

	for _, label := range l.extract {
		v, err := rec.property(label)
		if err != nil {
			return nil, err
		}
		switch label {
		case domain.LabelIUPACName:
			out.Name = orUnknown(v)
		case domain.LabelMolecularFormula:
			out.Formula = orUnknown(v)
		}
	}

	switch l.echo {
	case echoFormula:
		out.Formula = term
	case echoName:
		out.Name = term
	}

	return out, nil
}
