package domain

// Unknown is substituted for any property the remote record does not carry.
const Unknown = "Unknown"

// Property labels read from a compound record.
const (
	LabelIUPACName        = "IUPAC Name"
	LabelMolecularFormula = "Molecular Formula"
)

// Compound is the resolved name/formula pair for a single lookup.
// It is built once per lookup, rendered, and discarded.
type Compound struct {
	Name    string `json:"name"    yaml:"name"`
	Formula string `json:"formula" yaml:"formula"`
}

// QueryKind tells which field of a Compound the user supplied.
type QueryKind string

const (
	QueryFormula QueryKind = "formula"
	QueryName    QueryKind = "name"
)

// String implements fmt.Stringer.
func (k QueryKind) String() string { return string(k) }
