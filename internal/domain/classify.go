package domain

// IsFormula reports whether input should be looked up as a molecular formula.
//
// The rule is coarse: at least one ASCII alphanumeric and at least one ASCII
// digit. Names with digits ("vitamin B12") are classified as formulas.
func IsFormula(input string) bool {
	hasAlnum, hasDigit := false, false
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case isDigit(c):
			hasAlnum, hasDigit = true, true
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
			hasAlnum = true
		}
		if hasAlnum && hasDigit {
			return true
		}
	}
	return false
}

// ClassifyInput maps input to the QueryKind that IsFormula selects.
func ClassifyInput(input string) QueryKind {
	if IsFormula(input) {
		return QueryFormula
	}
	return QueryName
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
