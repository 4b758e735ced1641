package solver

import (
	"bufio"
	"strings"
)

// Assignment is one variable's value in a solver model. Values keep
// the solver's own spelling; negative integers arrive as "(- 5)".
type Assignment struct {
	Name  string
	Value string
}

// Counterexample is a parsed model: the concrete assignment that
// refutes a universal principle or witnesses an existential one.
type Counterexample struct {
	Assignments []Assignment
}

func (c *Counterexample) String() string {
	if c == nil || len(c.Assignments) == 0 {
		return "(no assignments)"
	}
	var b strings.Builder
	for i, a := range c.Assignments {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.Name)
		b.WriteString(" = ")
		b.WriteString(a.Value)
	}
	return b.String()
}

// ParseModel extracts (name, value) pairs from a solver model by
// recognizing define-fun lines. The value is the remainder of the
// line after the result sort, or the following line when the solver
// wraps. Anything else in the model is ignored.
func ParseModel(model string) *Counterexample {
	ce := &Counterexample{}
	scanner := bufio.NewScanner(strings.NewReader(model))

	var pending string // name awaiting a value on the next line
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if pending != "" {
			if value := trimValue(line); value != "" {
				ce.Assignments = append(ce.Assignments, Assignment{Name: pending, Value: value})
			}
			pending = ""
			continue
		}

		idx := strings.Index(line, "define-fun")
		if idx < 0 {
			continue
		}
		rest := strings.TrimSpace(line[idx+len("define-fun"):])

		name, rest := cutToken(rest)
		if name == "" {
			continue
		}
		name = strings.Trim(name, "|")

		// skip the argument list and result sort
		rest = strings.TrimSpace(rest)
		if !strings.HasPrefix(rest, "()") {
			continue // only zero-arity definitions carry assignments
		}
		rest = strings.TrimSpace(rest[2:])
		_, rest = cutToken(rest)

		if value := trimValue(rest); value != "" {
			ce.Assignments = append(ce.Assignments, Assignment{Name: name, Value: value})
		} else {
			pending = name
		}
	}
	return ce
}

// cutToken splits off the first whitespace-delimited token, keeping
// piped symbols like |b.rate| intact.
func cutToken(s string) (string, string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ""
	}
	if s[0] == '|' {
		if end := strings.IndexByte(s[1:], '|'); end >= 0 {
			return s[:end+2], s[end+2:]
		}
	}
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '\t' {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

// trimValue strips the definition's closing parentheses from a value,
// leaving interior structure like "(- 5)" alone.
func trimValue(s string) string {
	s = strings.TrimSpace(s)
	for strings.HasSuffix(s, ")") && !balanced(s) {
		s = strings.TrimSpace(s[:len(s)-1])
	}
	return s
}

func balanced(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
