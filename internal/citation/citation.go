// Package citation parses and validates structured statutory references.
package citation

import (
	"fmt"
	"regexp"
	"strings"
)

// Citation is a structured reference to a statutory provision.
type Citation struct {
	Section    string
	Subsection string
	Act        string
}

var (
	sectionPattern    = regexp.MustCompile(`^\d+[a-zA-Z]?(\.\d+)*$`)
	subsectionPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// Parse decodes citation text such as "§ 1201(a) of DMCA" or
// "Civil Rights Act § 1983" into its structured form.
func Parse(text string) (*Citation, error) {
	node, err := citationParser.ParseString("", text)
	if err != nil {
		return nil, fmt.Errorf("malformed citation %q: %w", text, err)
	}

	act := strings.Join(node.LeadingAct, " ")
	if act == "" {
		act = strings.Join(node.TrailerAct, " ")
	}

	c := &Citation{
		Section:    node.Section,
		Subsection: node.Subsection,
		Act:        act,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the section and subsection against the statute-number
// and alphanumeric suffix patterns. Citations built from fields rather
// than parsed text go through the same rules.
func (c *Citation) Validate() error {
	if c.Section == "" {
		return fmt.Errorf("citation section must not be empty")
	}
	if !sectionPattern.MatchString(c.Section) {
		return fmt.Errorf("citation section %q does not match the statute-number pattern", c.Section)
	}
	if c.Subsection != "" && !subsectionPattern.MatchString(c.Subsection) {
		return fmt.Errorf("citation subsection %q is not alphanumeric", c.Subsection)
	}
	return nil
}

func (c *Citation) String() string {
	var b strings.Builder
	b.WriteString("§ ")
	b.WriteString(c.Section)
	if c.Subsection != "" {
		b.WriteString(fmt.Sprintf("(%s)", c.Subsection))
	}
	if c.Act != "" {
		b.WriteString(" of ")
		b.WriteString(c.Act)
	}
	return b.String()
}
