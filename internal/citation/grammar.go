package citation

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var citationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Sect", Pattern: `§`},
	{Name: "Number", Pattern: `\d+[a-zA-Z]?(?:\.\d+)*`},
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9.'-]*`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// citationNode is the participle mapping for the two accepted citation
// orderings: "§ 1201(a) of DMCA" and "Civil Rights Act § 1983".
type citationNode struct {
	LeadingAct []string `parser:"(@Ident)*"`
	Sect       string   `parser:"@Sect"`
	Section    string   `parser:"@Number"`
	Subsection string   `parser:"('(' @(Ident | Number) ')')?"`
	TrailerAct []string `parser:"('of' @Ident+)?"`
}

var citationParser = buildParser()

func buildParser() *participle.Parser[citationNode] {
	p, err := participle.Build[citationNode](
		participle.Lexer(citationLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		panic(fmt.Errorf("failed to build citation parser: %w", err))
	}
	return p
}
