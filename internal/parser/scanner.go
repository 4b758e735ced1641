package parser

import (
	"fmt"
	"unicode"
)

type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
}

type Scanner struct {
	source      string
	tokens      []Token
	start       int
	current     int
	line        int
	startColumn int
	column      int
	offset      int
	errors      []ScanError
}

type ScanError struct {
	Message  string
	Position Position // line, column, offset
	Length   int      // how many characters it covers
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.startColumn = s.column
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Position: Position{Line: s.line, Column: s.column, Offset: s.offset}})
	return s.tokens
}

func (s *Scanner) Errors() []ScanError {
	return s.errors
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	// Simple single-character tokens
	case '(':
		s.addToken(LEFT_PAREN)
	case ')':
		s.addToken(RIGHT_PAREN)
	case '{':
		s.addToken(LEFT_BRACE)
	case '}':
		s.addToken(RIGHT_BRACE)
	case '[':
		s.addToken(LEFT_BRACKET)
	case ']':
		s.addToken(RIGHT_BRACKET)
	case ',':
		s.addToken(COMMA)
	case '.':
		s.addToken(DOT)
	case ';':
		s.addToken(SEMICOLON)
	case '#':
		s.addToken(POUND)
	case '+':
		s.addToken(PLUS)
	case '*':
		s.addToken(STAR)
	case '%':
		s.addToken(MODULO)

	// Operators with multi-character variants
	case '-':
		s.scanMinusOperator()
	case ':':
		s.scanColonOperator()
	case '=':
		s.scanEqualOperator()
	case '!':
		s.scanBangOperator()
	case '<':
		s.scanLessOperator()
	case '>':
		s.scanGreaterOperator()
	case '&':
		s.scanAmpersandOperator()
	case '|':
		s.scanPipeOperator()
	case '/':
		s.scanSlashOperator()

	// Whitespace (ignored)
	case ' ', '\r', '\t':
		// Ignore whitespace
	case '\n':
		// Handled in advance()

	// Domain literals with a leading sigil
	case '$':
		s.scanMoney()
	case '"':
		s.scanString()

	default:
		s.scanDefault(c)
	}
}

func (s *Scanner) scanMinusOperator() {
	if s.matchNext('>') {
		s.addToken(ARROW)
	} else {
		s.addToken(MINUS)
	}
}

func (s *Scanner) scanColonOperator() {
	if s.matchNext('=') {
		s.addToken(WALRUS)
	} else {
		s.addToken(COLON)
	}
}

func (s *Scanner) scanEqualOperator() {
	if s.matchNext('=') {
		s.addToken(EQUAL_EQUAL)
	} else if s.matchNext('>') {
		s.addToken(FAT_ARROW)
	} else {
		s.addToken(EQUAL)
	}
}

func (s *Scanner) scanBangOperator() {
	if s.matchNext('=') {
		s.addToken(BANG_EQUAL)
	} else {
		s.addToken(BANG)
	}
}

func (s *Scanner) scanLessOperator() {
	if s.matchNext('=') {
		s.addToken(LESS_EQUAL)
	} else {
		s.addToken(LESS)
	}
}

func (s *Scanner) scanGreaterOperator() {
	if s.matchNext('=') {
		s.addToken(GREATER_EQUAL)
	} else {
		s.addToken(GREATER)
	}
}

func (s *Scanner) scanAmpersandOperator() {
	if s.matchNext('&') {
		s.addToken(AND)
	} else {
		s.reportError("Unexpected character: '&' (did you mean '&&'?)")
	}
}

func (s *Scanner) scanPipeOperator() {
	if s.matchNext('|') {
		s.addToken(OR)
	} else {
		s.addToken(PIPE)
	}
}

func (s *Scanner) scanSlashOperator() {
	if s.matchNext('/') {
		s.skipLineComment()
	} else if s.matchNext('*') {
		s.skipBlockComment()
	} else {
		s.addToken(SLASH)
	}
}

func (s *Scanner) scanDefault(c byte) {
	if isDigit(c) {
		s.scanNumber()
	} else if isAlpha(c) {
		s.scanIdentifier()
	} else {
		s.reportError(fmt.Sprintf("Unexpected character: %q", c))
	}
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	s.offset++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) addToken(tokenType TokenType) {
	text := s.source[s.start:s.current]
	s.tokens = append(s.tokens, Token{
		Type:   tokenType,
		Lexeme: text,
		Position: Position{
			Line:   s.line,
			Column: s.startColumn,
			Offset: s.start,
		},
	})
}

func (s *Scanner) reportError(message string) {
	s.errors = append(s.errors, ScanError{
		Message:  message,
		Position: Position{Line: s.line, Column: s.startColumn, Offset: s.start},
		Length:   s.current - s.start,
	})
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return unicode.IsLetter(rune(c)) || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]
	s.addToken(lookupIdentifier(text))
}

func lookupIdentifier(text string) TokenType {
	if t, ok := KEYWORDS[text]; ok {
		return t
	}
	return IDENTIFIER
}

// scanNumber scans plain integers plus the literal forms that begin with a
// digit: floats, percents (25%), day-month-year dates (15-01-2024) and
// durations (30d, 6m, 2y).
func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '-' && s.dateAhead() {
		s.scanDateRemainder()
		return
	}

	isFloat := false
	if s.peek() == '.' && isDigit(s.peekNext()) {
		isFloat = true
		s.advance() // '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	if s.peek() == '%' {
		s.advance()
		s.addToken(PERCENT)
		return
	}

	if !isFloat && isDurationUnit(s.peek()) && !isAlphaNumeric(s.peekNext()) {
		s.advance()
		s.addToken(DURATION)
		return
	}

	if isFloat {
		s.addToken(FLOAT)
	} else {
		s.addToken(INT)
	}
}

func isDurationUnit(c byte) bool {
	return c == 'd' || c == 'm' || c == 'y'
}

// dateAhead reports whether the input at the current cursor continues a
// day-month-year date: "-<digits>-<digits>". It only looks ahead; nothing
// is consumed, so a plain subtraction like "15-x" falls through to MINUS.
func (s *Scanner) dateAhead() bool {
	i := s.current
	if i >= len(s.source) || s.source[i] != '-' {
		return false
	}
	i++
	j := i
	for j < len(s.source) && isDigit(s.source[j]) {
		j++
	}
	if j == i || j >= len(s.source) || s.source[j] != '-' {
		return false
	}
	j++
	k := j
	for k < len(s.source) && isDigit(s.source[k]) {
		k++
	}
	return k > j
}

func (s *Scanner) scanDateRemainder() {
	s.advance() // first '-'
	for isDigit(s.peek()) {
		s.advance()
	}
	s.advance() // second '-'
	for isDigit(s.peek()) {
		s.advance()
	}
	s.addToken(DATE)
}

// scanMoney scans a currency-sigil literal like $100.50. The fractional
// part must be exactly two digits so amounts stay exact in cents.
func (s *Scanner) scanMoney() {
	if !isDigit(s.peek()) {
		s.reportError("Expected digits after '$' in money literal")
		return
	}
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() != '.' {
		s.reportError("Money literal requires exactly two fractional digits (e.g. $100.50)")
		return
	}
	s.advance() // '.'
	fracStart := s.current
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.current-fracStart != 2 {
		s.reportError("Money literal requires exactly two fractional digits (e.g. $100.50)")
		return
	}
	s.addToken(MONEY)
}

func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.isAtEnd() {
		s.advance()
	}
	if s.isAtEnd() {
		s.reportError("Unterminated string.")
		return
	}
	s.advance()
	value := s.source[s.start+1 : s.current-1]
	s.tokens = append(s.tokens, Token{Type: STRING, Lexeme: value, Position: Position{
		Line: s.line, Column: s.startColumn, Offset: s.start},
	})
}

// Comments never reach the token stream.

func (s *Scanner) skipLineComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}

func (s *Scanner) skipBlockComment() {
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance() // *
			s.advance() // /
			return
		}
		s.advance()
	}
	s.reportError("Unterminated block comment.")
}
