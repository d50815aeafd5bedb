package lang

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/novarc-lang/novarc/log"
)

// ParseReader parses an expression from an io.Reader.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (Expr, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return ParseString(ctx, string(data), opts...)
}

// ParseString parses an expression from a string. The entire input must be
// consumed; trailing content is a syntax error anchored at the first
// unconsumed byte. On failure the returned error is a [*ParseError] carrying
// one or more [SyntaxError] values with source spans.
func ParseString(ctx context.Context, s string, opts ...Option) (Expr, error) {
	cfg := makeOptions(opts...)

	p := &parser{
		input:  []byte(s),
		pos:    0,
		logger: cfg.logger,
	}

	expr, serr := p.parseDecl()
	if serr == nil {
		p.skipWhitespace()

		if !p.eof() {
			serr = &SyntaxError{
				Msg:  "unexpected trailing input",
				Span: Span{Start: p.pos, End: len(p.input)},
			}
		}
	}

	if serr != nil {
		p.logger.TraceContext(ctx, "parse failed",
			slog.Any("error", serr))

		return nil, NewParseError([]*SyntaxError{serr}, s)
	}

	p.logger.TraceContext(ctx, "parse complete",
		slog.Int("source_length", len(s)))

	return expr, nil
}

// parser holds the parser state.
type parser struct {
	input  []byte
	pos    int
	logger log.Logger
}

// parseDecl parses the top-level declaration grammar: a chain of let/fn
// declarations terminated by a bare expression. Declarations are
// right-recursive, so each declaration's trailing expression is the
// remainder of the chain.
func (p *parser) parseDecl() (Expr, *SyntaxError) {
	p.skipWhitespace()

	switch {
	case p.keyword("let"):
		return p.parseLet()

	case p.keyword("fn"):
		return p.parseFn()

	default:
		return p.parseSum()
	}
}

// parseLet parses: "let" IDENT "=" expr ";" decl.
// The "let" keyword has already been consumed.
func (p *parser) parseLet() (Expr, *SyntaxError) {
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}

	p.skipWhitespace()

	if !p.expect('=') {
		return nil, p.errorHere("expected '=' after let binding name")
	}

	rhs, err := p.parseSum()
	if err != nil {
		return nil, err
	}

	p.skipWhitespace()

	if !p.expect(';') {
		return nil, p.errorHere("expected ';' after let binding value")
	}

	then, err := p.parseDecl()
	if err != nil {
		return nil, err
	}

	return &Let{Name: name, RHS: rhs, Then: then}, nil
}

// parseFn parses: "fn" IDENT IDENT* "=" expr ";" decl.
// The "fn" keyword has already been consumed.
func (p *parser) parseFn() (Expr, *SyntaxError) {
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}

	// Zero or more parameter names up to '='.
	params := make([]string, 0)

	for {
		p.skipWhitespace()

		if !isIdentStart(p.peek()) {
			break
		}

		param, err := p.parseIdent()
		if err != nil {
			return nil, err
		}

		params = append(params, param)
	}

	p.skipWhitespace()

	if !p.expect('=') {
		return nil, p.errorHere("expected '=' after function parameters")
	}

	body, err := p.parseSum()
	if err != nil {
		return nil, err
	}

	p.skipWhitespace()

	if !p.expect(';') {
		return nil, p.errorHere("expected ';' after function body")
	}

	then, err := p.parseDecl()
	if err != nil {
		return nil, err
	}

	return &Fn{Name: name, Params: params, Body: body, Then: then}, nil
}

// parseSum parses a left-associative chain of '+'/'-' over product terms.
func (p *parser) parseSum() (Expr, *SyntaxError) {
	lhs, err := p.parseProduct()
	if err != nil {
		return nil, err
	}

	for {
		p.skipWhitespace()

		switch p.peek() {
		case '+':
			p.advance()

			rhs, err := p.parseProduct()
			if err != nil {
				return nil, err
			}

			lhs = &Add{Left: lhs, Right: rhs}

		case '-':
			p.advance()

			rhs, err := p.parseProduct()
			if err != nil {
				return nil, err
			}

			lhs = &Sub{Left: lhs, Right: rhs}

		default:
			return lhs, nil
		}
	}
}

// parseProduct parses a left-associative chain of '*'/'/' over unary terms.
func (p *parser) parseProduct() (Expr, *SyntaxError) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		p.skipWhitespace()

		switch p.peek() {
		case '*':
			p.advance()

			rhs, err := p.parseUnary()
			if err != nil {
				return nil, err
			}

			lhs = &Mul{Left: lhs, Right: rhs}

		case '/':
			p.advance()

			rhs, err := p.parseUnary()
			if err != nil {
				return nil, err
			}

			lhs = &Div{Left: lhs, Right: rhs}

		default:
			return lhs, nil
		}
	}
}

// parseUnary parses zero or more prefix '-' applied to an atom. Each
// additional '-' wraps the previous result in another Neg node.
func (p *parser) parseUnary() (Expr, *SyntaxError) {
	count := 0

	for {
		p.skipWhitespace()

		if p.peek() != '-' {
			break
		}

		p.advance()

		count++
	}

	expr, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	for range count {
		expr = &Neg{Operand: expr}
	}

	return expr, nil
}

// parseAtom parses an integer literal, a parenthesized expression, a
// function call, or a bare variable reference.
func (p *parser) parseAtom() (Expr, *SyntaxError) {
	p.skipWhitespace()

	start := p.pos

	switch {
	case isDigit(p.peek()):
		return p.parseNumber()

	case p.peek() == '(':
		p.advance()

		expr, err := p.parseSum()
		if err != nil {
			return nil, err
		}

		p.skipWhitespace()

		if !p.expect(')') {
			end := p.pos
			if p.eof() {
				end = len(p.input)
			}

			return nil, &SyntaxError{
				Msg:  "unclosed parenthesis",
				Span: Span{Start: start, End: max(end, start+1)},
			}
		}

		return expr, nil

	case isIdentStart(p.peek()):
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}

		p.skipWhitespace()

		if p.peek() == '(' {
			return p.parseCall(name, start)
		}

		return &Var{Name: name}, nil

	default:
		return nil, p.errorHere("expected expression")
	}
}

// parseCall parses the argument list of a call: '(' (expr (',' expr)* ','?)?
// ')'. A trailing comma before the closing parenthesis is permitted. The
// opening parenthesis has not yet been consumed.
func (p *parser) parseCall(name string, start int) (Expr, *SyntaxError) {
	p.advance() // consume '('

	args := make([]Expr, 0)

	p.skipWhitespace()

	if p.expect(')') {
		return &Call{Name: name, Args: args}, nil
	}

	for {
		arg, err := p.parseSum()
		if err != nil {
			return nil, err
		}

		args = append(args, arg)

		p.skipWhitespace()

		switch p.peek() {
		case ',':
			p.advance()
			p.skipWhitespace()

			// Trailing comma.
			if p.expect(')') {
				return &Call{Name: name, Args: args}, nil
			}

		case ')':
			p.advance()

			return &Call{Name: name, Args: args}, nil

		default:
			end := p.pos
			if p.eof() {
				end = len(p.input)
			}

			return nil, &SyntaxError{
				Msg:  "expected ',' or ')' in argument list",
				Span: Span{Start: start, End: max(end, start+1)},
			}
		}
	}
}

// parseNumber parses an integer literal: a sequence of decimal digits,
// converted to a float64.
func (p *parser) parseNumber() (Expr, *SyntaxError) {
	start := p.pos

	for !p.eof() && isDigit(p.peek()) {
		p.advance()
	}

	text := string(p.input[start:p.pos])

	// Digit sequences too large for float64 saturate to +Inf rather than
	// failing the parse.
	value, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, &SyntaxError{
			Msg:  "malformed numeric literal",
			Span: Span{Start: start, End: p.pos},
		}
	}

	return &Num{Value: value}, nil
}

// parseIdent parses an identifier token. The reserved keywords "let" and
// "fn" are rejected as identifiers.
func (p *parser) parseIdent() (string, *SyntaxError) {
	p.skipWhitespace()

	start := p.pos

	if !isIdentStart(p.peek()) {
		return "", p.errorHere("expected identifier")
	}

	p.advance()

	for !p.eof() && isIdentContinue(p.peek()) {
		p.advance()
	}

	name := string(p.input[start:p.pos])

	if isKeyword(name) {
		return "", &SyntaxError{
			Msg:  "reserved keyword `" + name + "` cannot be used as an identifier",
			Span: Span{Start: start, End: p.pos},
		}
	}

	return name, nil
}

// keyword consumes the given keyword if it appears at the cursor as a whole
// word, reporting whether it did.
func (p *parser) keyword(kw string) bool {
	end := p.pos + len(kw)
	if end > len(p.input) || string(p.input[p.pos:end]) != kw {
		return false
	}

	// Must not continue as an identifier (e.g. "letter", "fnord").
	if end < len(p.input) {
		r, _ := utf8.DecodeRune(p.input[end:])
		if isIdentContinue(r) {
			return false
		}
	}

	p.pos = end

	return true
}

// Helper methods

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}

	r, _ := utf8.DecodeRune(p.input[p.pos:])

	return r
}

func (p *parser) advance() {
	if p.eof() {
		return
	}

	_, size := utf8.DecodeRune(p.input[p.pos:])
	p.pos += size
}

func (p *parser) expect(ch rune) bool {
	if p.peek() == ch {
		p.advance()

		return true
	}

	return false
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) skipWhitespace() {
	for !p.eof() && unicode.IsSpace(p.peek()) {
		p.advance()
	}
}

// errorHere creates a SyntaxError spanning the rune at the cursor, or the
// end of input when nothing remains.
func (p *parser) errorHere(msg string) *SyntaxError {
	end := p.pos + 1
	if p.eof() {
		end = len(p.input)
	}

	return &SyntaxError{
		Msg:  msg,
		Span: Span{Start: p.pos, End: max(end, p.pos)},
	}
}

// Character classification

func isKeyword(s string) bool {
	return s == "let" || s == "fn"
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
