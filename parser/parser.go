package parser

import (
	"strconv"
	"strings"
)

// Parser turns normalized source lines into a stream of Command values
// (spec.md §4.2). It holds no state across calls to Parse beyond its
// input; all cross-file and cross-command state lives in the CodeGen's
// TranslationUnitState.
type Parser struct {
	filename string
}

// New creates a Parser for a single file's worth of already-normalized
// lines.
func New(filename string) *Parser {
	return &Parser{filename: filename}
}

// Parse classifies and validates every line, returning the full Command
// stream or the first ParserError encountered. Parsing halts on first
// error (spec.md §4.2 "Parsing halts on first error").
func (p *Parser) Parse(lines []Line) ([]Command, error) {
	if len(lines) == 0 {
		return nil, NewError(EmptyInput, "", Position{Filename: p.filename})
	}

	commands := make([]Command, 0, len(lines))
	for _, line := range lines {
		cmd, err := p.parseLine(line)
		if err != nil {
			return nil, err
		}
		commands = append(commands, cmd)
	}
	return commands, nil
}

// parseLine classifies a single normalized line by its token count
// (spec.md §4.2 "Classification table by token count").
func (p *Parser) parseLine(line Line) (Command, error) {
	tokens := strings.Fields(line.Text)

	switch len(tokens) {
	case 1:
		return p.parseOneToken(tokens[0], line)
	case 2:
		return p.parseTwoTokens(tokens[0], tokens[1], line)
	case 3:
		return p.parseThreeTokens(tokens[0], tokens[1], tokens[2], line)
	default:
		return Command{}, NewError(UnrecognizedCommand, line.Text, line.Pos)
	}
}

func (p *Parser) parseOneToken(tok string, line Line) (Command, error) {
	if tok == "return" {
		return Command{Kind: Return, Pos: line.Pos, Raw: line.Text}, nil
	}
	if arithmeticOps[tok] {
		return Command{Kind: Arithmetic, Op: tok, Pos: line.Pos, Raw: line.Text}, nil
	}
	return Command{}, NewError(UnrecognizedCommand, line.Text, line.Pos)
}

func (p *Parser) parseTwoTokens(first, second string, line Line) (Command, error) {
	var kind Kind
	switch first {
	case "label":
		kind = Label
	case "goto":
		kind = Goto
	case "if-goto":
		kind = IfGoto
	default:
		return Command{}, NewError(UnrecognizedCommand, line.Text, line.Pos)
	}
	return Command{Kind: kind, Name: second, Pos: line.Pos, Raw: line.Text}, nil
}

func (p *Parser) parseThreeTokens(first, second, third string, line Line) (Command, error) {
	switch first {
	case "push", "pop":
		return p.parsePushPop(first, second, third, line)
	case "function", "call":
		return p.parseFunctionCall(first, second, third, line)
	default:
		return Command{}, NewError(UnrecognizedCommand, line.Text, line.Pos)
	}
}

func (p *Parser) parsePushPop(first, segTok, offTok string, line Line) (Command, error) {
	seg, ok := segmentNames[segTok]
	if !ok {
		return Command{}, NewError(UnrecognizedMemorySegment, segTok, line.Pos)
	}

	isPop := first == "pop"
	if isPop && seg == Constant {
		return Command{}, NewError(UnrecognizedMemorySegment, segTok, line.Pos)
	}

	offset, err := parseNonNegativeInt(offTok)
	if err != nil {
		return Command{}, NewError(IllegalOffset, offTok, line.Pos)
	}

	kind := Push
	if isPop {
		kind = Pop
	}
	return Command{Kind: kind, Segment: seg, Offset: offset, Pos: line.Pos, Raw: line.Text}, nil
}

func (p *Parser) parseFunctionCall(first, name, countTok string, line Line) (Command, error) {
	count, err := parseNonNegativeInt(countTok)
	if err != nil {
		return Command{}, NewError(IllegalOffset, countTok, line.Pos)
	}

	kind := Function
	if first == "call" {
		kind = Call
	}
	return Command{Kind: kind, Name: name, Offset: count, Pos: line.Pos, Raw: line.Text}, nil
}

// parseNonNegativeInt accepts a non-negative decimal integer with no sign
// and no base prefix, e.g. "07" is 7. A leading "-" is rejected, matching
// spec.md §6 and the IllegalOffset boundary behavior in §8.
func parseNonNegativeInt(tok string) (uint, error) {
	if tok == "" || strings.HasPrefix(tok, "-") || strings.HasPrefix(tok, "+") {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
