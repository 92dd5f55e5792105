package repl

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/Creamy-pie-96/Pythonic-sub004/pkg/arith"
	"github.com/Creamy-pie-96/Pythonic-sub004/pkg/fast"
	"github.com/Creamy-pie-96/Pythonic-sub004/pkg/object"
)

// Session evaluates calculator lines. One cache per operation lives for
// the whole session, so typing the same kind of expression repeatedly
// exercises the monomorphic fast path.
type Session struct {
	caches map[arith.Op]*fast.CachedBinOp
}

func NewSession() *Session {
	return &Session{
		caches: map[arith.Op]*fast.CachedBinOp{
			arith.OpAdd: fast.NewCachedAdd(),
			arith.OpSub: fast.NewCachedSub(),
			arith.OpMul: fast.NewCachedMul(),
			arith.OpDiv: fast.NewCachedDiv(),
			arith.OpMod: fast.NewCachedMod(),
		},
	}
}

// Reset empties every operation cache.
func (s *Session) Reset() {
	for _, c := range s.caches {
		c.Reset()
	}
}

// Stats reports, per operation, whether a fast path is cached.
func (s *Session) Stats() string {
	var b strings.Builder
	for _, op := range []arith.Op{arith.OpAdd, arith.OpSub, arith.OpMul, arith.OpDiv, arith.OpMod} {
		fmt.Fprintf(&b, "%s fast path: %t\n", op, s.caches[op].HasFastPath())
	}
	return b.String()
}

// Eval evaluates one line: a reduction command (sum, product, dot) or a
// left-associative chain of literals and operators.
func (s *Session) Eval(line string) (object.Object, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	if word, rest, found := strings.Cut(line, " "); found || isReduction(word) {
		switch word {
		case "sum", "product":
			items, err := parseLiterals(rest)
			if err != nil {
				return nil, err
			}
			if word == "sum" {
				return fast.FastSum(items, nil)
			}
			return fast.FastProduct(items, nil)
		case "dot":
			items, err := parseLiterals(rest)
			if err != nil {
				return nil, err
			}
			if len(items) != 2 {
				return nil, fmt.Errorf("dot takes two lists, got %d operands", len(items))
			}
			return fast.FastDot(items[0], items[1])
		}
	}

	return s.evalChain(line)
}

func isReduction(word string) bool {
	return word == "sum" || word == "product" || word == "dot"
}

func (s *Session) evalChain(line string) (object.Object, error) {
	toks, err := scan(line)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, nil
	}
	if len(toks)%2 == 0 {
		return nil, fmt.Errorf("expected literal (operator literal)..., got %d tokens", len(toks))
	}

	result, err := parseLiteral(toks[0])
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(toks); i += 2 {
		op, ok := opFor(toks[i])
		if !ok {
			return nil, fmt.Errorf("expected operator, got %q", toks[i])
		}
		rhs, err := parseLiteral(toks[i+1])
		if err != nil {
			return nil, err
		}
		result, err = s.caches[op].Call(result, rhs)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func opFor(tok string) (arith.Op, bool) {
	switch tok {
	case "+":
		return arith.OpAdd, true
	case "-":
		return arith.OpSub, true
	case "*":
		return arith.OpMul, true
	case "/":
		return arith.OpDiv, true
	case "%":
		return arith.OpMod, true
	default:
		return 0, false
	}
}

func isOpRune(c rune) bool {
	return c == '+' || c == '-' || c == '*' || c == '/' || c == '%'
}

// scan splits a line into literal and operator tokens. List and string
// literals stay whole; a '-' starting a value position binds to the
// literal rather than becoming an operator.
func scan(line string) ([]string, error) {
	var toks []string
	rs := []rune(line)
	n := len(rs)

	expectValue := func() bool {
		if len(toks) == 0 {
			return true
		}
		_, isOp := opFor(toks[len(toks)-1])
		return isOp
	}

	for i := 0; i < n; {
		c := rs[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '[':
			depth := 0
			j := i
			for ; j < n; j++ {
				if rs[j] == '[' {
					depth++
				} else if rs[j] == ']' {
					depth--
					if depth == 0 {
						break
					}
				}
			}
			if j == n {
				return nil, fmt.Errorf("unterminated list literal")
			}
			toks = append(toks, string(rs[i:j+1]))
			i = j + 1
		case c == '"':
			j := i + 1
			for ; j < n && rs[j] != '"'; j++ {
			}
			if j == n {
				return nil, fmt.Errorf("unterminated string literal")
			}
			toks = append(toks, string(rs[i:j+1]))
			i = j + 1
		case isOpRune(c) && !(c == '-' && expectValue()):
			toks = append(toks, string(c))
			i++
		default:
			start := i
			i++
			for i < n && !unicode.IsSpace(rs[i]) && !isOpRune(rs[i]) && rs[i] != '[' && rs[i] != '"' {
				i++
			}
			toks = append(toks, string(rs[start:i]))
		}
	}
	return toks, nil
}

// parseLiterals scans rest and requires every token to be a literal.
func parseLiterals(rest string) ([]object.Object, error) {
	toks, err := scan(rest)
	if err != nil {
		return nil, err
	}
	items := make([]object.Object, 0, len(toks))
	for _, tok := range toks {
		item, err := parseLiteral(tok)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// parseLiteral maps a token onto the value zoo: plain integers become
// Integer or Int64 by size, a 'u' suffix selects the unsigned kinds,
// an 'l' suffix forces Int64, an 'f' suffix selects Float, decimals
// default to Double.
func parseLiteral(tok string) (object.Object, error) {
	switch {
	case tok == "true":
		return &object.Boolean{Value: true}, nil
	case tok == "false":
		return &object.Boolean{Value: false}, nil
	case strings.HasPrefix(tok, "\""):
		s, err := strconv.Unquote(tok)
		if err != nil {
			return nil, fmt.Errorf("bad string literal %s", tok)
		}
		return &object.String{Value: s}, nil
	case strings.HasPrefix(tok, "["):
		return parseList(tok)
	}

	if v, found := strings.CutSuffix(tok, "u"); found {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad unsigned literal %q", tok)
		}
		if n <= math.MaxUint32 {
			return &object.Uint{Value: uint32(n)}, nil
		}
		return &object.Uint64{Value: n}, nil
	}
	if v, found := strings.CutSuffix(tok, "l"); found {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad int64 literal %q", tok)
		}
		return &object.Int64{Value: n}, nil
	}
	if v, found := strings.CutSuffix(tok, "f"); found {
		n, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return nil, fmt.Errorf("bad float literal %q", tok)
		}
		return &object.Float{Value: float32(n)}, nil
	}
	if strings.Contains(tok, ".") {
		n, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number literal %q", tok)
		}
		return &object.Double{Value: n}, nil
	}

	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad number literal %q", tok)
	}
	if n >= math.MinInt32 && n <= math.MaxInt32 {
		return &object.Integer{Value: int32(n)}, nil
	}
	return &object.Int64{Value: n}, nil
}

func parseList(tok string) (object.Object, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(tok, "["), "]")
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return object.NewList(nil), nil
	}
	parts := strings.Split(inner, ",")
	elements := make([]object.Object, 0, len(parts))
	for _, part := range parts {
		el, err := parseLiteral(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	return object.NewList(elements), nil
}
