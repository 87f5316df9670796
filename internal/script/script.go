// Package script replays short textual insert/remove/member scripts against a set.
//
// A script is a list of tokens:
//
//	+x  insert x
//	-x  remove x
//	?x  ask whether x is a member
//	#   ask for the size
package script

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/denismitr/collections/set"
)

var ErrBadToken = errors.New("bad token")

type Kind uint8

const (
	InsertOp Kind = iota
	RemoveOp
	MemberOp
	SizeOp
)

type (
	Op struct {
		Kind Kind
		Item string
	}

	// Answer is the result of a query op, Member is set for MemberOp and Size for SizeOp
	Answer struct {
		Op     Op
		Member bool
		Size   int
	}

	Report struct {
		Answers []Answer
		Len     int
		Items   []string
	}
)

func (o Op) String() string {
	switch o.Kind {
	case InsertOp:
		return "+" + o.Item
	case RemoveOp:
		return "-" + o.Item
	case MemberOp:
		return "?" + o.Item
	default:
		return "#"
	}
}

func Parse(tokens []string) ([]Op, error) {
	ops := make([]Op, 0, len(tokens))
	for i, tok := range tokens {
		op, err := parseToken(tok)
		if err != nil {
			return nil, errors.Wrapf(err, "token %d %q", i, tok)
		}
		ops = append(ops, op)
	}

	return ops, nil
}

func parseToken(tok string) (Op, error) {
	if tok == "#" {
		return Op{Kind: SizeOp}, nil
	}

	if len(tok) < 2 {
		return Op{}, ErrBadToken
	}

	item := tok[1:]
	switch tok[0] {
	case '+':
		return Op{Kind: InsertOp, Item: item}, nil
	case '-':
		return Op{Kind: RemoveOp, Item: item}, nil
	case '?':
		return Op{Kind: MemberOp, Item: item}, nil
	}

	return Op{}, ErrBadToken
}

// Run applies ops to s in order and collects the answers to queries
func Run(s set.Set[string], ops []Op, logger zerolog.Logger) Report {
	var report Report
	for _, op := range ops {
		switch op.Kind {
		case InsertOp:
			modified := s.Insert(op.Item)
			logger.Debug().Stringer("op", op).Bool("modified", modified).Int("len", s.Len()).Msg("apply")
		case RemoveOp:
			removed := s.Remove(op.Item)
			logger.Debug().Stringer("op", op).Bool("modified", removed).Int("len", s.Len()).Msg("apply")
		case MemberOp:
			member := s.Has(op.Item)
			logger.Debug().Stringer("op", op).Bool("member", member).Msg("query")
			report.Answers = append(report.Answers, Answer{Op: op, Member: member})
		case SizeOp:
			size := s.Len()
			logger.Debug().Stringer("op", op).Int("size", size).Msg("query")
			report.Answers = append(report.Answers, Answer{Op: op, Size: size})
		}
	}

	report.Len = s.Len()
	report.Items = s.Items()

	return report
}
