package db

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

type BoundKind int

const (
	Unbounded BoundKind = iota
	Included
	Excluded
)

type Bound struct {
	Kind  BoundKind
	Value int32
}

func IncludedBound(v int32) Bound { return Bound{Kind: Included, Value: v} }
func ExcludedBound(v int32) Bound { return Bound{Kind: Excluded, Value: v} }

// BlockRange is the range of blocks for which a versioned row is valid. It is written in the
// postgres range syntax, e.g. `[100,)`.
type BlockRange struct {
	Lower Bound
	Upper Bound
	Empty bool
}

// UnversionedRange is put on rows that are not versioned by block
var UnversionedRange = BlockRange{}

// BlockRangeFrom returns the range `[block,)`
func BlockRangeFrom(block int32) BlockRange {
	return BlockRange{Lower: IncludedBound(block)}
}

// FirstBlock returns the first block in the range, false if the lower bound is unbounded
func (r BlockRange) FirstBlock() (int32, bool) {
	if r.Empty {
		return 0, false
	}
	switch r.Lower.Kind {
	case Included:
		return r.Lower.Value, true
	case Excluded:
		return r.Lower.Value + 1, true
	default:
		return 0, false
	}
}

func (r BlockRange) String() string {
	if r.Empty {
		return "empty"
	}
	var sb strings.Builder
	if r.Lower.Kind == Included {
		sb.WriteByte('[')
	} else {
		sb.WriteByte('(')
	}
	if r.Lower.Kind != Unbounded {
		sb.WriteString(strconv.FormatInt(int64(r.Lower.Value), 10))
	}
	sb.WriteByte(',')
	if r.Upper.Kind != Unbounded {
		sb.WriteString(strconv.FormatInt(int64(r.Upper.Value), 10))
	}
	if r.Upper.Kind == Included {
		sb.WriteByte(']')
	} else {
		sb.WriteByte(')')
	}
	return sb.String()
}

func ParseBlockRange(s string) (BlockRange, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "empty") {
		return BlockRange{Empty: true}, nil
	}
	if len(s) < 3 {
		return BlockRange{}, fmt.Errorf("invalid block range `%s`", s)
	}
	open, closing := s[0], s[len(s)-1]
	if (open != '[' && open != '(') || (closing != ']' && closing != ')') {
		return BlockRange{}, fmt.Errorf("invalid block range `%s`", s)
	}
	lower, upper, found := strings.Cut(s[1:len(s)-1], ",")
	if !found {
		return BlockRange{}, fmt.Errorf("invalid block range `%s`", s)
	}
	var (
		r   BlockRange
		err error
	)
	if r.Lower, err = parseBound(lower, open == '['); err != nil {
		return BlockRange{}, fmt.Errorf("invalid lower bound in `%s`: %w", s, err)
	}
	if r.Upper, err = parseBound(upper, closing == ']'); err != nil {
		return BlockRange{}, fmt.Errorf("invalid upper bound in `%s`: %w", s, err)
	}
	return r, nil
}

func parseBound(s string, inclusive bool) (Bound, error) {
	s = strings.Trim(strings.TrimSpace(s), `"`)
	if s == "" {
		return Bound{Kind: Unbounded}, nil
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return Bound{}, err
	}
	if inclusive {
		return IncludedBound(int32(v)), nil
	}
	return ExcludedBound(int32(v)), nil
}

func (r *BlockRange) Scan(value interface{}) error {
	var (
		parsed BlockRange
		err    error
	)
	switch v := value.(type) {
	case nil:
		*r = UnversionedRange
		return nil
	case []byte:
		parsed, err = ParseBlockRange(string(v))
	case string:
		parsed, err = ParseBlockRange(v)
	default:
		return fmt.Errorf("unsupported type %T for block range column", value)
	}
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r BlockRange) Value() (driver.Value, error) {
	return r.String(), nil
}

func (BlockRange) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == DialectPostgres {
		return "int4range"
	}
	return "varchar(64)"
}
