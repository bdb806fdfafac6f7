package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/bnb-chain/subgraph-store/util"
)

const (
	DialectMysql    = "mysql"
	DialectSqlite   = "sqlite"
	DialectPostgres = "postgres"
)

type Health string

const (
	Healthy   Health = "healthy"
	Unhealthy Health = "unhealthy"
	Failed    Health = "failed"
)

// Decimal is the text of an arbitrary precision decimal column
type Decimal string

func NewDecimal(u uint64) *Decimal {
	d := Decimal(util.Uint64ToString(u))
	return &d
}

func (d *Decimal) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = ""
	case []byte:
		*d = Decimal(v)
	case string:
		*d = Decimal(v)
	case int64:
		*d = Decimal(strconv.FormatInt(v, 10))
	case float64:
		*d = Decimal(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return fmt.Errorf("unsupported type %T for decimal column", value)
	}
	return nil
}

func (d Decimal) Value() (driver.Value, error) {
	return string(d), nil
}

func (d Decimal) String() string {
	return string(d)
}

// GormDBDataType keeps decimals as text on sqlite, its NUMERIC affinity would turn values above
// math.MaxInt64 into floats.
func (Decimal) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	switch db.Dialector.Name() {
	case DialectPostgres:
		return "numeric"
	case DialectMysql:
		return "decimal(65,0)"
	default:
		return "text"
	}
}

// StringArray is stored as a JSON array
type StringArray []string

func (a *StringArray) Scan(value interface{}) error {
	var bz []byte
	switch v := value.(type) {
	case nil:
		*a = StringArray{}
		return nil
	case []byte:
		bz = v
	case string:
		bz = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for string array column", value)
	}
	if len(bz) == 0 {
		*a = StringArray{}
		return nil
	}
	return json.Unmarshal(bz, (*[]string)(a))
}

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	bz, err := json.Marshal([]string(a))
	if err != nil {
		return nil, err
	}
	return string(bz), nil
}

func (StringArray) GormDataType() string {
	return "text"
}
