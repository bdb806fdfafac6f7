package db

// ErrorDetail is the raw row of an error recorded for a deployment
type ErrorDetail struct {
	Vid           int64      `gorm:"primaryKey;autoIncrement"`
	ID            string     `gorm:"column:id;NOT NULL;uniqueIndex:idx_subgraph_error_id;size:128"`
	SubgraphID    string     `gorm:"NOT NULL;index:idx_subgraph_error_subgraph_id;size:64"`
	Message       string     `gorm:"NOT NULL;type:text"`
	BlockHash     []byte
	Handler       *string
	Deterministic bool       `gorm:"NOT NULL"`
	BlockRange    BlockRange `gorm:"NOT NULL"`
}

func (*ErrorDetail) TableName() string {
	return "subgraph_error"
}

// ErrorDetailColumns lists every column ErrorDetail is loaded from
var ErrorDetailColumns = []string{
	"vid",
	"id",
	"subgraph_id",
	"message",
	"block_hash",
	"handler",
	"deterministic",
	"block_range",
}
