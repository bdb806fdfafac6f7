package db

// DeploymentDetail is the raw row of a deployment, as written by the indexing pipeline
type DeploymentDetail struct {
	ID                             int32       `gorm:"primaryKey;autoIncrement:false"`
	Deployment                     string      `gorm:"NOT NULL;uniqueIndex:idx_subgraph_deployment_deployment;size:64"`
	Failed                         bool        `gorm:"NOT NULL"`
	Health                         Health      `gorm:"NOT NULL;size:16"`
	Synced                         bool        `gorm:"NOT NULL"`
	FatalError                     *string     `gorm:"size:128"`
	NonFatalErrors                 StringArray `gorm:"NOT NULL"`
	EarliestEthereumBlockHash      []byte
	EarliestEthereumBlockNumber    *Decimal
	LatestEthereumBlockHash        []byte
	LatestEthereumBlockNumber      *Decimal
	LastHealthyEthereumBlockHash   []byte
	LastHealthyEthereumBlockNumber *Decimal
	EntityCount                    Decimal `gorm:"NOT NULL"`
	GraftBase                      *string `gorm:"size:64"`
	GraftBlockHash                 []byte
	GraftBlockNumber               *Decimal
	ReorgCount                     int32 `gorm:"NOT NULL"`
	CurrentReorgDepth              int32 `gorm:"NOT NULL"`
	MaxReorgDepth                  int32 `gorm:"NOT NULL"`
}

func (*DeploymentDetail) TableName() string {
	return "subgraph_deployment"
}

// DeploymentDetailColumns lists every column DeploymentDetail is loaded from
var DeploymentDetailColumns = []string{
	"id",
	"deployment",
	"failed",
	"health",
	"synced",
	"fatal_error",
	"non_fatal_errors",
	"earliest_ethereum_block_hash",
	"earliest_ethereum_block_number",
	"latest_ethereum_block_hash",
	"latest_ethereum_block_number",
	"last_healthy_ethereum_block_hash",
	"last_healthy_ethereum_block_number",
	"entity_count",
	"graft_base",
	"graft_block_hash",
	"graft_block_number",
	"reorg_count",
	"current_reorg_depth",
	"max_reorg_depth",
}

// DeploymentAndError is a deployment row left-joined with the row of its fatal error
type DeploymentAndError struct {
	DeploymentDetail
	HasFatalError bool        `gorm:"column:has_fatal_error"`
	FatalErrorRow ErrorDetail `gorm:"embedded;embeddedPrefix:error_"`
}

// FatalErrorDetail returns the fatal error row, nil if the deployment has none or it could not be found
func (r *DeploymentAndError) FatalErrorDetail() *ErrorDetail {
	if !r.HasFatalError {
		return nil
	}
	return &r.FatalErrorRow
}
