package db

type StoredSubgraphManifest struct {
	ID             int32       `gorm:"primaryKey;autoIncrement:false"`
	SpecVersion    string      `gorm:"NOT NULL;size:32"`
	Description    *string     `gorm:"type:text"`
	Repository     *string     `gorm:"size:512"`
	Features       StringArray `gorm:"NOT NULL"`
	Schema         string      `gorm:"NOT NULL;type:text"`
	BuildVersionID *int32      `gorm:"index:idx_subgraph_manifest_build_version"`
}

func (*StoredSubgraphManifest) TableName() string {
	return "subgraph_manifest"
}

var StoredSubgraphManifestColumns = []string{
	"id",
	"spec_version",
	"description",
	"repository",
	"features",
	"schema",
	"build_version_id",
}
