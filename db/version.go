package db

// BuildVersion identifies a build of the binary. A row is unique on all of its fields but ID.
type BuildVersion struct {
	ID                 int32  `gorm:"primaryKey;autoIncrement"`
	GitCommitHash      string `gorm:"NOT NULL;size:64;uniqueIndex:idx_build_version_fingerprint"`
	GitRepositoryDirty bool   `gorm:"NOT NULL;uniqueIndex:idx_build_version_fingerprint"`
	PackageVersion     string `gorm:"NOT NULL;size:64;uniqueIndex:idx_build_version_fingerprint"`
	Major              int32  `gorm:"NOT NULL;uniqueIndex:idx_build_version_fingerprint"`
	Minor              int32  `gorm:"NOT NULL;uniqueIndex:idx_build_version_fingerprint"`
	Patch              int32  `gorm:"NOT NULL;uniqueIndex:idx_build_version_fingerprint"`
	PreRelease         string `gorm:"NOT NULL;size:64;uniqueIndex:idx_build_version_fingerprint"`
	CompilerVersion    string `gorm:"NOT NULL;size:64;uniqueIndex:idx_build_version_fingerprint"`
	CompilerHost       string `gorm:"NOT NULL;size:64;uniqueIndex:idx_build_version_fingerprint"`
	CompilerChannel    string `gorm:"NOT NULL;size:32;uniqueIndex:idx_build_version_fingerprint"`
}

func (*BuildVersion) TableName() string {
	return "build_version"
}

// BuildVersionFingerprintColumns are the columns of the unique index on build_version
var BuildVersionFingerprintColumns = []string{
	"git_commit_hash",
	"git_repository_dirty",
	"package_version",
	"major",
	"minor",
	"patch",
	"pre_release",
	"compiler_version",
	"compiler_host",
	"compiler_channel",
}

func (v *BuildVersion) fingerprint() []interface{} {
	return []interface{}{
		v.GitCommitHash,
		v.GitRepositoryDirty,
		v.PackageVersion,
		v.Major,
		v.Minor,
		v.Patch,
		v.PreRelease,
		v.CompilerVersion,
		v.CompilerHost,
		v.CompilerChannel,
	}
}
