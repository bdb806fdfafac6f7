package store

import (
	"context"

	"github.com/pkg/errors"

	"github.com/bnb-chain/subgraph-store/db"
	"github.com/bnb-chain/subgraph-store/logging"
	"github.com/bnb-chain/subgraph-store/metrics"
	"github.com/bnb-chain/subgraph-store/version"
)

// Registrar records the build of the running binary in the build_version table
type Registrar struct {
	dao    db.BuildVersionDB
	detect func() (*version.Build, error)
}

func NewRegistrar(dao db.BuildVersionDB) *Registrar {
	return &Registrar{
		dao:    dao,
		detect: version.Current,
	}
}

// Register detects the current build and returns the id of its build_version row, creating the row
// if needed. Processes started from the same build get the same id, also when they race.
func (r *Registrar) Register(ctx context.Context) (int32, error) {
	build, err := r.detect()
	if err != nil {
		return 0, errors.Wrap(err, "failed to detect build version")
	}
	id, err := CreateOrGetBuildVersion(ctx, r.dao, build)
	if err != nil {
		return 0, err
	}
	metrics.BuildVersionGauge.Set(float64(id))
	logging.Logger.Infof("registered build version, id=%d, build=%s", id, build.String())
	return id, nil
}

func CreateOrGetBuildVersion(ctx context.Context, dao db.BuildVersionDB, build *version.Build) (int32, error) {
	id, err := dao.CreateOrGetBuildVersion(ctx, &db.BuildVersion{
		GitCommitHash:      build.GitCommitHash,
		GitRepositoryDirty: build.GitRepositoryDirty,
		PackageVersion:     build.PackageVersion,
		Major:              build.Major,
		Minor:              build.Minor,
		Patch:              build.Patch,
		PreRelease:         build.PreRelease,
		CompilerVersion:    build.CompilerVersion,
		CompilerHost:       build.CompilerHost,
		CompilerChannel:    build.CompilerChannel,
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to save build version")
	}
	return id, nil
}
