package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bnb-chain/subgraph-store/db"
	"github.com/bnb-chain/subgraph-store/db/dbtest"
)

func strPtr(s string) *string { return &s }

func saveDeployment(t *testing.T, dao db.DetailDao, id int32, key string, fatalError *string) {
	t.Helper()
	err := dao.SaveDeploymentDetail(context.Background(), &db.DeploymentDetail{
		ID:                          id,
		Deployment:                  key,
		Health:                      db.Healthy,
		FatalError:                  fatalError,
		EarliestEthereumBlockHash:   dbtest.Hash(0xaa),
		EarliestEthereumBlockNumber: db.NewDecimal(100),
		EntityCount:                 "18446744073709551616",
	})
	require.NoError(t, err)
}

func TestGetDeploymentDetails(t *testing.T) {
	ctx := context.Background()
	dao := db.NewDetailSvcDB(dbtest.NewTestDB(t))
	saveDeployment(t, dao, 1, "sg1", nil)
	saveDeployment(t, dao, 2, "sg2", nil)

	all, err := dao.GetDeploymentDetails(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	some, err := dao.GetDeploymentDetails(ctx, []string{"sg2", "unknown"})
	require.NoError(t, err)
	require.Len(t, some, 1)
	assert.Equal(t, "sg2", some[0].Deployment)
	assert.Equal(t, dbtest.Hash(0xaa), some[0].EarliestEthereumBlockHash)
	require.NotNil(t, some[0].EarliestEthereumBlockNumber)
	assert.Equal(t, "100", some[0].EarliestEthereumBlockNumber.String())
	assert.Nil(t, some[0].LatestEthereumBlockNumber)
	assert.Nil(t, some[0].LatestEthereumBlockHash)
	// values beyond int64 must survive the round trip
	assert.Equal(t, db.Decimal("18446744073709551616"), some[0].EntityCount)
	assert.Equal(t, db.StringArray{}, some[0].NonFatalErrors)

	none, err := dao.GetDeploymentDetails(ctx, []string{"unknown"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetDeploymentsWithFatalError(t *testing.T) {
	ctx := context.Background()
	dao := db.NewDetailSvcDB(dbtest.NewTestDB(t))
	require.NoError(t, dao.SaveErrorDetail(ctx, &db.ErrorDetail{
		ID:            "err1",
		SubgraphID:    "sg1",
		Message:       "handler panicked",
		BlockHash:     dbtest.Hash(0xbb),
		Handler:       strPtr("handleTransfer"),
		Deterministic: true,
		BlockRange:    db.BlockRangeFrom(120),
	}))
	saveDeployment(t, dao, 1, "sg1", strPtr("err1"))
	saveDeployment(t, dao, 2, "sg2", nil)
	saveDeployment(t, dao, 3, "sg3", strPtr("dangling"))

	rows, err := dao.GetDeploymentsWithFatalError(ctx, nil)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byKey := make(map[string]*db.DeploymentAndError)
	for _, r := range rows {
		byKey[r.Deployment] = r
	}
	e := byKey["sg1"].FatalErrorDetail()
	require.NotNil(t, e)
	assert.Equal(t, "err1", e.ID)
	assert.Equal(t, "sg1", e.SubgraphID)
	assert.Equal(t, "handler panicked", e.Message)
	assert.Equal(t, dbtest.Hash(0xbb), e.BlockHash)
	require.NotNil(t, e.Handler)
	assert.Equal(t, "handleTransfer", *e.Handler)
	assert.True(t, e.Deterministic)
	first, ok := e.BlockRange.FirstBlock()
	require.True(t, ok)
	assert.Equal(t, int32(120), first)
	assert.Equal(t, int32(1), byKey["sg1"].ID)

	assert.Nil(t, byKey["sg2"].FatalErrorDetail())
	assert.Nil(t, byKey["sg3"].FatalErrorDetail())

	filtered, err := dao.GetDeploymentsWithFatalError(ctx, []string{"sg2"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "sg2", filtered[0].Deployment)
}

func TestGetDeploymentDetailNotFound(t *testing.T) {
	dao := db.NewDetailSvcDB(dbtest.NewTestDB(t))
	_, err := dao.GetDeploymentDetail(context.Background(), 42)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = dao.GetManifest(context.Background(), 42)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetManifest(t *testing.T) {
	ctx := context.Background()
	dao := db.NewDetailSvcDB(dbtest.NewTestDB(t))
	require.NoError(t, dao.SaveManifest(ctx, &db.StoredSubgraphManifest{
		ID:          7,
		SpecVersion: "0.0.4",
		Repository:  strPtr("https://github.com/example/subgraph"),
		Features:    db.StringArray{"nonFatalErrors", "grafting"},
		Schema:      "type Token @entity { id: ID! }",
	}))
	m, err := dao.GetManifest(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "0.0.4", m.SpecVersion)
	assert.Nil(t, m.Description)
	assert.Equal(t, db.StringArray{"nonFatalErrors", "grafting"}, m.Features)
	assert.Nil(t, m.BuildVersionID)
}

func TestCreateOrGetBuildVersion(t *testing.T) {
	ctx := context.Background()
	dao := db.NewDetailSvcDB(dbtest.NewTestDB(t))
	v := db.BuildVersion{
		GitCommitHash:   "0123456789abcdef0123456789abcdef01234567",
		PackageVersion:  "1.2.3-rc.1",
		Major:           1,
		Minor:           2,
		Patch:           3,
		PreRelease:      "rc.1",
		CompilerVersion: "go1.21.5",
		CompilerHost:    "linux/amd64",
		CompilerChannel: "stable",
	}
	first, err := dao.CreateOrGetBuildVersion(ctx, &v)
	require.NoError(t, err)
	assert.NotZero(t, first)

	again, err := dao.CreateOrGetBuildVersion(ctx, &v)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	dirty := v
	dirty.GitRepositoryDirty = true
	other, err := dao.CreateOrGetBuildVersion(ctx, &dirty)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)

	again, err = dao.CreateOrGetBuildVersion(ctx, &v)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestCheckSchema(t *testing.T) {
	gdb := dbtest.NewTestDB(t)
	require.NoError(t, db.CheckSchema(gdb))

	require.NoError(t, gdb.Migrator().DropColumn(&db.ErrorDetail{}, "block_range"))
	err := db.CheckSchema(gdb)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subgraph_error.block_range")
}
