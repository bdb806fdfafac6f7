package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bnb-chain/subgraph-store/db"
	"github.com/bnb-chain/subgraph-store/db/dbtest"
	"github.com/bnb-chain/subgraph-store/entity"
)

func newTestStore(t *testing.T) (*Store, db.DetailDao) {
	dao := db.NewDetailSvcDB(dbtest.NewTestDB(t))
	return NewStore(dao), dao
}

func TestDeploymentStatuses(t *testing.T) {
	ctx := context.Background()
	s, dao := newTestStore(t)

	sg1 := detail("sg1")
	require.NoError(t, dao.SaveDeploymentDetail(ctx, sg1))
	sg2 := detail("sg2")
	sg2.ID = 2
	sg2.LatestEthereumBlockHash = dbtest.Hash(0xab)
	sg2.LatestEthereumBlockNumber = decimal("200")
	require.NoError(t, dao.SaveDeploymentDetail(ctx, sg2))

	infos, err := s.DeploymentStatuses(ctx, []*entity.Site{site(1, "sg1", "mainnet")})
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "sg1", infos[0].Subgraph)
	assert.Equal(t, uint64(42), infos[0].EntityCount)
	assert.Equal(t, "mainnet", infos[0].Chains[0].Network)
	assert.Equal(t, uint64(100), infos[0].Chains[0].EarliestBlock.Number)
	assert.Nil(t, infos[0].Chains[0].LatestBlock)

	infos, err = s.DeploymentStatuses(ctx, []*entity.Site{site(1, "sg1", "mainnet"), site(2, "sg2", "goerli")})
	require.NoError(t, err)
	assert.Len(t, infos, 2)
}

func TestDeploymentStatusesWithoutSites(t *testing.T) {
	ctx := context.Background()
	s, dao := newTestStore(t)
	require.NoError(t, dao.SaveDeploymentDetail(ctx, detail("sg1")))

	_, err := s.DeploymentStatuses(ctx, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConstraintViolation))
}

func TestDeploymentStatusesFatalError(t *testing.T) {
	ctx := context.Background()
	s, dao := newTestStore(t)
	require.NoError(t, dao.SaveErrorDetail(ctx, &db.ErrorDetail{
		ID:         "err1",
		SubgraphID: "sg1",
		Message:    "boom",
		BlockHash:  dbtest.Hash(0xbb),
		BlockRange: db.BlockRangeFrom(130),
	}))
	d := detail("sg1")
	d.Health = db.Failed
	errID := "err1"
	d.FatalError = &errID
	require.NoError(t, dao.SaveDeploymentDetail(ctx, d))

	infos, err := s.DeploymentStatuses(ctx, []*entity.Site{site(1, "sg1", "mainnet")})
	require.NoError(t, err)
	require.Len(t, infos, 1)
	require.NotNil(t, infos[0].FatalError)
	assert.Equal(t, "boom", infos[0].FatalError.Message)
	assert.Equal(t, uint64(130), infos[0].FatalError.BlockPtr.Number)
}

func TestDeploymentEntity(t *testing.T) {
	ctx := context.Background()
	s, dao := newTestStore(t)
	require.NoError(t, dao.SaveDeploymentDetail(ctx, detail("sg1")))

	_, err := s.DeploymentEntity(ctx, site(1, "sg1", "mainnet"))
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	require.NoError(t, dao.SaveManifest(ctx, manifest()))
	ent, err := s.DeploymentEntity(ctx, site(1, "sg1", "mainnet"))
	require.NoError(t, err)
	assert.Equal(t, "0.0.5", ent.Manifest.SpecVersion)
	assert.Equal(t, uint64(100), ent.EarliestBlock.Number)

	_, err = s.DeploymentEntity(ctx, site(5, "sg5", "mainnet"))
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDeploymentDetails(t *testing.T) {
	ctx := context.Background()
	s, dao := newTestStore(t)
	require.NoError(t, dao.SaveDeploymentDetail(ctx, detail("sg1")))

	details, err := s.DeploymentDetails(ctx, []string{"sg1"})
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, db.Decimal("42"), details[0].EntityCount)
}
