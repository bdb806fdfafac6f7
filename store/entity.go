package store

import (
	"github.com/bnb-chain/subgraph-store/db"
	"github.com/bnb-chain/subgraph-store/entity"
	"github.com/bnb-chain/subgraph-store/types"
)

func ToManifestEntity(m *db.StoredSubgraphManifest) entity.SubgraphManifestEntity {
	features := []string(m.Features)
	if features == nil {
		features = []string{}
	}
	return entity.SubgraphManifestEntity{
		SpecVersion: m.SpecVersion,
		Description: m.Description,
		Repository:  m.Repository,
		Features:    features,
		Schema:      m.Schema,
	}
}

// ToDeploymentEntity combines the row of a deployment with its manifest. Errors are not loaded
// here, FatalError stays nil and NonFatalErrors empty.
func ToDeploymentEntity(detail *db.DeploymentDetail, manifest *db.StoredSubgraphManifest) (*entity.SubgraphDeploymentEntity, error) {
	deployment := detail.Deployment

	earliestBlock, err := Block(deployment, "earliest_block", detail.EarliestEthereumBlockHash, detail.EarliestEthereumBlockNumber)
	if err != nil {
		return nil, err
	}
	latestBlock, err := Block(deployment, "latest_block", detail.LatestEthereumBlockHash, detail.LatestEthereumBlockNumber)
	if err != nil {
		return nil, err
	}
	graftBlock, err := Block(deployment, "graft_block", detail.GraftBlockHash, detail.GraftBlockNumber)
	if err != nil {
		return nil, err
	}

	var graftBase *types.DeploymentHash
	if detail.GraftBase != nil {
		base, err := types.NewDeploymentHash(*detail.GraftBase)
		if err != nil {
			return nil, constraintViolation(deployment, "graft_base", "invalid graft base `%s`", *detail.GraftBase)
		}
		graftBase = &base
	}

	health, err := toHealth(deployment, detail.Health)
	if err != nil {
		return nil, err
	}

	return &entity.SubgraphDeploymentEntity{
		Manifest:          ToManifestEntity(manifest),
		Failed:            detail.Failed,
		Health:            health,
		Synced:            detail.Synced,
		FatalError:        nil,
		NonFatalErrors:    []entity.SubgraphError{},
		EarliestBlock:     earliestBlock.ToPtr(),
		LatestBlock:       latestBlock.ToPtr(),
		GraftBase:         graftBase,
		GraftBlock:        graftBlock.ToPtr(),
		ReorgCount:        detail.ReorgCount,
		CurrentReorgDepth: detail.CurrentReorgDepth,
		MaxReorgDepth:     detail.MaxReorgDepth,
	}, nil
}
