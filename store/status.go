package store

import (
	"github.com/bnb-chain/subgraph-store/db"
	"github.com/bnb-chain/subgraph-store/entity"
	"github.com/bnb-chain/subgraph-store/util"
)

const (
	earliestEthereumBlock = "earliest_ethereum_block"
	latestEthereumBlock   = "latest_ethereum_block"
)

// ToStatusInfo builds the status of a deployment from its row, its fatal error (nil if it has
// none) and the sites of the deployments being queried. The site of the deployment must be in
// sites.
//
// The chain head block and the node assignment live in other shards; both are left nil for the
// caller to fill in.
func ToStatusInfo(detail *db.DeploymentDetail, fatalError *db.ErrorDetail, sites []*entity.Site) (*entity.Info, error) {
	deployment := detail.Deployment

	site := findSite(sites, deployment)
	if site == nil {
		return nil, constraintViolation(deployment, "site", "missing site for subgraph `%s`", deployment)
	}

	earliestBlock, err := Block(deployment, earliestEthereumBlock,
		detail.EarliestEthereumBlockHash, detail.EarliestEthereumBlockNumber)
	if err != nil {
		return nil, err
	}
	latestBlock, err := Block(deployment, latestEthereumBlock,
		detail.LatestEthereumBlockHash, detail.LatestEthereumBlockNumber)
	if err != nil {
		return nil, err
	}

	health, err := toHealth(deployment, detail.Health)
	if err != nil {
		return nil, err
	}

	entityCount, ok := util.DecimalToUint64(detail.EntityCount.String())
	if !ok {
		return nil, constraintViolation(deployment, "entity_count",
			"the entityCount for %s is not representable as a u64", deployment)
	}

	var fatal *entity.SubgraphError
	if fatalError != nil {
		if fatal, err = ToSubgraphError(fatalError); err != nil {
			return nil, err
		}
	}

	return &entity.Info{
		Subgraph:   deployment,
		Synced:     detail.Synced,
		Health:     health,
		FatalError: fatal,
		// only the fatal error is referenced from the deployment row
		NonFatalErrors: []entity.SubgraphError{},
		Chains: []entity.ChainInfo{{
			Network:        site.Network,
			ChainHeadBlock: nil,
			EarliestBlock:  earliestBlock,
			LatestBlock:    latestBlock,
		}},
		EntityCount: entityCount,
		Node:        nil,
	}, nil
}

func findSite(sites []*entity.Site, deployment string) *entity.Site {
	for _, site := range sites {
		if site.Deployment.String() == deployment {
			return site
		}
	}
	return nil
}

func toHealth(deployment string, h db.Health) (entity.Health, error) {
	switch h {
	case db.Healthy:
		return entity.Healthy, nil
	case db.Unhealthy:
		return entity.Unhealthy, nil
	case db.Failed:
		return entity.Failed, nil
	default:
		return "", constraintViolation(deployment, "health", "unknown health `%s` for subgraph `%s`", h, deployment)
	}
}
