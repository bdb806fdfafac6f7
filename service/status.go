package service

import (
	"context"

	"github.com/bnb-chain/subgraph-store/cache"
	"github.com/bnb-chain/subgraph-store/config"
	"github.com/bnb-chain/subgraph-store/db"
	"github.com/bnb-chain/subgraph-store/entity"
	"github.com/bnb-chain/subgraph-store/metrics"
	"github.com/bnb-chain/subgraph-store/store"
	"github.com/bnb-chain/subgraph-store/types"
)

type Status interface {
	// GetStatuses returns the status of the given deployments, of every known deployment if
	// deployments is empty
	GetStatuses(ctx context.Context, deployments []string) ([]*entity.Info, error)
	GetDeployment(ctx context.Context, deployment string) (*entity.SubgraphDeploymentEntity, error)
}

type StatusService struct {
	store *store.Store
	sites []*entity.Site
	index map[string]*entity.Site
}

func NewStatusService(dao db.DetailDao, sites []*entity.Site, c cache.Cache) Status {
	index := make(map[string]*entity.Site, len(sites))
	for _, site := range sites {
		index[site.Deployment.String()] = site
	}
	return &StatusService{
		store: store.NewStore(newCachedManifestDao(dao, c)),
		sites: sites,
		index: index,
	}
}

// SitesFromConfig converts the configured deployment to shard mapping
func SitesFromConfig(cfgs []config.SiteConfig) ([]*entity.Site, error) {
	sites := make([]*entity.Site, 0, len(cfgs))
	for _, cfg := range cfgs {
		deployment, err := types.NewDeploymentHash(cfg.Deployment)
		if err != nil {
			return nil, err
		}
		sites = append(sites, &entity.Site{
			ID:         cfg.ID,
			Deployment: deployment,
			Network:    cfg.Network,
			Shard:      cfg.Shard,
		})
	}
	return sites, nil
}

func (s *StatusService) GetStatuses(ctx context.Context, deployments []string) ([]*entity.Info, error) {
	sites := s.sites
	if len(deployments) != 0 {
		sites = make([]*entity.Site, 0, len(deployments))
		for _, deployment := range deployments {
			site, err := s.site(deployment)
			if err != nil {
				return nil, err
			}
			sites = append(sites, site)
		}
	}
	infos, err := s.store.DeploymentStatuses(ctx, sites)
	if err != nil {
		return nil, toErr(err)
	}
	return infos, nil
}

func (s *StatusService) GetDeployment(ctx context.Context, deployment string) (*entity.SubgraphDeploymentEntity, error) {
	metrics.DeploymentEntityQueryCounter.Inc()
	site, err := s.site(deployment)
	if err != nil {
		return nil, err
	}
	ent, err := s.store.DeploymentEntity(ctx, site)
	if err != nil {
		return nil, toErr(err)
	}
	return ent, nil
}

func (s *StatusService) site(deployment string) (*entity.Site, error) {
	if err := types.ValidateDeploymentHash(deployment); err != nil {
		return nil, BadRequestErr.Enrich(err.Error())
	}
	site, ok := s.index[deployment]
	if !ok {
		return nil, DeploymentNotFoundErr.Enrich(deployment)
	}
	return site, nil
}
