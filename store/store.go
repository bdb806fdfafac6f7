package store

import (
	"context"

	"github.com/bnb-chain/subgraph-store/db"
	"github.com/bnb-chain/subgraph-store/entity"
	"github.com/bnb-chain/subgraph-store/logging"
	"github.com/bnb-chain/subgraph-store/metrics"
)

// Store answers status and deployment queries against the tables of one shard
type Store struct {
	dao db.DetailDao
}

func NewStore(dao db.DetailDao) *Store {
	return &Store{dao: dao}
}

// DeploymentDetails returns the raw rows of deployments, all of them if deployments is empty
func (s *Store) DeploymentDetails(ctx context.Context, deployments []string) ([]*db.DeploymentDetail, error) {
	return s.dao.GetDeploymentDetails(ctx, deployments)
}

// DeploymentStatuses returns the status of the deployments in sites, or of every deployment in the
// shard if sites is empty. Every deployment found needs its site in sites, the first one that can
// not be converted fails the whole call. The order of the result is unspecified.
func (s *Store) DeploymentStatuses(ctx context.Context, sites []*entity.Site) ([]*entity.Info, error) {
	metrics.StatusQueryCounter.Inc()

	var deployments []string
	if len(sites) != 0 {
		deployments = make([]string, 0, len(sites))
		for _, site := range sites {
			deployments = append(deployments, site.Deployment.String())
		}
	}

	rows, err := s.dao.GetDeploymentsWithFatalError(ctx, deployments)
	if err != nil {
		return nil, err
	}

	infos := make([]*entity.Info, 0, len(rows))
	for _, row := range rows {
		info, err := ToStatusInfo(&row.DeploymentDetail, row.FatalErrorDetail(), sites)
		if err != nil {
			logging.Logger.Errorf("failed to build status of deployment %s, err=%s", row.Deployment, err.Error())
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// DeploymentEntity loads the deployment stored at site together with its manifest. A missing row
// is reported as gorm.ErrRecordNotFound.
func (s *Store) DeploymentEntity(ctx context.Context, site *entity.Site) (*entity.SubgraphDeploymentEntity, error) {
	manifest, err := s.dao.GetManifest(ctx, site.ID)
	if err != nil {
		return nil, err
	}
	detail, err := s.dao.GetDeploymentDetail(ctx, site.ID)
	if err != nil {
		return nil, err
	}
	return ToDeploymentEntity(detail, manifest)
}
