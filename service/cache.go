package service

import (
	"context"
	"strconv"

	"github.com/bnb-chain/subgraph-store/cache"
	"github.com/bnb-chain/subgraph-store/db"
	"github.com/bnb-chain/subgraph-store/metrics"
)

// cachedManifestDao serves manifests from a local cache, a manifest never changes once written
type cachedManifestDao struct {
	db.DetailDao
	cacheService cache.Cache
}

func newCachedManifestDao(dao db.DetailDao, c cache.Cache) db.DetailDao {
	return &cachedManifestDao{
		DetailDao:    dao,
		cacheService: c,
	}
}

func (d *cachedManifestDao) GetManifest(ctx context.Context, id int32) (*db.StoredSubgraphManifest, error) {
	key := strconv.FormatInt(int64(id), 10)
	if manifest, found := d.cacheService.Get(key); found {
		metrics.ManifestCacheHitCounter.Inc()
		return manifest.(*db.StoredSubgraphManifest), nil
	}
	manifest, err := d.DetailDao.GetManifest(ctx, id)
	if err != nil {
		return nil, err
	}
	d.cacheService.Set(key, manifest)
	return manifest, nil
}

func (d *cachedManifestDao) SaveManifest(ctx context.Context, manifest *db.StoredSubgraphManifest) error {
	d.cacheService.Remove(strconv.FormatInt(int64(manifest.ID), 10))
	return d.DetailDao.SaveManifest(ctx, manifest)
}
