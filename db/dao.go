package db

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type DetailDao interface {
	DeploymentDB
	ErrorDB
	ManifestDB
	BuildVersionDB
}

type DetailSvcDB struct {
	db *gorm.DB
}

func NewDetailSvcDB(db *gorm.DB) DetailDao {
	return &DetailSvcDB{
		db,
	}
}

type DeploymentDB interface {
	GetDeploymentDetails(ctx context.Context, deployments []string) ([]*DeploymentDetail, error)
	GetDeploymentsWithFatalError(ctx context.Context, deployments []string) ([]*DeploymentAndError, error)
	GetDeploymentDetail(ctx context.Context, id int32) (*DeploymentDetail, error)
	SaveDeploymentDetail(ctx context.Context, detail *DeploymentDetail) error
}

// GetDeploymentDetails returns the rows of the given deployments, all rows if deployments is empty
func (d *DetailSvcDB) GetDeploymentDetails(ctx context.Context, deployments []string) ([]*DeploymentDetail, error) {
	details := make([]*DeploymentDetail, 0)
	query := d.db.WithContext(ctx).Model(&DeploymentDetail{}).Select(DeploymentDetailColumns)
	if len(deployments) != 0 {
		query = query.Where("deployment IN ?", deployments)
	}
	if err := query.Find(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

// GetDeploymentsWithFatalError left-joins the rows of the given deployments, all rows if
// deployments is empty, with the row of their fatal error.
func (d *DetailSvcDB) GetDeploymentsWithFatalError(ctx context.Context, deployments []string) ([]*DeploymentAndError, error) {
	rows := make([]*DeploymentAndError, 0)
	query := d.db.WithContext(ctx).
		Table("subgraph_deployment").
		Select(deploymentAndErrorSelect).
		Joins("LEFT JOIN subgraph_error ON subgraph_error.id = subgraph_deployment.fatal_error")
	if len(deployments) != 0 {
		query = query.Where("subgraph_deployment.deployment IN ?", deployments)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

var deploymentAndErrorSelect = func() string {
	columns := make([]string, 0, len(DeploymentDetailColumns)+len(ErrorDetailColumns)+1)
	for _, c := range DeploymentDetailColumns {
		columns = append(columns, "subgraph_deployment."+c)
	}
	columns = append(columns, "subgraph_error.vid IS NOT NULL AS has_fatal_error")
	for _, c := range ErrorDetailColumns {
		columns = append(columns, fmt.Sprintf("subgraph_error.%s AS error_%s", c, c))
	}
	return strings.Join(columns, ", ")
}()

func (d *DetailSvcDB) GetDeploymentDetail(ctx context.Context, id int32) (*DeploymentDetail, error) {
	detail := DeploymentDetail{}
	err := d.db.WithContext(ctx).Model(&DeploymentDetail{}).Select(DeploymentDetailColumns).Where("id = ?", id).Take(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (d *DetailSvcDB) SaveDeploymentDetail(ctx context.Context, detail *DeploymentDetail) error {
	return d.db.WithContext(ctx).Save(detail).Error
}

type ErrorDB interface {
	SaveErrorDetail(ctx context.Context, e *ErrorDetail) error
}

func (d *DetailSvcDB) SaveErrorDetail(ctx context.Context, e *ErrorDetail) error {
	return d.db.WithContext(ctx).Save(e).Error
}

type ManifestDB interface {
	GetManifest(ctx context.Context, id int32) (*StoredSubgraphManifest, error)
	SaveManifest(ctx context.Context, manifest *StoredSubgraphManifest) error
}

func (d *DetailSvcDB) GetManifest(ctx context.Context, id int32) (*StoredSubgraphManifest, error) {
	manifest := StoredSubgraphManifest{}
	err := d.db.WithContext(ctx).Model(&StoredSubgraphManifest{}).Select(StoredSubgraphManifestColumns).Where("id = ?", id).Take(&manifest).Error
	if err != nil {
		return nil, err
	}
	return &manifest, nil
}

func (d *DetailSvcDB) SaveManifest(ctx context.Context, manifest *StoredSubgraphManifest) error {
	return d.db.WithContext(ctx).Save(manifest).Error
}

type BuildVersionDB interface {
	CreateOrGetBuildVersion(ctx context.Context, v *BuildVersion) (int32, error)
}

// CreateOrGetBuildVersion inserts v unless a row with the same fingerprint exists and returns the
// id of the row in a single statement. On conflict the row is updated to itself so that the
// statement returns its id.
func (d *DetailSvcDB) CreateOrGetBuildVersion(ctx context.Context, v *BuildVersion) (int32, error) {
	columns := strings.Join(BuildVersionFingerprintColumns, ", ")
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(BuildVersionFingerprintColumns)), ", ")
	tx := d.db.WithContext(ctx)

	if tx.Dialector.Name() == DialectMysql {
		// LAST_INSERT_ID(expr) makes LastInsertId report the existing id on duplicate key
		stmt := fmt.Sprintf("INSERT INTO build_version (%s) VALUES (%s) ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id)",
			columns, placeholders)
		res, err := tx.Statement.ConnPool.ExecContext(ctx, stmt, v.fingerprint()...)
		if err != nil {
			return 0, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, err
		}
		return int32(id), nil
	}

	stmt := fmt.Sprintf("INSERT INTO build_version (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET id = build_version.id RETURNING id",
		columns, placeholders, columns)
	var id int32
	if err := tx.Raw(stmt, v.fingerprint()...).Scan(&id).Error; err != nil {
		return 0, err
	}
	return id, nil
}

func AutoMigrateDB(db *gorm.DB) {
	var err error
	if err = db.AutoMigrate(&BuildVersion{}); err != nil {
		panic(err)
	}
	if err = db.AutoMigrate(&StoredSubgraphManifest{}); err != nil {
		panic(err)
	}
	if err = db.AutoMigrate(&DeploymentDetail{}); err != nil {
		panic(err)
	}
	if err = db.AutoMigrate(&ErrorDetail{}); err != nil {
		panic(err)
	}
}

// CheckSchema verifies that every column the row models are loaded from exists in the database
func CheckSchema(db *gorm.DB) error {
	tables := []struct {
		model   interface{}
		table   string
		columns []string
	}{
		{&DeploymentDetail{}, "subgraph_deployment", DeploymentDetailColumns},
		{&ErrorDetail{}, "subgraph_error", ErrorDetailColumns},
		{&StoredSubgraphManifest{}, "subgraph_manifest", StoredSubgraphManifestColumns},
		{&BuildVersion{}, "build_version", append([]string{"id"}, BuildVersionFingerprintColumns...)},
	}
	migrator := db.Migrator()
	var missing []string
	for _, t := range tables {
		if !migrator.HasTable(t.model) {
			missing = append(missing, t.table)
			continue
		}
		for _, c := range t.columns {
			if !migrator.HasColumn(t.model, c) {
				missing = append(missing, t.table+"."+c)
			}
		}
	}
	if len(missing) != 0 {
		return fmt.Errorf("database schema does not match, missing %s", strings.Join(missing, ", "))
	}
	return nil
}
