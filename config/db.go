package config

import (
	"fmt"
	"log"
	"os"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bnb-chain/subgraph-store/db"
)

// Dialector builds the gorm dialector for cfg, password overrides cfg.Password
func (cfg *DBConfig) Dialector(password string) (gorm.Dialector, error) {
	switch cfg.Dialect {
	case DBDialectMysql:
		dsn, err := mysqlDSN(cfg.Username, password, cfg.Url)
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	case DBDialectPostgres:
		return postgres.New(postgres.Config{
			DSN:                  fmt.Sprintf("%s user=%s password=%s", cfg.Url, cfg.Username, password),
			PreferSimpleProtocol: true,
		}), nil
	case DBDialectSqlite3:
		return sqlite.Open(cfg.Url), nil
	default:
		return nil, fmt.Errorf("unexpected DB dialect %s", cfg.Dialect)
	}
}

// mysqlDSN completes url, e.g. tcp(127.0.0.1:3306)/subgraphs, into a DSN
func mysqlDSN(username, password, url string) (string, error) {
	dsnCfg, err := mysqldriver.ParseDSN(fmt.Sprintf("%s:%s@%s", username, password, url))
	if err != nil {
		return "", err
	}
	dsnCfg.ParseTime = true
	if dsnCfg.Params == nil {
		dsnCfg.Params = map[string]string{}
	}
	if _, ok := dsnCfg.Params["charset"]; !ok {
		dsnCfg.Params["charset"] = "utf8mb4"
	}
	return dsnCfg.FormatDSN(), nil
}

func InitDBWithConfig(cfg *DBConfig, password string, migrate bool) *gorm.DB {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             time.Second,   // Slow SQL threshold
			LogLevel:                  logger.Silent, // Log level
			IgnoreRecordNotFoundError: true,          // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,
		},
	)
	dialector, err := cfg.Dialector(password)
	if err != nil {
		panic(err)
	}
	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		panic(fmt.Sprintf("open db error, err=%s", err.Error()))
	}
	dbConfig, err := gdb.DB()
	if err != nil {
		panic(err)
	}
	dbConfig.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConfig.SetMaxOpenConns(cfg.MaxOpenConns)

	if migrate {
		db.AutoMigrateDB(gdb)
	}
	if err = db.CheckSchema(gdb); err != nil {
		panic(err)
	}
	return gdb
}
