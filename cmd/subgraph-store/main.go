package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bnb-chain/subgraph-store/cache"
	"github.com/bnb-chain/subgraph-store/config"
	"github.com/bnb-chain/subgraph-store/db"
	"github.com/bnb-chain/subgraph-store/logging"
	"github.com/bnb-chain/subgraph-store/metrics"
	"github.com/bnb-chain/subgraph-store/restapi/handlers"
	"github.com/bnb-chain/subgraph-store/service"
	"github.com/bnb-chain/subgraph-store/store"
)

func initFlags() {
	flag.String(config.FlagConfigPath, "", "config file path")
	flag.String(config.FlagConfigType, "", "config type, local or aws")
	flag.String(config.FlagConfigAwsRegion, "", "aws region")
	flag.String(config.FlagConfigAwsSecretKey, "", "aws secret key")
	flag.String(config.FlagConfigDbPass, "", "subgraph-store db password")
	flag.Bool(config.FlagMigrate, false, "create or update the tables before checking the schema")

	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()
	err := viper.BindPFlags(pflag.CommandLine)
	if err != nil {
		panic(err)
	}
}

func printUsage() {
	fmt.Print("usage: ./subgraph-store --config-type local --config-path configFile\n")
	fmt.Print("usage: ./subgraph-store --config-type aws --aws-region awsRegion --aws-secret-key awsSecretKey\n")
}

func main() {
	var (
		cfg                        *config.Config
		configType, configFilePath string
	)
	initFlags()
	configType = viper.GetString(config.FlagConfigType)
	if configType == "" {
		configType = os.Getenv(config.EnvVarConfigType)
	}
	if configType != config.AWSConfig && configType != config.LocalConfig {
		printUsage()
		return
	}
	if configType == config.AWSConfig {
		awsSecretKey := viper.GetString(config.FlagConfigAwsSecretKey)
		if awsSecretKey == "" {
			printUsage()
			return
		}
		awsRegion := viper.GetString(config.FlagConfigAwsRegion)
		if awsRegion == "" {
			printUsage()
			return
		}
		configContent, err := config.GetSecret(awsSecretKey, awsRegion)
		if err != nil {
			fmt.Printf("get aws config error, err=%s", err.Error())
			return
		}
		cfg = config.ParseConfigFromJson(configContent)
	} else {
		configFilePath = viper.GetString(config.FlagConfigPath)
		if configFilePath == "" {
			configFilePath = os.Getenv(config.EnvVarConfigFilePath)
			if configFilePath == "" {
				printUsage()
				return
			}
		}
		cfg = config.ParseConfigFromFile(configFilePath)
	}
	if cfg == nil {
		panic("failed to get configuration")
	}
	cfg.Validate()
	logging.InitLogger(&cfg.LogConfig)

	password := viper.GetString(config.FlagConfigDbPass)
	if password == "" {
		password = os.Getenv(config.EnvVarDBUserPass)
		if password == "" {
			var err error
			if password, err = config.GetDBPass(&cfg.DBConfig); err != nil {
				panic(fmt.Sprintf("get db password error, err=%s", err.Error()))
			}
		}
	}
	gdb := config.InitDBWithConfig(&cfg.DBConfig, password, viper.GetBool(config.FlagMigrate))
	dao := db.NewDetailSvcDB(gdb)

	if _, err := store.NewRegistrar(dao).Register(context.Background()); err != nil {
		panic(err)
	}

	errCh := make(chan error, 2)
	if cfg.MetricsConfig.Enable {
		metrics.NewMetrics(cfg.MetricsConfig.HttpAddress).Start(errCh)
	}

	manifestCache, err := cache.NewLocalCache(cfg.CacheConfig.GetCacheSize())
	if err != nil {
		panic(err)
	}
	sites, err := service.SitesFromConfig(cfg.Sites)
	if err != nil {
		panic(err)
	}
	statusService := service.NewStatusService(dao, sites, manifestCache)

	server := &http.Server{
		Addr:    cfg.ServerConfig.GetAddress(),
		Handler: handlers.NewRouter(statusService),
	}
	go func() {
		logging.Logger.Infof("serving deployment status, address=%s", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	err = <-errCh
	logging.Logger.Errorf("server stopped, err=%s", err.Error())
	os.Exit(1)
}
