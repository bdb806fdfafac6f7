package config

const (
	FlagConfigPath         = "config-path"
	FlagConfigType         = "config-type"
	FlagConfigAwsRegion    = "aws-region"
	FlagConfigAwsSecretKey = "aws-secret-key"
	FlagConfigDbPass       = "db-pass"
	FlagMigrate            = "migrate"

	LocalConfig = "local"
	AWSConfig   = "aws"

	KeyTypeLocalPrivateKey = "local_private_key"
	KeyTypeAWSPrivateKey   = "aws_private_key"

	DBDialectMysql    = "mysql"
	DBDialectSqlite3  = "sqlite3"
	DBDialectPostgres = "postgres"

	EnvVarConfigType     = "CONFIG_TYPE"
	EnvVarConfigFilePath = "CONFIG_FILE_PATH"
	EnvVarDBUserPass     = "DB_PASSWORD"

	DefaultServerAddress = "0.0.0.0:8080"
)
