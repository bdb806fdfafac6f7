package config

import (
	"encoding/base64"
	"encoding/json"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
)

// GetSecret reads the current value of a secret from AWS Secrets Manager
func GetSecret(secretName, region string) (string, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return "", err
	}
	svc := secretsmanager.New(sess)
	result, err := svc.GetSecretValue(&secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretName),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return "", err
	}
	if result.SecretString != nil {
		return *result.SecretString, nil
	}
	decoded := make([]byte, base64.StdEncoding.DecodedLen(len(result.SecretBinary)))
	n, err := base64.StdEncoding.Decode(decoded, result.SecretBinary)
	if err != nil {
		return "", err
	}
	return string(decoded[:n]), nil
}

// GetDBPass returns the database password, read from AWS Secrets Manager if the key type says so
func GetDBPass(cfg *DBConfig) (string, error) {
	if cfg.KeyType != KeyTypeAWSPrivateKey {
		return cfg.Password, nil
	}
	result, err := GetSecret(cfg.AWSSecretName, cfg.AWSRegion)
	if err != nil {
		return "", err
	}
	type DBPass struct {
		DbPass string `json:"db_pass"`
	}
	var dbPassword DBPass
	if err = json.Unmarshal([]byte(result), &dbPassword); err != nil {
		return "", err
	}
	return dbPassword.DbPass, nil
}
