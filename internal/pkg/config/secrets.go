// internal/pkg/config/secrets.go
package config

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// Secret keys read from the database secret
const (
	SecretDBUser     = "username"
	SecretDBPassword = "password"
	SecretDBHost     = "host"
)

// SecretsManager reads key/value secrets
type SecretsManager interface {
	GetSecrets(ctx context.Context, keys []string) (map[string]string, error)
}

// secretValueAPI is the part of the Secrets Manager client we use
type secretValueAPI interface {
	GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// AWSSecretsManager reads a JSON secret from AWS Secrets Manager and caches it
type AWSSecretsManager struct {
	client     secretValueAPI
	secretName string
	cache      map[string]string
	cacheMu    sync.RWMutex
	lastFetch  time.Time
	ttl        time.Duration
	logger     *slog.Logger
}

// NewAWSSecretsManager creates a new AWS Secrets Manager client
func NewAWSSecretsManager(ctx context.Context, region, secretName string, logger *slog.Logger) (*AWSSecretsManager, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return newAWSSecretsManager(secretsmanager.NewFromConfig(cfg), secretName, logger), nil
}

func newAWSSecretsManager(client secretValueAPI, secretName string, logger *slog.Logger) *AWSSecretsManager {
	return &AWSSecretsManager{
		client:     client,
		secretName: secretName,
		cache:      make(map[string]string),
		ttl:        5 * time.Minute,
		logger:     logger,
	}
}

// GetSecrets returns the requested keys, fetching the secret when the cache is stale
func (sm *AWSSecretsManager) GetSecrets(ctx context.Context, keys []string) (map[string]string, error) {
	sm.cacheMu.RLock()
	fresh := time.Since(sm.lastFetch) < sm.ttl && len(sm.cache) > 0
	data := sm.cache
	sm.cacheMu.RUnlock()

	if !fresh {
		sm.logger.Info("fetching secrets from AWS Secrets Manager",
			slog.String("secret_name", sm.secretName))

		result, err := sm.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId:     aws.String(sm.secretName),
			VersionStage: aws.String("AWSCURRENT"),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get secret value: %w", err)
		}
		if result.SecretString == nil {
			return nil, fmt.Errorf("secret %s has no string value", sm.secretName)
		}

		if err := json.Unmarshal([]byte(*result.SecretString), &data); err != nil {
			return nil, fmt.Errorf("failed to parse secret JSON: %w", err)
		}

		sm.cacheMu.Lock()
		sm.cache = data
		sm.lastFetch = time.Now()
		sm.cacheMu.Unlock()
	}

	filtered := make(map[string]string, len(keys))
	for _, key := range keys {
		if val, ok := data[key]; ok {
			filtered[key] = val
		}
	}
	return filtered, nil
}

// EnvSecretsManager reads secrets from environment variables
type EnvSecretsManager struct{}

// NewEnvSecretsManager creates a new environment-based secrets manager
func NewEnvSecretsManager() *EnvSecretsManager {
	return &EnvSecretsManager{}
}

// GetSecrets retrieves the keys that are set in the environment
func (em *EnvSecretsManager) GetSecrets(ctx context.Context, keys []string) (map[string]string, error) {
	secrets := make(map[string]string)
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			secrets[key] = val
		}
	}
	return secrets, nil
}

// ApplyDatabaseSecrets overrides the credentials in db with any values the
// secrets manager holds. A secret without a password is an error.
func ApplyDatabaseSecrets(ctx context.Context, sm SecretsManager, db *DatabaseConfig) error {
	secrets, err := sm.GetSecrets(ctx, []string{SecretDBUser, SecretDBPassword, SecretDBHost})
	if err != nil {
		return err
	}

	password, ok := secrets[SecretDBPassword]
	if !ok || password == "" {
		return fmt.Errorf("%w: database password secret", ErrMissingRequiredConfig)
	}
	db.Password = password

	if user := secrets[SecretDBUser]; user != "" {
		db.User = user
	}
	if host := secrets[SecretDBHost]; host != "" {
		db.Host = host
	}
	return nil
}
