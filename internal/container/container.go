package container

import (
	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/musemarket/musemarket-api/config"
	"github.com/musemarket/musemarket-api/internal/application"
	"github.com/musemarket/musemarket-api/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	gcsClient   *storage.Client

	jwtManager *helpers.JWTManager

	rabbitPub *helpers.RabbitPublisher
	esClient  *elasticsearch.Client
)

func SetConfig(c *config.Config)   { cfg = c }
func GetConfig() *config.Config    { return cfg }
func SetLogger(l *logrus.Logger)   { logger = l }
func GetLogger() *logrus.Logger    { return logger }
func SetPGPool(p *pgxpool.Pool)    { pgPool = p }
func GetPGPool() *pgxpool.Pool     { return pgPool }
func SetRedis(r *redis.Client)     { redisClient = r }
func GetRedis() *redis.Client      { return redisClient }
func SetGCS(s *storage.Client)     { gcsClient = s }
func GetGCS() *storage.Client      { return gcsClient }
func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager  { return jwtManager }

func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func SetES(c *elasticsearch.Client)           { esClient = c }
func GetES() *elasticsearch.Client            { return esClient }

// The getters below return untyped nils when the backing client is absent so
// callers can test the interface against nil.

// GetSessions is nil when Redis is not configured.
func GetSessions() application.SessionStore {
	if redisClient == nil {
		return nil
	}
	return &helpers.RedisSessions{Client: redisClient}
}

// GetJobs is nil when RabbitMQ is not connected.
func GetJobs() application.JobPublisher {
	if rabbitPub == nil {
		return nil
	}
	return rabbitPub
}

// GetImageStore prefers GCS and falls back to the local uploads directory.
func GetImageStore() helpers.ImageStore {
	if gcsClient != nil && cfg.GCSBucket != "" {
		return &helpers.GCSStore{Client: gcsClient, Bucket: cfg.GCSBucket, PublicBase: cfg.GCSPublicBase}
	}
	return &helpers.LocalStore{Dir: cfg.UploadsDir, BaseURL: cfg.PublicUploadURL}
}

// ServesLocalUploads reports whether images live on local disk.
func ServesLocalUploads() bool {
	return gcsClient == nil || cfg.GCSBucket == ""
}
