package svc

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/xeipuuv/gojsonschema"
	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/stakehouse/pitboss/internal/audit/chain"
	configsrepo "github.com/stakehouse/pitboss/internal/repo/gorm/configs"
	configsvc "github.com/stakehouse/pitboss/internal/service/configs"
	"github.com/stakehouse/pitboss/services/admin/internal/config"
)

// ErrInvalidEnvelope marks a save request whose envelope failed the schema
// gate, before any type-specific validation ran.
var ErrInvalidEnvelope = errors.New("invalid save request")

// saveEnvelopeSchema gates the outer shape of a save request; the typed
// validators own everything inside payload.
const saveEnvelopeSchema = `{
	"type": "object",
	"required": ["payload"],
	"properties": {
		"payload": {"type": "object"},
		"notes": {"type": "string", "maxLength": 500}
	}
}`

type ServiceContext struct {
	Config  config.Config
	DB      *gorm.DB
	Cache   *redis.Client
	Audit   *chain.Writer
	Configs *configsvc.Service

	saveEnvelope *gojsonschema.Schema
}

func NewServiceContext(c config.Config) *ServiceContext {
	db, err := openDB(c.Database)
	logx.Must(err)
	logx.Must(configsrepo.AutoMigrate(db))

	var cache *redis.Client
	if c.Redis.Addr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
		})
	}

	auditPath := c.Audit.Path
	if auditPath == "" {
		auditPath = filepath.Join("data", "audit.log")
	}
	audit, err := chain.NewWriter(auditPath)
	logx.Must(err)

	envelope, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(saveEnvelopeSchema))
	logx.Must(err)

	svc := configsvc.NewService(configsvc.Deps{
		Games:    configsrepo.NewGameRepo(db),
		Versions: configsrepo.NewVersionRepo(db),
		Docs:     configsrepo.NewDocumentRepo(db),
		Audit:    audit,
		Cache:    cache,
		CacheTTL: time.Duration(c.Redis.TTLSeconds) * time.Second,
	})

	return &ServiceContext{
		Config:       c,
		DB:           db,
		Cache:        cache,
		Audit:        audit,
		Configs:      svc,
		saveEnvelope: envelope,
	}
}

// ValidateSaveEnvelope checks the outer request shape against the compiled
// schema. The first schema violation is wrapped into ErrInvalidEnvelope.
func (s *ServiceContext) ValidateSaveEnvelope(doc map[string]any) error {
	res, err := s.saveEnvelope.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return err
	}
	if !res.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidEnvelope, res.Errors()[0].String())
	}
	return nil
}

func openDB(c config.DatabaseConfig) (*gorm.DB, error) {
	dsn := c.DataSource
	switch c.Driver {
	case "postgres":
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	case "sqlite", "":
		if dsn == "" {
			dsn = filepath.Join("data", "pitboss.db")
		}
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}
	return nil, fmt.Errorf("unsupported database driver %q", c.Driver)
}
