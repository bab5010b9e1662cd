package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/cubefs/cubefs/blobstore/common/trace"

	apierrors "github.com/openseries/seriesdb/errors"
	"github.com/openseries/seriesdb/master/idgenerator"
	"github.com/openseries/seriesdb/master/store"
	"github.com/openseries/seriesdb/proto"
)

const idGeneratorName = "sid"

const defaultTaskPoolNum = 4

type Catalog interface {
	CreateDatabase(ctx context.Context, rules *proto.DatabaseRules) error
	GetDatabase(ctx context.Context, name string) (*proto.DatabaseRules, error)
	ListDatabases(ctx context.Context) ([]string, error)
	Load(ctx context.Context) error
	Close()
}

// Provisioner rolls a created database out to the storage engine. Provision
// runs from a retried background task, so the same database may be handed
// over more than once and implementations have to tolerate replays.
type Provisioner interface {
	ProvisionDatabase(ctx context.Context, rules *proto.DatabaseRules) error
}

type noopProvisioner struct{}

func (noopProvisioner) ProvisionDatabase(ctx context.Context, rules *proto.DatabaseRules) error {
	return nil
}

type Config struct {
	TaskPoolNum int `json:"task_pool_num"`

	Store       *store.Store `json:"-"`
	Provisioner Provisioner  `json:"-"`
}

type catalog struct {
	allDatabases *databaseSet

	cfg         *Config
	storage     *storage
	idGenerator idgenerator.IDGenerator
	provisioner Provisioner
	taskMgr     *taskMgr

	lock sync.RWMutex
}

func NewCatalog(ctx context.Context, cfg *Config) Catalog {
	span := trace.SpanFromContextSafe(ctx)

	if cfg.TaskPoolNum <= 0 {
		cfg.TaskPoolNum = defaultTaskPoolNum
	}
	if cfg.Provisioner == nil {
		cfg.Provisioner = noopProvisioner{}
	}

	generator, err := idgenerator.NewIDGenerator(cfg.Store)
	if err != nil {
		span.Fatalf("new id generator failed: %s", err)
	}

	c := &catalog{
		allDatabases: &databaseSet{},
		cfg:          cfg,
		storage:      newStorage(cfg.Store),
		idGenerator:  generator,
		provisioner:  cfg.Provisioner,
		taskMgr:      newTaskMgr(cfg.TaskPoolNum),
	}
	c.taskMgr.Register(taskTypeProvisionDatabase, c.provisionDatabase)
	c.taskMgr.Start()

	return c
}

func (c *catalog) CreateDatabase(ctx context.Context, rules *proto.DatabaseRules) error {
	span := trace.SpanFromContextSafe(ctx)

	if err := validateRules(rules); err != nil {
		span.Warnf("create database rules invalid: %s", err)
		return err
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	if _, ok := c.allDatabases.Get(rules.Name); ok {
		span.Warnf("database[%s] already created", rules.Name)
		return apierrors.ErrDatabaseAlreadyCreated
	}

	_, sid, err := c.idGenerator.Alloc(ctx, idGeneratorName, 1)
	if err != nil {
		span.Errorf("alloc sid for database[%s] failed: %s", rules.Name, err)
		return err
	}

	info := &databaseInfo{
		Version:    databaseInfoVersion,
		Sid:        sid,
		Status:     DatabaseStatusInit,
		CreateTime: time.Now().UnixMilli(),
	}
	info.ToDBRules(rules)

	// the record has to be on disk before anyone can observe the database
	if err = c.storage.PutDatabase(ctx, info); err != nil {
		span.Errorf("put database[%s] to storage failed: %s", rules.Name, err)
		return err
	}
	c.allDatabases.Put(newDatabase(info))

	span.Infof("create database[%s] success, sid %d", info.Name, info.Sid)

	c.taskMgr.Send(ctx, &task{
		sid:  info.Sid,
		typ:  taskTypeProvisionDatabase,
		args: []byte(info.Name),
	})
	return nil
}

func (c *catalog) GetDatabase(ctx context.Context, name string) (*proto.DatabaseRules, error) {
	if name == "" {
		return nil, apierrors.ErrInvalidDatabaseName
	}

	db, ok := c.allDatabases.Get(name)
	if !ok {
		return nil, apierrors.ErrDatabaseDoesNotExist
	}
	return db.GetInfo().ToProtoRules(), nil
}

func (c *catalog) ListDatabases(ctx context.Context) ([]string, error) {
	return c.allDatabases.Names(), nil
}

func (c *catalog) Load(ctx context.Context) error {
	span := trace.SpanFromContextSafe(ctx)

	infos, err := c.storage.ListDatabases(ctx)
	if err != nil {
		span.Errorf("read database data from rocksdb failed, err: %s", err)
		return err
	}

	for _, info := range infos {
		c.allDatabases.Put(newDatabase(info))
		if info.Status == DatabaseStatusInit {
			c.taskMgr.Send(ctx, &task{
				sid:  info.Sid,
				typ:  taskTypeProvisionDatabase,
				args: []byte(info.Name),
			})
		}
	}
	return nil
}

func (c *catalog) provisionDatabase(ctx context.Context, sid proto.Sid, args []byte) error {
	span := trace.SpanFromContextSafe(ctx)

	name := string(args)
	db, ok := c.allDatabases.Get(name)
	if !ok {
		span.Warnf("database[%s] of provision task not found, drop the task", name)
		return nil
	}

	info := db.GetInfo()
	if info.Status == DatabaseStatusNormal {
		return nil
	}

	if err := c.provisioner.ProvisionDatabase(ctx, info.ToProtoRules()); err != nil {
		span.Warnf("provision database[%s] failed: %s", name, err)
		return err
	}

	// persist the flip first, memory only changes after the write commits
	info.Status = DatabaseStatusNormal
	if err := c.storage.PutDatabase(ctx, info); err != nil {
		span.Errorf("put database[%s] to storage failed: %s", name, err)
		return err
	}
	db.setStatus(DatabaseStatusNormal)

	span.Infof("database[%s] provisioned, sid %d", name, sid)
	return nil
}

func (c *catalog) Close() {
	c.taskMgr.Close()
}
