// Package mock provides in-process stand-ins for the infrastructure the
// integration tests need: a shared-memory sqlite database and a miniredis
// backed cache.
package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db wraps a gorm connection to a shared in-memory sqlite database. The
// connection pool is capped at one so every scenario sees the same memory.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens (once per test binary) the in-memory database and migrates the
// given models. The map keys are table names used by the db assertion steps.
func NewDb(models map[string]any) *Db {
	dbOnce.Do(func() {
		db = open(models)
	})
	return db
}

func open(models map[string]any) *Db {
	sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to open test database: " + err.Error())
	}

	d := &Db{DbConn: conn, models: models}
	if err := d.migrate(); err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %v", err))
	}
	return d
}

func (d *Db) migrate() error {
	modelList := make([]any, 0, len(d.models))
	for _, m := range d.models {
		modelList = append(modelList, m)
	}
	if err := d.DbConn.AutoMigrate(modelList...); err != nil {
		return err
	}
	for _, m := range modelList {
		if !d.DbConn.Migrator().HasTable(m) {
			return fmt.Errorf("table for model %T was not created", m)
		}
	}
	return nil
}

// ClearDB deletes every row from every registered table. Tables with foreign
// keys into others are cleared first so the deletes never trip a constraint.
func (d *Db) ClearDB() error {
	for _, table := range []string{"entries", "plans", "categories", "settings"} {
		model, ok := d.models[table]
		if !ok {
			continue
		}
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return err
		}
		err = d.DbConn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", table).Error
		if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
			return err
		}
	}
	return nil
}

// GetModel returns the registered model for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
