// Package mock provides in-memory stand-ins for external dependencies
// used by the integration suite.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory SQLite database. Tables are migrated once
// from the given model set; ClearDB wipes rows between scenarios.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
	name   string
}

// NewDb returns the singleton test database, creating and migrating it
// on first use.
func NewDb(name string, models map[string]any) *Db {
	dbOnce.Do(func() {
		db = open(name, models)
	})
	return db
}

func open(name string, models map[string]any) *Db {
	// Shared cache keeps the same database visible to every connection
	// the server opens.
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	dbSQL.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to open test database: " + err.Error())
	}

	d := &Db{DbConn: conn, models: models, name: name}
	if err := d.migrate(); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}
	return d
}

func (d *Db) migrate() error {
	modelList := make([]any, 0, len(d.models))
	for _, model := range d.models {
		modelList = append(modelList, model)
	}
	if err := d.DbConn.AutoMigrate(modelList...); err != nil {
		return err
	}
	for _, model := range modelList {
		if !d.DbConn.Migrator().HasTable(model) {
			return fmt.Errorf("table for model %T was not created", model)
		}
	}
	return nil
}

// ClearDB deletes every row from every registered table.
func (d *Db) ClearDB() error {
	for _, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
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
