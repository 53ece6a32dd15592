package db

import (
	"time"

	"github.com/go-xorm/xorm"
	"github.com/lonng/riichi/db/model"
	log "github.com/sirupsen/logrus"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

const pingInterval = 5 * time.Minute

var (
	database *xorm.Engine
	logger   = log.WithField("component", "model")
)

type options struct {
	showSQL      bool
	maxOpenConns int
	maxIdleConns int
}

// ModelOption specifies an option for opening the database.
type ModelOption func(*options)

// MaxIdleConns specifies the max idle connect numbers.
func MaxIdleConns(i int) ModelOption {
	return func(opts *options) {
		opts.maxIdleConns = i
	}
}

// MaxOpenConns specifies the max open connect numbers.
func MaxOpenConns(i int) ModelOption {
	return func(opts *options) {
		opts.maxOpenConns = i
	}
}

// ShowSQL logs every statement.
func ShowSQL(show bool) ModelOption {
	return func(opts *options) {
		opts.showSQL = show
	}
}

// keepAlive pings the database so pooled connections survive idle periods.
func keepAlive(done <-chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := database.Ping(); err != nil {
				logger.Warnf("Ping failed: %v", err)
			}
		case <-done:
			return
		}
	}
}

// MustStartup opens the database, syncs the schema and returns the closer.
// driver is "mysql" or "sqlite3".
func MustStartup(driver, dsn string, opts ...ModelOption) func() {
	settings := &options{
		maxIdleConns: defaultMaxConns,
		maxOpenConns: defaultMaxConns,
		showSQL:      true,
	}

	// options handle
	for _, opt := range opts {
		opt(settings)
	}

	logger.Infof("Driver=%s DSN=%s ShowSQL=%t MaxIdleConn=%v MaxOpenConn=%v",
		driver, dsn, settings.showSQL, settings.maxIdleConns, settings.maxOpenConns)

	// create database instance
	if db, err := xorm.NewEngine(driver, dsn); err != nil {
		panic(err)
	} else {
		database = db
	}

	database.SetLogger(&Logger{Entry: logger.WithField("orm", "xorm")})
	database.SetMaxIdleConns(settings.maxIdleConns)
	database.SetMaxOpenConns(settings.maxOpenConns)
	database.ShowSQL(settings.showSQL)

	if err := syncSchema(driver); err != nil {
		panic(err)
	}

	done := make(chan struct{})
	go keepAlive(done)

	closer := func() {
		close(done)
		database.Close()
		logger.Info("stopped")
	}

	return closer
}

func syncSchema(driver string) error {
	beans := []interface{}{
		new(model.Game),
		new(model.History),
	}
	if driver == DriverMySQL {
		return database.StoreEngine("InnoDB").Sync2(beans...)
	}
	return database.Sync2(beans...)
}
