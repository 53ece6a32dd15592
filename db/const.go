package db

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

const defaultMaxConns = 10
