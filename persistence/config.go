package persistence

import (
	"database/sql"
	"errors"
	"os"
	"strings"

	_ "github.com/go-sql-driver/mysql"
)

type DatabaseConfig struct {
	DriverType string
	DriverArgs string
}

// StorageConfig selects the backing of the storage port.
// STORAGE_DRIVER: memory | file | mysql (default file).
type StorageConfig struct {
	Driver string
	Dir    string

	Database *DatabaseConfig
}

func ParseStorageConfigFromEnv() (*StorageConfig, error) {
	driver := os.Getenv("STORAGE_DRIVER")
	if driver == "" {
		driver = "file"
	}

	switch driver {
	case "memory":
		return &StorageConfig{Driver: driver}, nil
	case "file":
		dir := os.Getenv("STORAGE_DIR")
		if dir == "" {
			dir = "data"
		}
		return &StorageConfig{Driver: driver, Dir: dir}, nil
	case "mysql":
		dbConfig, err := ParseDatabaseConfigFromEnv()
		if err != nil {
			return nil, err
		}
		return &StorageConfig{Driver: driver, Database: dbConfig}, nil
	}
	return nil, errors.New("unsupported storage driver: " + driver)
}

func ParseDatabaseConfigFromEnv() (*DatabaseConfig, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, errors.New("environment variable DATABASE_URL is not set")
	}
	return &DatabaseConfig{DriverType: "mysql", DriverArgs: databaseURL}, nil
}

// PrepareMysqlDatabase creates the database named in the dsn when it does
// not exist yet.
func PrepareMysqlDatabase(dsn string) error {
	idx := strings.LastIndex(dsn, "/")
	if idx < 0 {
		return errors.New("invalid mysql dsn: " + dsn)
	}
	databaseName := dsn[idx+1:]
	if argsIdx := strings.Index(databaseName, "?"); argsIdx >= 0 {
		databaseName = databaseName[:argsIdx]
	}
	if databaseName == "" {
		return errors.New("mysql dsn has no database name: " + dsn)
	}

	db, err := sql.Open("mysql", dsn[:idx+1])
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec("CREATE DATABASE IF NOT EXISTS " + databaseName + " CHARACTER SET utf8mb4")
	return err
}
