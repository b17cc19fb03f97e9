package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/satwik073/Priscus-server/internal/storage"

	_ "modernc.org/sqlite" // pure Go SQLite driver, no CGO
)

// Dial returns a DialFunc that opens a gorm handle over modernc.org/sqlite and
// runs migrate on it.
func Dial(path string, migrate func(*gorm.DB) error) storage.DialFunc[*gorm.DB] {
	return func(ctx context.Context) (*gorm.DB, error) {
		dsn := path + "?_pragma=busy_timeout(5000)&_time_format=sqlite"
		sqlDB, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}

		db, err := gorm.Open(gormsqlite.Dialector{Conn: sqlDB}, &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		if err := db.WithContext(ctx).Exec("PRAGMA journal_mode = WAL;").Error; err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}

		// SQLite only supports one writer at a time
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(time.Hour)

		if migrate != nil {
			if err := migrate(db.WithContext(ctx)); err != nil {
				_ = sqlDB.Close()
				return nil, fmt.Errorf("failed to migrate database: %w", err)
			}
		}
		return db, nil
	}
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
