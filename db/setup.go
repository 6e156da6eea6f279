package db

import (
	"fmt"

	"github.com/bhulekh-dev/bhulekh/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDatabase opens the connection described by dbType ("postgres",
// "mysql" or "sqlite") and the driver-specific dsn.
func ConnectDatabase(dbType, dsn string) error {
	var dialector gorm.Dialector

	switch dbType {
	case "postgres", "postgresql", "":
		dialector = postgres.Open(dsn)
	case "mysql", "mariadb":
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return fmt.Errorf("unsupported DB_TYPE: %s", dbType)
	}

	var err error

	DB, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	models := []interface{}{
		&models.User{},
		&models.Project{},
		&models.Raiyat{},
		&models.LandRecord{},
	}

	migrator := DB.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
