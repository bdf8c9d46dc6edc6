package db

import (
	"facelog/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

func Init() {
	var (
		db  *gorm.DB
		err error
	)
	conf := &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}
	if config.MYSQL_DSN != "" {
		db, err = gorm.Open(mysql.Open(config.MYSQL_DSN), conf)
	} else {
		db, err = gorm.Open(sqlite.Open(config.SQLITE_FILE), conf)
	}
	if err != nil || db == nil {
		panic(err)
	}
	Instance = db
}
