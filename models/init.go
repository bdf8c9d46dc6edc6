package models

import (
	"facelog/config"
	"facelog/db"
)

func Init() {
	db.Instance.AutoMigrate(&LogRecord{})
	db.Instance.AutoMigrate(&Person{})

	seedPeople(config.PEOPLE_SEED)
}
