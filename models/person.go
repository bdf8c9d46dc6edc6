package models

import (
	"strconv"
	"strings"

	"facelog/db"

	"gorm.io/gorm/clause"
)

// Person maps an enrollment id (as used by the LBPH classifier and the
// dataset tool) to a display name. Unknown ids fall back to "UNKNOWN"
// at classification time.
type Person struct {
	ID   uint64 `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100)" json:"name"`
}

func (Person) TableName() string {
	return "people"
}

// EnrollPerson inserts or renames an enrolled identity.
func EnrollPerson(id uint64, name string) error {
	p := Person{ID: id, Name: name}
	return db.Instance.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&p).Error
}

// PeopleByID loads the full enrollment table.
func PeopleByID() (map[int]string, error) {
	var people []Person
	if err := db.Instance.Find(&people).Error; err != nil {
		return nil, err
	}
	result := make(map[int]string, len(people))
	for _, p := range people {
		result[int(p.ID)] = p.Name
	}
	return result, nil
}

// ParsePeopleSeed parses "1:Amitesh,2:Maitreyi" style seed strings.
// Malformed entries are skipped.
func ParsePeopleSeed(seed string) map[int]string {
	result := map[int]string{}
	for _, entry := range strings.Split(seed, ",") {
		parts := strings.SplitN(strings.TrimSpace(entry), ":", 2)
		if len(parts) != 2 || parts[1] == "" {
			continue
		}
		id, err := strconv.Atoi(parts[0])
		if err != nil || id <= 0 {
			continue
		}
		result[id] = parts[1]
	}
	return result
}

func seedPeople(seed string) {
	var count int64
	if db.Instance.Model(&Person{}).Count(&count).Error != nil || count > 0 {
		return
	}
	for id, name := range ParsePeopleSeed(seed) {
		_ = EnrollPerson(uint64(id), name)
	}
}
