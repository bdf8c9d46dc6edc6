package models

import (
	"time"

	"facelog/db"
)

// LogRecord is one sighting of a recognized (or unknown) face.
// Records are append-only; the surrogate id preserves insertion order.
type LogRecord struct {
	ID      uint64 `gorm:"primaryKey" json:"-"`
	Name    string `gorm:"type:varchar(100)" json:"name"`
	Emotion string `gorm:"type:varchar(30)" json:"emotion"`
	Time    string `gorm:"type:varchar(20)" json:"time"`
	Day     string `gorm:"type:varchar(20)" json:"day"`
	Date    string `gorm:"type:varchar(20)" json:"date"`
}

func (LogRecord) TableName() string {
	return "logs"
}

// AppendLog persists a sighting with formatted local timestamps.
func AppendLog(name, emotion string, at time.Time) error {
	rec := LogRecord{
		Name:    name,
		Emotion: emotion,
		Time:    FormatTimeOfDay(at),
		Day:     at.Format("Monday"),
		Date:    at.Format("2006-01-02"),
	}
	return db.Instance.Create(&rec).Error
}

// FormatTimeOfDay renders e.g. "07:04:05 PM"
func FormatTimeOfDay(at time.Time) string {
	return at.Format("03:04:05 PM")
}

// RecentLogs returns the latest records, newest first.
func RecentLogs(limit int) (result []LogRecord, err error) {
	err = db.Instance.Order("id DESC").Limit(limit).Find(&result).Error
	return
}

// RecentEmotions returns just the emotion column of the latest records, newest first.
func RecentEmotions(limit int) (result []string, err error) {
	err = db.Instance.Model(&LogRecord{}).Order("id DESC").Limit(limit).Pluck("emotion", &result).Error
	return
}

// Percentages returns, for each label, its share (0-100) among the observed
// values. Labels never seen map to 0, including when nothing was observed at
// all - an empty store is not an error.
func Percentages(labels []string, observed []string) map[string]float64 {
	counts := make(map[string]int, len(labels))
	for _, o := range observed {
		counts[o]++
	}
	result := make(map[string]float64, len(labels))
	for _, label := range labels {
		if len(observed) == 0 {
			result[label] = 0
			continue
		}
		result[label] = float64(counts[label]) * 100 / float64(len(observed))
	}
	return result
}
