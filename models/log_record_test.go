package models

import (
	"reflect"
	"testing"
	"time"
)

func TestPercentages(t *testing.T) {
	labels := []string{"Happy", "Sad", "Neutral"}
	tests := []struct {
		name     string
		observed []string
		want     map[string]float64
	}{
		{
			"empty store",
			nil,
			map[string]float64{"Happy": 0, "Sad": 0, "Neutral": 0},
		},
		{
			"single label",
			[]string{"Happy"},
			map[string]float64{"Happy": 100, "Sad": 0, "Neutral": 0},
		},
		{
			"mixed",
			[]string{"Happy", "Happy", "Sad", "Neutral"},
			map[string]float64{"Happy": 50, "Sad": 25, "Neutral": 25},
		},
		{
			"values outside the label set are counted in the total only",
			[]string{"Happy", "Surprise"},
			map[string]float64{"Happy": 50, "Sad": 0, "Neutral": 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percentages(labels, tt.observed); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Percentages() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatTimeOfDay(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"afternoon", time.Date(2024, 5, 13, 19, 4, 5, 0, time.UTC), "07:04:05 PM"},
		{"morning", time.Date(2024, 5, 13, 0, 30, 0, 0, time.UTC), "12:30:00 AM"},
		{"noon", time.Date(2024, 5, 13, 12, 0, 0, 0, time.UTC), "12:00:00 PM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimeOfDay(tt.at); got != tt.want {
				t.Errorf("FormatTimeOfDay() = %v, want %v", got, tt.want)
			}
		})
	}
}
