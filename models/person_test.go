package models

import (
	"reflect"
	"testing"
)

func TestParsePeopleSeed(t *testing.T) {
	tests := []struct {
		name string
		seed string
		want map[int]string
	}{
		{
			"default",
			"1:Amitesh,2:Maitreyi,3:Vishwas,4:Aayat",
			map[int]string{1: "Amitesh", 2: "Maitreyi", 3: "Vishwas", 4: "Aayat"},
		},
		{
			"whitespace and empty entries",
			" 1:One , ,2:Two",
			map[int]string{1: "One", 2: "Two"},
		},
		{
			"malformed entries skipped",
			"x:One,2,3:,0:Zero,4:Four",
			map[int]string{4: "Four"},
		},
		{
			"empty seed",
			"",
			map[int]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParsePeopleSeed(tt.seed); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePeopleSeed() = %v, want %v", got, tt.want)
			}
		})
	}
}
