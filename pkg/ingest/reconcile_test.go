package ingest

import (
	"reflect"
	"testing"
)

func TestPartitionThemes(t *testing.T) {
	tests := []struct {
		name        string
		candidates  []string
		existing    []string
		wantKnown   []string
		wantUnknown []string
	}{
		{
			name:        "split between known and new",
			candidates:  []string{"Work", "Gardening", "Health"},
			existing:    []string{"Work", "Health", "Sleep"},
			wantKnown:   []string{"Work", "Health"},
			wantUnknown: []string{"Gardening"},
		},
		{
			name:        "all known",
			candidates:  []string{"Work", "Health"},
			existing:    []string{"Health", "Work"},
			wantKnown:   []string{"Work", "Health"},
			wantUnknown: []string{},
		},
		{
			name:        "all new against empty catalog",
			candidates:  []string{"Work", "Health"},
			existing:    []string{},
			wantKnown:   []string{},
			wantUnknown: []string{"Work", "Health"},
		},
		{
			name:        "duplicates collapse to first occurrence",
			candidates:  []string{"Work", "Work", "Sleep", "Sleep"},
			existing:    []string{"Work"},
			wantKnown:   []string{"Work"},
			wantUnknown: []string{"Sleep"},
		},
		{
			name:        "matching is case-sensitive",
			candidates:  []string{"work"},
			existing:    []string{"Work"},
			wantKnown:   []string{},
			wantUnknown: []string{"work"},
		},
		{
			name:        "no candidates",
			candidates:  []string{},
			existing:    []string{"Work"},
			wantKnown:   []string{},
			wantUnknown: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			known, unknown := PartitionThemes(tt.candidates, tt.existing)

			if !reflect.DeepEqual(known, tt.wantKnown) {
				t.Errorf("known = %v, want %v", known, tt.wantKnown)
			}
			if !reflect.DeepEqual(unknown, tt.wantUnknown) {
				t.Errorf("unknown = %v, want %v", unknown, tt.wantUnknown)
			}
		})
	}
}
