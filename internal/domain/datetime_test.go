package domain

import "testing"

func TestEntryToExif(t *testing.T) {
	tests := []struct {
		entry string
		want  string
		ok    bool
	}{
		{"", "", true},
		{"2024-01-02", "2024:01:02 00:00:00", true},
		{"2024-01-02 13:37", "2024:01:02 13:37:00", true},
		{"2024-01-02 13:37:59", "2024:01:02 13:37:59", true},
		{"2024-01-02T13:37:59", "2024:01:02 13:37:59", true},
		{"2024/01/02", "", false},
		{"02-01-2024", "", false},
		{"2024-13-02", "", false},
		{"yesterday", "", false},
	}
	for _, tt := range tests {
		got, err := EntryToExif(tt.entry)
		if (err == nil) != tt.ok {
			t.Errorf("EntryToExif(%q) error = %v, want ok=%v", tt.entry, err, tt.ok)
			continue
		}
		if got != tt.want {
			t.Errorf("EntryToExif(%q) = %q, want %q", tt.entry, got, tt.want)
		}
	}
}

func TestEntryToExifRoundTrip(t *testing.T) {
	entries := []string{"2024-01-02", "2024-01-02 13:37", "2024-01-02T13:37:59"}
	for _, entry := range entries {
		canonical, err := EntryToExif(entry)
		if err != nil {
			t.Fatalf("EntryToExif(%q): %v", entry, err)
		}
		again, err := EntryToExif(canonical)
		if err != nil {
			t.Fatalf("canonical form %q should re-validate: %v", canonical, err)
		}
		if again != canonical {
			t.Errorf("round trip changed %q to %q", canonical, again)
		}
	}
}
