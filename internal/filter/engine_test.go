package filter

import (
	"testing"

	"github.com/shaiso/automata-workspace/internal/domain"
)

func cwlListing() []domain.FileRecord {
	return []domain.FileRecord{
		{
			Name:         "workflow/cwl/helloworld-slurmcern.cwl",
			LastModified: "2021-06-14T10:20:13",
			Size:         domain.Size{Raw: 965, HumanReadable: "965 Bytes"},
		},
		{
			Name:         "workflow/cwl/helloworld-job.yml",
			LastModified: "2021-06-14T10:20:14",
			Size:         domain.Size{Raw: 122, HumanReadable: "122 Bytes"},
		},
		{
			Name:         "workflow/cwl/helloworld.cwl",
			LastModified: "2021-06-14T10:20:14",
			Size:         domain.Size{Raw: 867, HumanReadable: "867 Bytes"},
		},
	}
}

func mustParse(t *testing.T, mode Mode, tokens ...string) *Spec {
	t.Helper()
	spec, err := Parse(mode, tokens)
	if err != nil {
		t.Fatalf("Parse(%v): %v", tokens, err)
	}
	return spec
}

func TestFilterFiles_Identity(t *testing.T) {
	records := cwlListing()

	got := FilterFiles(records, nil, mustParse(t, ModeFiles))
	if len(got) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(got))
	}
	for i := range records {
		if got[i].Name != records[i].Name {
			t.Errorf("record %d: expected %q, got %q", i, records[i].Name, got[i].Name)
		}
	}
}

func TestFilterFiles_NameSubstringCaseSensitive(t *testing.T) {
	records := []domain.FileRecord{
		{Name: "data/names.txt", LastModified: "2021-06-14T10:20:13", Size: domain.Size{Raw: 20}},
	}

	got := FilterFiles(records, nil, mustParse(t, ModeFiles, "name=names"))
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}

	got = FilterFiles(records, nil, mustParse(t, ModeFiles, "name=NAMES"))
	if len(got) != 0 {
		t.Errorf("name matching must be case-sensitive, got %d records", len(got))
	}
}

func TestFilterFiles_LastModifiedDatePrefix(t *testing.T) {
	got := FilterFiles(cwlListing(), nil, mustParse(t, ModeFiles, "last-modified=2021-06-14"))
	if len(got) != 3 {
		t.Fatalf("date prefix must match all three timestamps, got %d records", len(got))
	}
}

func TestFilterFiles_PatternRetainsOrder(t *testing.T) {
	pattern, err := NewPattern("**/*.cwl")
	if err != nil {
		t.Fatalf("NewPattern: %v", err)
	}

	got := FilterFiles(cwlListing(), pattern, mustParse(t, ModeFiles))
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Name != "workflow/cwl/helloworld-slurmcern.cwl" {
		t.Errorf("unexpected first record: %s", got[0].Name)
	}
	if got[1].Name != "workflow/cwl/helloworld.cwl" {
		t.Errorf("unexpected second record: %s", got[1].Name)
	}
}

func TestFilterFiles_NameAndSize(t *testing.T) {
	records := []domain.FileRecord{
		{Name: "data/names.txt", LastModified: "2021-06-14T10:20:13", Size: domain.Size{Raw: 20, HumanReadable: "20 Bytes"}},
	}

	tests := []struct {
		name   string
		tokens []string
		want   int
	}{
		{name: "both keys match", tokens: []string{"name=names", "size=20"}, want: 1},
		{name: "size mismatch empties result", tokens: []string{"name=names", "size=21"}, want: 0},
		{name: "name mismatch empties result", tokens: []string{"name=other", "size=20"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterFiles(records, nil, mustParse(t, ModeFiles, tt.tokens...))
			if len(got) != tt.want {
				t.Errorf("expected %d records, got %d", tt.want, len(got))
			}
		})
	}
}

func TestFilterFiles_RepeatedKeyIsOr(t *testing.T) {
	records := []domain.FileRecord{
		{Name: "data/names.txt", Size: domain.Size{Raw: 20}},
		{Name: "results/plot.png", Size: domain.Size{Raw: 4096}},
		{Name: "workflow/job.yml", Size: domain.Size{Raw: 122}},
	}

	got := FilterFiles(records, nil, mustParse(t, ModeFiles, "name=data", "name=results"))
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Name != "data/names.txt" || got[1].Name != "results/plot.png" {
		t.Errorf("unexpected records: %s, %s", got[0].Name, got[1].Name)
	}
}

func TestFilterFiles_EmptyResultIsNotNil(t *testing.T) {
	got := FilterFiles(cwlListing(), nil, mustParse(t, ModeFiles, "name=nomatch"))
	if got == nil {
		t.Fatal("filtered result must not be nil")
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d records", len(got))
	}
}

func TestFilterDiskUsage(t *testing.T) {
	records := []domain.DiskUsageRecord{
		{Name: "/merge/_packtivity", Size: domain.Size{Raw: 4096, HumanReadable: "4 KiB"}},
	}

	tests := []struct {
		name   string
		tokens []string
		want   int
	}{
		{name: "name matches", tokens: []string{"name=merge"}, want: 1},
		{name: "name does not match", tokens: []string{"name=not_valid"}, want: 0},
		{name: "size matches", tokens: []string{"size=4096"}, want: 1},
		{name: "size does not match", tokens: []string{"size=4095"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterDiskUsage(records, nil, mustParse(t, ModeDiskUsage, tt.tokens...))
			if got == nil {
				t.Fatal("filtered result must not be nil")
			}
			if len(got) != tt.want {
				t.Errorf("expected %d records, got %d", tt.want, len(got))
			}
		})
	}
}
