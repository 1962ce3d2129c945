package pipeline

import (
	"reflect"
	"testing"

	"github.com/diillson/electricity-dashboard-go/internal/domain/entity"
)

func names(records []entity.MergedRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ProvinceName)
	}
	return out
}

func TestFilter(t *testing.T) {
	records := Merge(alphaBeta(), nil)

	tests := []struct {
		name  string
		query entity.Query
		want  []string
	}{
		{"no filters", entity.Query{}, []string{"Alpha", "Beta"}},
		{"province exact", entity.Query{Province: "Alpha"}, []string{"Alpha"}},
		{"province is case sensitive", entity.Query{Province: "alpha"}, []string{}},
		{"search substring", entity.Query{Search: "eta"}, []string{"Beta"}},
		{"search case insensitive", entity.Query{Search: "ALP"}, []string{"Alpha"}},
		{"both must hold", entity.Query{Province: "Alpha", Search: "eta"}, []string{}},
		{"both hold", entity.Query{Province: "Beta", Search: "b"}, []string{"Beta"}},
		{"shared substring", entity.Query{Search: "a"}, []string{"Alpha", "Beta"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(Filter(records, tt.query))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterIdentityAndIdempotence(t *testing.T) {
	records := sampleRecords()

	if got := Filter(records, entity.Query{}); !reflect.DeepEqual(got, records) {
		t.Fatal("empty query must return the records unchanged")
	}

	for _, q := range []entity.Query{
		{Search: "sumatra"},
		{Province: "Aceh"},
		{Province: "West Sumatra", Search: "west"},
		{Search: "nothing"},
	} {
		once := Filter(records, q)
		twice := Filter(once, q)
		if !reflect.DeepEqual(names(once), names(twice)) {
			t.Fatalf("%+v: filter not idempotent: %v vs %v", q, names(once), names(twice))
		}
	}
}

func TestFilterReturnsNewSlice(t *testing.T) {
	records := sampleRecords()
	got := Filter(records, entity.Query{})
	got[0].ProvinceName = "changed"
	if records[0].ProvinceName == "changed" {
		t.Fatal("Filter must not share its backing array with the input")
	}
}

func TestProvinces(t *testing.T) {
	records := append(sampleRecords(), entity.MergedRecord{UserRecord: entity.UserRecord{ProvinceName: "Aceh"}})
	want := []string{"Aceh", "North Sumatra", "Papua Highlands", "West Sumatra"}
	if got := Provinces(records); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
