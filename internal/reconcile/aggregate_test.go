package reconcile

import (
	"math/rand"
	"reflect"
	"testing"

	"AccidentAtlas/internal/domain"
)

func TestAggregateSums(t *testing.T) {
	t.Parallel()

	rows := []domain.StatRecord{
		{Name: "META", Deaths: 3},
		{Name: "META", Deaths: 5},
		{Name: "CAUCA", Deaths: 2},
	}

	result := Aggregate(rows, AliasStats)

	want := []domain.AggregatedStat{
		{Key: "cauca", Deaths: 2},
		{Key: "meta", Deaths: 8},
	}
	if !reflect.DeepEqual(result.Stats, want) {
		t.Fatalf("unexpected aggregation: %+v", result.Stats)
	}
	if result.Dropped != 0 {
		t.Fatalf("expected no dropped rows, got %d", result.Dropped)
	}
}

func TestAggregateMergesSpellingVariants(t *testing.T) {
	t.Parallel()

	rows := []domain.StatRecord{
		{Name: "VALLE DEL CAUCA", Deaths: 4},
		{Name: "VALLE", Deaths: 6},
		{Name: "Valle", Deaths: 1},
	}

	result := Aggregate(rows, AliasStats)

	if len(result.Stats) != 1 {
		t.Fatalf("expected one bucket, got %+v", result.Stats)
	}
	if result.Stats[0].Key != "valle" || result.Stats[0].Deaths != 11 {
		t.Fatalf("unexpected bucket: %+v", result.Stats[0])
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	t.Parallel()

	rows := []domain.StatRecord{
		{Name: "META", Deaths: 1},
		{Name: "CAUCA", Deaths: 2},
		{Name: "META", Deaths: 3},
		{Name: "HUILA", Deaths: 4},
		{Name: "CAUCA", Deaths: 5},
	}

	baseline := Aggregate(rows, AliasStats)

	shuffled := make([]domain.StatRecord, len(rows))
	copy(shuffled, rows)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		if got := Aggregate(shuffled, AliasStats); !reflect.DeepEqual(got, baseline) {
			t.Fatalf("aggregation depends on row order: %+v vs %+v", got, baseline)
		}
	}
}

func TestAggregateDropsNamelessRows(t *testing.T) {
	t.Parallel()

	rows := []domain.StatRecord{
		{Name: "META", Deaths: 3},
		{Name: "", Deaths: 7},
		{Name: "", Deaths: 1},
	}

	result := Aggregate(rows, AliasStats)

	if result.Dropped != 2 {
		t.Fatalf("expected 2 dropped rows, got %d", result.Dropped)
	}
	if len(result.Stats) != 1 || result.Stats[0].Deaths != 3 {
		t.Fatalf("dropped rows leaked into aggregation: %+v", result.Stats)
	}
}
