package partition

import (
	"reflect"
	"sort"
	"testing"

	"datasplit/internal/config"
)

func TestComputeSizes(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		ratios config.Ratios
		want   Sizes
	}{
		{name: "five files default ratios", n: 5, ratios: config.DefaultRatios(), want: Sizes{Train: 4, Val: 0, Test: 1}},
		{name: "hundred files", n: 100, ratios: config.DefaultRatios(), want: Sizes{Train: 80, Val: 10, Test: 10}},
		{name: "remainder goes to test", n: 7, ratios: config.Ratios{Train: 0.5, Val: 0.25, Test: 0.25}, want: Sizes{Train: 3, Val: 1, Test: 3}},
		{name: "empty", n: 0, ratios: config.DefaultRatios(), want: Sizes{}},
		{name: "all train", n: 3, ratios: config.Ratios{Train: 1}, want: Sizes{Train: 3}},
		{name: "clamped overshoot", n: 10_000_000, ratios: config.Ratios{Train: 1, Val: 1e-7}, want: Sizes{Train: 10_000_000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSizes(tt.n, tt.ratios)
			if got != tt.want {
				t.Fatalf("ComputeSizes(%d) = %+v, want %+v", tt.n, got, tt.want)
			}
			if got.Total() != tt.n {
				t.Fatalf("sizes total %d, want %d", got.Total(), tt.n)
			}
		})
	}
}

func TestAssignCoversEveryIndexOnce(t *testing.T) {
	ratioSets := []config.Ratios{
		config.DefaultRatios(),
		{Train: 0.6, Val: 0.2, Test: 0.2},
		{Train: 0.34, Val: 0.33, Test: 0.33},
		{Train: 0, Val: 0, Test: 1},
	}
	for _, ratios := range ratioSets {
		for n := 0; n <= 37; n++ {
			a := Assign(n, ratios, NewRand(int64(n)))
			var all []int
			all = append(all, a.Train...)
			all = append(all, a.Val...)
			all = append(all, a.Test...)
			if len(all) != n {
				t.Fatalf("n=%d ratios=%+v: assigned %d indices", n, ratios, len(all))
			}
			sort.Ints(all)
			for i, idx := range all {
				if idx != i {
					t.Fatalf("n=%d ratios=%+v: index %d missing or duplicated", n, ratios, i)
				}
			}
			if a.Sizes() != ComputeSizes(n, ratios) {
				t.Fatalf("n=%d: group sizes %+v, want %+v", n, a.Sizes(), ComputeSizes(n, ratios))
			}
		}
	}
}

func TestAssignIsDeterministic(t *testing.T) {
	first := Assign(50, config.DefaultRatios(), NewRand(42))
	second := Assign(50, config.DefaultRatios(), NewRand(42))
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed produced different assignments:\n%v\n%v", first, second)
	}
}

func TestAssignDiffersAcrossSeeds(t *testing.T) {
	first := Assign(50, config.DefaultRatios(), NewRand(42))
	second := Assign(50, config.DefaultRatios(), NewRand(7))
	if reflect.DeepEqual(first, second) {
		t.Fatal("different seeds produced identical assignments")
	}
}

func TestAssignSlicesPermutationInOrder(t *testing.T) {
	perm := Permutation(10, NewRand(3))
	a := Assign(10, config.DefaultRatios(), NewRand(3))
	var joined []int
	joined = append(joined, a.Train...)
	joined = append(joined, a.Val...)
	joined = append(joined, a.Test...)
	if !reflect.DeepEqual(joined, perm) {
		t.Fatalf("groups %v do not concatenate to permutation %v", joined, perm)
	}
}

func TestAssignGroupsDoNotAlias(t *testing.T) {
	a := Assign(10, config.DefaultRatios(), NewRand(1))
	before := append([]int(nil), a.Val...)
	_ = append(a.Train, -1)
	if !reflect.DeepEqual(a.Val, before) {
		t.Fatalf("appending to train changed val: %v -> %v", before, a.Val)
	}
}

func TestLookup(t *testing.T) {
	a := Assignment{Train: []int{2, 0}, Val: []int{3}, Test: []int{1}}
	want := []Split{Train, Test, Train, Val}
	if got := a.Lookup(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Lookup = %v, want %v", got, want)
	}
	if a.Indices(Split("holdout")) != nil {
		t.Fatal("unknown split should have no indices")
	}
}
