package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPetPoolExpandsStacks(t *testing.T) {
	t.Parallel()

	pool := BuildPetPool([]Pet{
		{ID: "p1", Class: "Fire", Star: 3, Amount: 2},
		{ID: "p2", Class: "Water", Star: 1, Amount: 1},
		{ID: "p3", Class: "Fire", Star: 1, Amount: 0},
	})

	assert.Equal(t, []PetID{"p1", "p1", "p2"}, pool.All)
	assert.Equal(t, []PetID{"p1", "p1"}, pool.ByStar[3]["Fire"])
	assert.Equal(t, []PetID{"p2"}, pool.ByStar[1]["Water"])
	assert.Empty(t, pool.ByStar[1]["Fire"])
}

func TestPetPoolCandidatesOrderedByTier(t *testing.T) {
	t.Parallel()

	pool := PetPool{ByStar: map[Star]map[PetClass][]PetID{
		4: {"Fire": {"f40"}},
		1: {"Fire": {"f10"}},
		2: {"Fire": {"f20", "f21"}, "Water": {"w22"}},
	}}

	assert.Equal(t, []PetID{"f20", "f21", "f40"}, pool.Candidates("Fire", 2))
	assert.Equal(t, []PetID{"f10", "f20", "f21", "f40"}, pool.Candidates("Fire", 0))
	assert.Empty(t, pool.Candidates("Wind", 1))
}

func TestAvailablePetIDsSubtractsMultiset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		all  []PetID
		used []PetID
		want []PetID
	}{
		{name: "nothing used", all: []PetID{"a", "b"}, used: nil, want: []PetID{"a", "b"}},
		{name: "one unit of a stack", all: []PetID{"a", "a", "b"}, used: []PetID{"a"}, want: []PetID{"a", "b"}},
		{name: "used more than owned", all: []PetID{"a"}, used: []PetID{"a", "a"}, want: []PetID{}},
		{name: "unknown used id", all: []PetID{"c"}, used: []PetID{"z"}, want: []PetID{"c"}},
		{name: "numeric-looking ids are distinct strings", all: []PetID{"12", "12.7"}, used: []PetID{"12"}, want: []PetID{"12.7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AvailablePetIDs(tt.all, tt.used))
		})
	}
}

func TestRemoveUnitsIgnoresEmptyIDs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []PetID{"a", "c"}, RemoveUnits([]PetID{"a", "b", "c"}, "b", ""))
}

func TestSplitBreedingByRole(t *testing.T) {
	t.Parallel()

	pool := SplitBreeding([]DNAPet{
		{ID: "m1", Amount: 2, CanMom: true},
		{ID: "d1", Amount: 1},
		{ID: "m2", Amount: 0, CanMom: true},
	})

	assert.Equal(t, []PetID{"m1", "m1"}, pool.Moms)
	assert.Equal(t, []PetID{"d1"}, pool.Dads)
	assert.Equal(t, []PetID{"m1", "m1", "d1"}, pool.All)
}

func TestPetString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Blaze (3★ Fire)", Pet{Name: "Blaze", Class: "Fire", Star: 3}.String())
	assert.Equal(t, "Unknown (0★ Unknown)", Pet{}.String())
}
