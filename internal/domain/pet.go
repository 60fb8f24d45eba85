package domain

import (
	"fmt"
	"sort"
)

// PetID is the server's opaque pet identifier. The empty id means no pet.
type PetID string

type PetClass string

type Star int

// Pet is an inventory entry. Amount > 1 means a stack of interchangeable units.
type Pet struct {
	ID     PetID
	Name   string
	Class  PetClass
	Star   Star
	Amount int
}

func (p Pet) String() string {
	name := p.Name
	if name == "" {
		name = "Unknown"
	}
	class := p.Class
	if class == "" {
		class = "Unknown"
	}

	return fmt.Sprintf("%s (%d★ %s)", name, p.Star, class)
}

// PetPool is a snapshot of the pet inventory expanded into individual units.
type PetPool struct {
	// ByStar buckets units by their exact star and class, in inventory order.
	ByStar map[Star]map[PetClass][]PetID
	// All lists every unit in inventory order.
	All []PetID

	stars []Star
}

func BuildPetPool(pets []Pet) PetPool {
	pool := PetPool{ByStar: make(map[Star]map[PetClass][]PetID)}

	for _, pet := range pets {
		classes, ok := pool.ByStar[pet.Star]
		if !ok {
			classes = make(map[PetClass][]PetID)
			pool.ByStar[pet.Star] = classes
			pool.stars = append(pool.stars, pet.Star)
		}

		for i := 0; i < pet.Amount; i++ {
			classes[pet.Class] = append(classes[pet.Class], pet.ID)
			pool.All = append(pool.All, pet.ID)
		}
	}

	sort.Slice(pool.stars, func(i, j int) bool { return pool.stars[i] < pool.stars[j] })

	return pool
}

// Candidates returns every unit of class with at least minStar, lowest tier first.
func (p PetPool) Candidates(class PetClass, minStar Star) []PetID {
	stars := p.stars
	if len(stars) != len(p.ByStar) {
		stars = sortedStars(p.ByStar)
	}

	var candidates []PetID
	for _, star := range stars {
		if star < minStar {
			continue
		}
		candidates = append(candidates, p.ByStar[star][class]...)
	}

	return candidates
}

func sortedStars(byStar map[Star]map[PetClass][]PetID) []Star {
	stars := make([]Star, 0, len(byStar))
	for star := range byStar {
		stars = append(stars, star)
	}
	sort.Slice(stars, func(i, j int) bool { return stars[i] < stars[j] })

	return stars
}

// AvailablePetIDs subtracts used from all as multisets, keeping the order of all.
func AvailablePetIDs(all []PetID, used []PetID) []PetID {
	usedCount := make(map[PetID]int, len(used))
	for _, id := range used {
		usedCount[id]++
	}

	available := make([]PetID, 0, len(all))
	for _, id := range all {
		if usedCount[id] > 0 {
			usedCount[id]--
			continue
		}
		available = append(available, id)
	}

	return available
}

// RemoveUnits drops one unit per id from available. Empty ids are ignored.
func RemoveUnits(available []PetID, ids ...PetID) []PetID {
	return AvailablePetIDs(available, nonEmpty(ids))
}

func nonEmpty(ids []PetID) []PetID {
	result := make([]PetID, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			result = append(result, id)
		}
	}

	return result
}
