package domain

// DNAPet is a breeding-capable inventory entry.
type DNAPet struct {
	ID     PetID
	Name   string
	Class  PetClass
	Star   Star
	Amount int
	CanMom bool
}

// BreedingPool splits breeding-capable units into mother and father roles.
type BreedingPool struct {
	Moms []PetID
	Dads []PetID
	All  []PetID
}

func SplitBreeding(pets []DNAPet) BreedingPool {
	var pool BreedingPool
	for _, pet := range pets {
		for i := 0; i < pet.Amount; i++ {
			pool.All = append(pool.All, pet.ID)
			if pet.CanMom {
				pool.Moms = append(pool.Moms, pet.ID)
			} else {
				pool.Dads = append(pool.Dads, pet.ID)
			}
		}
	}

	return pool
}

type BreedingPair struct {
	Mom PetID
	Dad PetID
}
