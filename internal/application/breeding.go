package application

import (
	"github.com/bnema/animix-bot/internal/domain"
	"github.com/bnema/animix-bot/internal/ports"
)

// BreedingPlan is the outcome of one pairing pass.
type BreedingPlan struct {
	Pairs []domain.BreedingPair
	// NoCouple is set when mothers remained but no valid pair could be formed.
	NoCouple bool
}

// PairBreeding draws a random mother and a random father until the mothers
// run out. When the draw cannot form a pair it falls back to pairing the
// drawn mother with the first father, discarding the next mother as well.
// Inputs are not modified.
func PairBreeding(moms []domain.PetID, dads []domain.PetID, random ports.Random) BreedingPlan {
	moms = append([]domain.PetID(nil), moms...)
	dads = append([]domain.PetID(nil), dads...)

	var plan BreedingPlan
	for len(moms) > 0 {
		momIndex := random.IntN(len(moms))
		mom := moms[momIndex]

		if len(dads) > 0 {
			dadIndex := random.IntN(len(dads))
			if dad := dads[dadIndex]; mom != "" && dad != "" {
				plan.Pairs = append(plan.Pairs, domain.BreedingPair{Mom: mom, Dad: dad})
				moms = removeAt(moms, momIndex)
				dads = removeAt(dads, dadIndex)
				continue
			}
		}

		if len(moms) > 1 && momIndex+1 < len(moms) && len(dads) > 0 && mom != moms[momIndex+1] {
			plan.Pairs = append(plan.Pairs, domain.BreedingPair{Mom: mom, Dad: dads[0]})
			moms = removeAt(removeAt(moms, momIndex), momIndex)
			dads = removeAt(dads, 0)
			continue
		}

		plan.NoCouple = true
		break
	}

	return plan
}

func removeAt(ids []domain.PetID, index int) []domain.PetID {
	return append(ids[:index], ids[index+1:]...)
}
