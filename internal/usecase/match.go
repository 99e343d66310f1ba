package usecase

import (
	"sort"

	"flightmate-service/internal/domain/entity"

	"github.com/google/uuid"
)

// FindExact returns the owners of pool flights sharing flight number and
// date with the reference flight. Each owner appears once, ordered by user
// id so repeated runs over the same snapshot yield identical results.
func FindExact(ref *entity.Flight, pool []entity.CandidateFlight, excludeUser uuid.UUID) []entity.MatchProfile {
	seen := make(map[uuid.UUID]entity.MatchProfile)
	for i := range pool {
		c := &pool[i]
		if c.Owner.ID == excludeUser {
			continue
		}
		if !c.Flight.SameLeg(ref) {
			continue
		}
		if _, ok := seen[c.Owner.ID]; !ok {
			seen[c.Owner.ID] = c.Owner.Profile()
		}
	}

	ids := make([]uuid.UUID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})

	matches := make([]entity.MatchProfile, 0, len(ids))
	for _, id := range ids {
		matches = append(matches, seen[id])
	}
	return matches
}

type overlapBest struct {
	profile entity.MatchProfile
	minutes float64
}

// FindOverlaps returns the owners of pool flights at the reference flight's
// departure airport whose presence windows intersect the reference window.
// Flights on the reference leg itself are skipped, so a flight pair is
// classified as exact or considered for overlap, never both. Each owner is
// reported once with their largest overlap, and results are ordered by
// descending overlap minutes with user id as the tie break.
func FindOverlaps(ref *entity.Flight, pool []entity.CandidateFlight, excludeUser uuid.UUID) []entity.OverlapMatch {
	refWindow := ref.Window()

	best := make(map[uuid.UUID]overlapBest)
	for i := range pool {
		c := &pool[i]
		if c.Owner.ID == excludeUser {
			continue
		}
		if c.Flight.DepAirport != ref.DepAirport {
			continue
		}
		if c.Flight.SameLeg(ref) {
			continue
		}

		minutes := refWindow.Overlap(c.Flight.Window()).Minutes()
		if minutes <= 0 {
			// windows touching at a single instant are not a match
			continue
		}

		if cur, ok := best[c.Owner.ID]; !ok || minutes > cur.minutes {
			best[c.Owner.ID] = overlapBest{profile: c.Owner.Profile(), minutes: minutes}
		}
	}

	ids := make([]uuid.UUID, 0, len(best))
	for id := range best {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		bi, bj := best[ids[i]], best[ids[j]]
		if bi.minutes != bj.minutes {
			return bi.minutes > bj.minutes
		}
		return ids[i].String() < ids[j].String()
	})

	matches := make([]entity.OverlapMatch, 0, len(ids))
	for _, id := range ids {
		b := best[id]
		matches = append(matches, entity.OverlapMatch{
			MatchProfile:   b.profile,
			OverlapMinutes: b.minutes,
		})
	}
	return matches
}
