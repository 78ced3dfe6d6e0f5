// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin read-only facade over Population state.
// Policy:
//   - No algorithms or hidden state here.

package core

// Stats produces a read-only snapshot of the population's size, relation
// counters and the number of entities tagged by the last coloring pass.
//
// Complexity:
//   - Time O(V), Space O(1) plus the returned struct.
func (p *Population) Stats() *PopulationStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	stats := PopulationStats{
		Size:          len(p.entities),
		Relations:     p.relations,
		SelfRelations: p.selfRelations,
	}
	for i := range p.entities {
		if p.entities[i].HasTag() {
			stats.Tagged++
		}
	}

	return &stats
}
