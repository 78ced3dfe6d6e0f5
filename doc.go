// Package colony checks bug colonies for a consistent two-group split: every
// recorded interaction must be between bugs of opposite groups. A colony
// where that holds is reported as "Suspicious bugs found!".
//
// Everything is organized under four subpackages:
//
//	core/      — Population and Entity arena, the iterative two-category pass
//	twocolor/  — diagnostics over core: roots, partition, conflict, odd cycle
//	builder/   — composable topology constructors (paths, cycles, grids, solids, random)
//	scenario/  — text input reader, report writer, Runner with zap logging and metrics
//
// The colony command (cmd/colony) wires scenario to stdin/stdout:
//
//	colony check < scenarios.txt
//	colony generate --kind=grid --n=3 --m=4 | colony check
//
// Quick example:
//
//	    1───2
//	    │   │
//	    4───3
//
//	p, _ := core.NewPopulation(4)
//	p.AddRelation(0, 1)
//	p.AddRelation(1, 2)
//	p.AddRelation(2, 3)
//	p.AddRelation(3, 0)
//	p.IsBipartite() // true
//
// Installation:
//
//	go get github.com/katalvlaran/colony
package colony
