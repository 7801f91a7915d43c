// Package rankwalk is a small playground for random simple graphs and
// one-step score diffusion over them.
//
// What is rankwalk?
//
//	A compact library plus an interactive console session:
//		• core/    — simple undirected Graph over dense integer vertex ids
//		• builder/ — uniform random graph sampling (exact edge counts)
//		• rank/    — one degree-normalized diffusion step (a single
//		             PageRank-style iteration, no damping)
//		• render/  — console formatting of graph state
//		• cmd/rankwalk — the interactive session wiring it all together
//
// Quick ASCII example:
//
//	    0───1
//	        │
//	        2
//
//	g, _ := builder.RandomGraph(3, 2, builder.WithSeed(7))
//	scores, _ := rank.Step(g, nil)          // one diffusion step from all-ones
//	fmt.Println(render.State(g, scores))    // Node 0 | Score: ... | Neighbors: [...]
//
// Every stochastic path accepts WithSeed/WithRand for reproducible fixtures;
// unseeded runs draw from a local time-seeded source. All operations return
// sentinel errors and never panic at runtime.
package rankwalk
