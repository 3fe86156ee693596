// Package uniquename produces names that do not collide with names already
// in use.
//
// Unique appends a numeric suffix ("_1", "_2", ...) to a name found in a
// list. Generator derives short lowercase group names from file names and,
// when given a Registry, probes it until it finds a free candidate:
//
//	g := uniquename.New(uniquename.WithSeed(42))
//	name, err := g.GroupName(ctx, "Cu foil (10K).xdi",
//		uniquename.WithRegistry(uniquename.NewNameSet("cufoil10k")))
//	// name == "cufoil10k01"
//
// Generator owns its random source and is safe for concurrent use. The
// package-level RandomVarname, GroupName and Seed use a shared default
// generator.
//
// The registry package provides Redis, PostgreSQL and MongoDB backed
// implementations of Registry.
package uniquename
