// Package registry provides shared stores of names already in use. Every
// store implements uniquename.Registry, so group names can be made unique
// across processes and machines, and Claimer, so a generated name can be
// reserved once it is chosen.
//
// Redis keeps names in a set, Postgres in a table with a unique column and
// Mongo in a collection. Each store depends on a narrow interface satisfied
// by the driver's client, so tests can substitute fakes.
//
//	names := registry.NewRedis(client, "strkit:names")
//	name, err := uniquename.GroupName(ctx, "Cu foil.xdi", uniquename.WithRegistry(names))
//	if err != nil {
//		return err
//	}
//	err = names.Add(ctx, name)
package registry
