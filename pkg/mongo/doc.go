// Package mongo connects to the MongoDB deployment that can back the shared
// name registry.
//
//	db, err := mongo.NewWithDatabase(ctx, cfg, "strkit", log)
//	if err != nil {
//		return err
//	}
//	defer db.Client().Disconnect(ctx)
//
//	names := registry.NewMongo(db.Collection("names"), "name")
//
// Config is populated from MONGODB_* environment variables.
package mongo
