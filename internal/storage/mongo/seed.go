package mongo

import (
	"context"
	"encoding/json"

	"github.com/go-faster/errors"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/sync/errgroup"

	"github.com/maisonglass/perfume-api/db"
)

// SeedCatalog loads the embedded demo catalog into the product collection.
// Unless force is set, it is a no-op when the collection already holds
// records, so it is safe to run on every startup. It returns the number of
// documents inserted.
func SeedCatalog(ctx context.Context, store *Store, force bool) (int, error) {
	if !force {
		n, err := store.CountDocuments(ctx, CollectionProduct, nil)
		if err != nil {
			return 0, errors.Wrap(err, "count products")
		}
		if n > 0 {
			return 0, nil
		}
	}

	var docs []bson.M
	if err := json.Unmarshal(db.SeedProducts, &docs); err != nil {
		return 0, errors.Wrap(err, "decode seed catalog")
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, doc := range docs {
		g.Go(func() error {
			_, err := store.CreateDocument(ctx, CollectionProduct, doc)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, errors.Wrap(err, "insert seed products")
	}

	return len(docs), nil
}
