package interfaces

import "context"

// ICatalogSource fetches raw catalog records. Records are schema-less:
// field names differ between backend endpoints.
type ICatalogSource interface {
	FetchCatalog(ctx context.Context) ([]map[string]any, error)
}
