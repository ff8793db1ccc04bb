package ports

import "context"

// Transfer moves archives between the state directory and remote blob storage.
//
//go:generate mockgen -source=transfer.go -destination=mocks/mock_transfer.go -package=mocks
type Transfer interface {
	// FetchFirstAvailable downloads the first URL that succeeds and returns the local
	// archive path. Each URL's suffix decides the local file name.
	FetchFirstAvailable(ctx context.Context, urls []string) (string, error)

	// Upload sends the local archive to url in a single attempt.
	Upload(ctx context.Context, local, url string) error
}
