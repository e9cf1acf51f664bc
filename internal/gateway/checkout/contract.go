package checkout

import (
	"context"
	"net/http"
)

type executor interface {
	Do(
		ctx context.Context,
		method string,
		newRequest func(ctx context.Context) (*http.Request, error),
		decode func(resp *http.Response) error,
	) error
}
