package entity

import (
	"context"

	"github.com/negociacion/admin/internal/apiclient"
)

// Envelope is the {"data": ...} wrapper around created and edited records.
type Envelope[T any] struct {
	Data T `json:"data"`
}

// ListDecoder fetches a list endpoint and extracts its records.
type ListDecoder[T any] func(ctx context.Context, api *apiclient.Client, endpoint string) ([]T, error)

// ArrayList decodes a bare JSON array.
func ArrayList[T any](ctx context.Context, api *apiclient.Client, endpoint string) ([]T, error) {
	return apiclient.Fetch[[]T](ctx, api, endpoint)
}

type rowsEnvelope[T any] struct {
	Data struct {
		Rows []T `json:"rows"`
	} `json:"data"`
}

// RowsList decodes {"data": {"rows": [...]}}.
func RowsList[T any](ctx context.Context, api *apiclient.Client, endpoint string) ([]T, error) {
	env, err := apiclient.Fetch[rowsEnvelope[T]](ctx, api, endpoint)
	if err != nil {
		return nil, err
	}
	return env.Data.Rows, nil
}
