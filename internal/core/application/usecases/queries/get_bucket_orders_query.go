package queries

import (
	"errors"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/guard"
)

var ErrGetBucketOrdersQueryIsNotConstructed = errors.New(
	"GetBucketOrdersQuery must be created via NewGetBucketOrdersQuery constructor",
)

// GetBucketOrdersQuery requests the current content of one order bucket.
type GetBucketOrdersQuery struct {
	bucket order.Bucket

	guard guard.ConstructorGuard
}

// NewGetBucketOrdersQuery creates the query for a valid bucket.
func NewGetBucketOrdersQuery(bucket order.Bucket) (GetBucketOrdersQuery, error) {
	if err := bucket.Validate(); err != nil {
		return GetBucketOrdersQuery{}, err
	}

	return GetBucketOrdersQuery{
		bucket: bucket,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBucketOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBucketOrdersQueryIsNotConstructed)
}

// Bucket returns the requested bucket.
func (q GetBucketOrdersQuery) Bucket() order.Bucket {
	return q.bucket
}
