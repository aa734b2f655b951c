package order

import (
	"fmt"

	"canteen/internal/pkg/errs"
)

// Bucket identifies one of the four collections partitioning orders by
// lifecycle status.
type Bucket int

const (
	// BucketUnknown represents an invalid or undefined bucket.
	BucketUnknown Bucket = iota

	// BucketPending holds orders waiting to be prepared.
	BucketPending

	// BucketPrepared holds orders ready for pickup.
	BucketPrepared

	// BucketCompleted holds picked-up orders.
	BucketCompleted

	// BucketCanceled holds canceled orders.
	BucketCanceled
)

func getBucketCollections() map[Bucket]string {
	return map[Bucket]string{
		BucketPending:   "pendingOrders",
		BucketPrepared:  "preparedOrders",
		BucketCompleted: "completedOrders",
		BucketCanceled:  "canceledOrders",
	}
}

// Buckets returns all four order buckets in lifecycle order.
func Buckets() []Bucket {
	return []Bucket{BucketPending, BucketPrepared, BucketCompleted, BucketCanceled}
}

// BucketFromString parses a bucket from its string name ("pending",
// "prepared", "completed", "canceled").
func BucketFromString(s string) (Bucket, error) {
	for b, st := range getValidStatusStrings() {
		if s == st {
			return bucketForStatus(b), nil
		}
	}
	return BucketUnknown, errs.NewValueIsInvalidErrorWithCause("bucket", fmt.Errorf("%q is not a valid bucket", s))
}

func bucketForStatus(s Status) Bucket {
	switch s {
	case Pending:
		return BucketPending
	case Prepared:
		return BucketPrepared
	case Completed:
		return BucketCompleted
	case Canceled:
		return BucketCanceled
	default:
		return BucketUnknown
	}
}

// Status returns the lifecycle status every order in the bucket carries.
func (b Bucket) Status() Status {
	switch b {
	case BucketPending:
		return Pending
	case BucketPrepared:
		return Prepared
	case BucketCompleted:
		return Completed
	case BucketCanceled:
		return Canceled
	default:
		return Unknown
	}
}

// Collection returns the store collection name backing the bucket.
func (b Bucket) Collection() string {
	if c, ok := getBucketCollections()[b]; ok {
		return c
	}
	return "unknown"
}

// String returns the bucket's short name, which matches its status string.
func (b Bucket) String() string {
	return b.Status().String()
}

// Validate checks if the Bucket value is valid.
func (b Bucket) Validate() error {
	if _, ok := getBucketCollections()[b]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("bucket", fmt.Errorf("%d is not a valid bucket", b))
	}
	return nil
}
