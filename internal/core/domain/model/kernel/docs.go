// Package kernel provides core domain primitives for the canteen system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for document keys with validation and comparison
//     capabilities
//
// Document identity in this system is assigned by the backing store: an order
// moved between buckets receives a fresh key at its destination, so keys must
// never be used for cross-bucket correlation. UUID enforces that identities
// are always explicitly constructed and never zero values.
package kernel
