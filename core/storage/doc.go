// Package storage provides the object storage client used by the
// snapshot archive.
//
// It wraps the MinIO SDK behind a small Client interface so the archive
// logic can be tested against a mock. Credentials, bucket, and endpoint
// come from the storage section of the application configuration.
package storage
