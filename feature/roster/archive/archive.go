package archive

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	json "github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"

	"roster-etl/core/storage"
	"roster-etl/feature/roster/models"
)

// Config holds configuration for the snapshot archive.
type Config struct {
	// Enabled turns post-run snapshot archival on.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Prefix is the object key prefix archived snapshots live under.
	Prefix string `mapstructure:"prefix" default:"snapshots"`
}

// Archiver uploads the raw snapshots of a successful run to object
// storage, one JSON object per snapshot kind. Archive failures are the
// caller's to log; they never fail the run itself.
type Archiver struct {
	client storage.Client
	bucket string
	cfg    Config
}

// New creates an archiver writing to the given bucket.
func New(client storage.Client, bucket string, cfg Config) *Archiver {
	return &Archiver{client: client, bucket: bucket, cfg: cfg}
}

// Archive writes the run's roster and season snapshots under
// <prefix>/<date>/<target>/. Re-running the same target on the same day
// overwrites the day's objects, mirroring the replace semantics of the
// staging slots.
func (a *Archiver) Archive(ctx context.Context, target string, ranAt time.Time, rosters []models.RosterRecord, stats *models.SeasonStats) error {
	type object struct {
		name    string
		payload any
	}
	objects := []object{{"rosters.json", rosters}}
	if stats != nil {
		objects = append(objects,
			object{"skaters.json", stats.Skaters},
			object{"goalies.json", stats.Goalies},
		)
	}

	dir := path.Join(a.cfg.Prefix, ranAt.Format("2006-01-02"), target)
	for _, obj := range objects {
		if err := a.put(ctx, path.Join(dir, obj.name), obj.payload); err != nil {
			return err
		}
	}
	return nil
}

func (a *Archiver) put(ctx context.Context, objectName string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", objectName, err)
	}

	reader := bytes.NewReader(data)
	_, err = a.client.PutObject(ctx, a.bucket, objectName, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", objectName, err)
	}
	return nil
}
