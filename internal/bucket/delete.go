package bucket

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
)

// toRemoveCh converts a string slice to a <-chan minio.ObjectInfo
func toRemoveCh(keys []string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		ch <- minio.ObjectInfo{Key: key}
	}
	close(ch)
	return ch
}

// Delete removes objects stored under paths.
func (b *Bucket) Delete(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}

	keys := make([]string, 0, len(paths))
	for _, p := range paths {
		keys = append(keys, b.objectKey(p))
	}

	var errMsgs []string
	errorCh := b.client.RemoveObjects(ctx, b.S3BucketName, toRemoveCh(keys), minio.RemoveObjectsOptions{})
	for dErr := range errorCh {
		slog.Default().ErrorContext(ctx, "failed to delete object from s3 bucket",
			slog.String("object_key", dErr.ObjectName),
			slog.String("err", dErr.Err.Error()),
		)
		errMsgs = append(errMsgs, dErr.Err.Error())
	}

	if len(errMsgs) > 0 {
		return fmt.Errorf("errors during deletion: %s", strings.Join(errMsgs, "; "))
	}
	return nil
}
