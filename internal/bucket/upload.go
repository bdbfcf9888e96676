package bucket

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
)

const cacheControl = "max-age=31536000"

// Upload puts blob under path inside the base folder as a public object.
func (b *Bucket) Upload(ctx context.Context, p string, blob []byte, contentType string) error {
	if len(blob) == 0 {
		return fmt.Errorf("can't upload empty object %s", p)
	}

	r := bytes.NewReader(blob)
	userMetaData := map[string]string{"x-amz-acl": "public-read"}

	_, err := b.client.PutObject(ctx, b.S3BucketName, b.objectKey(p), r,
		int64(r.Len()), minio.PutObjectOptions{
			ContentType:  contentType,
			CacheControl: cacheControl,
			UserMetadata: userMetaData,
		},
	)
	if err != nil {
		return fmt.Errorf("error putting object: %w", err)
	}
	return nil
}

// URL returns the public URL of the object stored under path.
func (b *Bucket) URL(p string) string {
	key := b.objectKey(p)
	if b.SubdomainEndpoint != "" {
		return fmt.Sprintf("https://%s/%s", b.SubdomainEndpoint, key)
	}
	return fmt.Sprintf("https://%s.%s/%s", b.S3BucketName, b.S3Endpoint, key)
}

func (b *Bucket) objectKey(p string) string {
	return strings.TrimPrefix(path.Clean(path.Join(b.BaseFolder, p)), "/")
}
