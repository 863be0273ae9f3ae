package kv

import (
	"context"

	"storefront/internal/errors"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

type blobStore struct {
	bucket *blob.Bucket
}

// OpenFile opens a store that keeps one file per key under dir.
func OpenFile(dir string) (Store, error) {
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrapf(err, "open file store at %s", dir)
	}

	return &blobStore{bucket: bucket}, nil
}

// OpenMemory opens a process-local store.
func OpenMemory() Store {
	return &blobStore{bucket: memblob.OpenBucket(nil)}
}

func (s *blobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", key)
	}

	return data, nil
}

func (s *blobStore) Put(ctx context.Context, key string, value []byte) error {
	opts := &blob.WriterOptions{ContentType: "application/json"}

	return errors.Wrapf(s.bucket.WriteAll(ctx, key, value, opts), "write %s", key)
}

func (s *blobStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil
	}

	return errors.Wrapf(err, "delete %s", key)
}

func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
