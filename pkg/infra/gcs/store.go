// Package gcs implements the wall artifact store on Cloud Storage. The
// object generation number acts as the version token: writes carry an
// if-generation-match precondition, so a stale token surfaces as a
// conflict instead of silently overwriting a concurrent publish.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/googleapi"

	"github.com/hemanth0525/contribuzz/pkg/domain/model"
	"github.com/hemanth0525/contribuzz/pkg/domain/types"
)

// Store persists wall images as objects in a public bucket
type Store struct {
	bucket *storage.BucketHandle
	name   string
}

// New creates a store on the given bucket
func New(ctx context.Context, bucket string) (*Store, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client")
	}
	return &Store{bucket: client.Bucket(bucket), name: bucket}, nil
}

// Head looks up the object at path and returns its generation as the token
func (s *Store) Head(ctx context.Context, path string) (*model.Artifact, error) {
	attrs, err := s.bucket.Object(path).Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, goerr.Wrap(err, "wall image not found",
				goerr.V("path", path), goerr.T(types.TagNotFound))
		}
		return nil, goerr.Wrap(err, "failed to look up wall image",
			goerr.V("path", path), goerr.T(types.TagUpstream))
	}

	return &model.Artifact{
		Path:         path,
		VersionToken: strconv.FormatInt(attrs.Generation, 10),
		PublicURL:    s.publicURL(path),
	}, nil
}

// Put writes the object. An empty versionToken requires the object not to
// exist yet; otherwise the write is conditioned on the given generation.
func (s *Store) Put(ctx context.Context, path string, content []byte, contentType, message, versionToken string) (*model.Artifact, error) {
	obj := s.bucket.Object(path)
	if versionToken != "" {
		gen, err := strconv.ParseInt(versionToken, 10, 64)
		if err != nil {
			return nil, goerr.Wrap(err, "malformed version token",
				goerr.V("token", versionToken), goerr.T(types.TagInvalidInput))
		}
		obj = obj.If(storage.Conditions{GenerationMatch: gen})
	} else {
		obj = obj.If(storage.Conditions{DoesNotExist: true})
	}

	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	w.Metadata = map[string]string{"commit-message": message}
	if _, err := w.Write(content); err != nil {
		_ = w.Close()
		return nil, goerr.Wrap(err, "failed to write wall image",
			goerr.V("path", path), goerr.T(types.TagUpstream))
	}
	if err := w.Close(); err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusPreconditionFailed {
			return nil, goerr.Wrap(err, "wall image version token is stale",
				goerr.V("path", path), goerr.T(types.TagConflict))
		}
		return nil, goerr.Wrap(err, "failed to save wall image",
			goerr.V("path", path), goerr.T(types.TagUpstream))
	}

	return &model.Artifact{
		Path:         path,
		VersionToken: strconv.FormatInt(w.Attrs().Generation, 10),
		PublicURL:    s.publicURL(path),
	}, nil
}

// ResolveURL checks object existence and returns its public URL
func (s *Store) ResolveURL(ctx context.Context, path string) (string, error) {
	if _, err := s.Head(ctx, path); err != nil {
		return "", err
	}
	return s.publicURL(path), nil
}

func (s *Store) publicURL(path string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.name, path)
}
