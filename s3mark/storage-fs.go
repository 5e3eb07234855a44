package s3mark

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
)

// FsClient stores objects as files under a root directory. It serves as a
// baseline backend for comparing against network storage and keeps the
// benchmark pipeline testable without an S3 endpoint.
type FsClient struct {
	rootPath string
}

func NewFsClient(rootPath string) *FsClient {
	return &FsClient{rootPath: rootPath}
}

func (c *FsClient) objectPath(bucket string, key string) string {
	return filepath.Join(c.rootPath, bucket, key)
}

func (c *FsClient) PutObject(bucket string, key string, reader *bytes.Reader) (Breakdown, error) {
	path := c.objectPath(bucket, key)
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return Breakdown{}, err
	}
	writer, err := os.Create(path)
	if err != nil {
		return Breakdown{}, err
	}
	defer writer.Close()
	_, err = reader.WriteTo(writer)
	return Breakdown{}, err
}

func (c *FsClient) GetObject(bucket string, key string) (Breakdown, io.ReadCloser, error) {
	reader, err := os.Open(c.objectPath(bucket, key))
	if err != nil {
		return Breakdown{}, nil, err
	}
	return Breakdown{}, reader, nil
}
