package file

import (
	"context"
	"io"
	"os"

	lerrors "github.com/kanopy-platform/json2list/pkg/errors"
)

type File struct {
	filename string
}

func New(filename string) *File {
	return &File{
		filename: filename,
	}
}

func (f *File) Data(ctx context.Context) (io.ReadCloser, error) {
	file, err := os.Open(f.filename)
	if err != nil {
		return nil, lerrors.NewNotFoundError(err)
	}

	return file, nil
}
