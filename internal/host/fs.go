package host

import (
	"io"
	"os"
)

// FileSystem abstracts file access for testability
type FileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFileCapped(path string, max int64) ([]byte, error)
}

// OSFileSystem implements FileSystem using the real OS
type OSFileSystem struct{}

func NewOSFileSystem() OSFileSystem {
	return OSFileSystem{}
}

func (OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// ReadFileCapped reads at most max bytes of the file. max <= 0 means
// no cap.
func (OSFileSystem) ReadFileCapped(path string, max int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if max > 0 {
		r = io.LimitReader(f, max)
	}
	return io.ReadAll(r)
}
