// Package packager assembles an emitted file set into a zip archive. Archive
// members keep the file map's insertion order, so the generated project
// unpacks in the same order the emitter produced it.
package packager

import (
	"archive/zip"
	"bytes"
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/flate"

	"github.com/hellenic-development/figma-codegen/pkg/emitter"
)

// ErrArchive indicates the archive could not be assembled. Partial output must
// be discarded; a truncated zip is worse than none.
var ErrArchive = errors.New("archive assembly failed")

// Pack serializes the file set into an in-memory zip archive.
func Pack(files *emitter.FileMap) ([]byte, error) {
	var buf bytes.Buffer
	if err := PackTo(&buf, files); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PackTo streams the zip archive to w without buffering the whole archive.
func PackTo(w io.Writer, files *emitter.FileMap) error {
	if files == nil || files.Len() == 0 {
		return errors.Wrap(ErrArchive, "no files to package")
	}

	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestSpeed)
	})

	// One timestamp for all members.
	stamp := time.Now().UTC()

	var werr error
	files.Range(func(path string, content []byte) bool {
		f, err := zw.CreateHeader(&zip.FileHeader{
			Name:     path,
			Method:   zip.Deflate,
			Modified: stamp,
		})
		if err != nil {
			werr = errors.Wrap(errors.Wrap(ErrArchive, err.Error()), path)
			return false
		}
		if _, err := io.Copy(f, bytes.NewReader(content)); err != nil {
			werr = errors.Wrap(errors.Wrap(ErrArchive, err.Error()), path)
			return false
		}
		return true
	})
	if werr != nil {
		_ = zw.Close()
		return werr
	}

	if err := zw.Close(); err != nil {
		return errors.Wrap(ErrArchive, err.Error())
	}
	return nil
}
