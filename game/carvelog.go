package game

import (
	"compress/gzip"
	"io"
	"os"

	"github.com/Tnze/go-mc/nbt"
	"github.com/pkg/errors"
)

const carveLogVersion = 1

var ErrCarveLogVersion = errors.New("unsupported carve log version")

type carveLogFile struct {
	Version int32        `nbt:"Version"`
	Carves  []CarveEvent `nbt:"Carves"`
}

// WriteCarveLog writes events as gzip-compressed NBT.
func WriteCarveLog(w io.Writer, events []CarveEvent) error {
	gzipWriter := gzip.NewWriter(w)
	file := carveLogFile{Version: carveLogVersion, Carves: events}
	if err := nbt.NewEncoder(gzipWriter).Encode(file, "CarveLog"); err != nil {
		_ = gzipWriter.Close()
		return errors.Wrap(err, "encode carve log")
	}
	return errors.Wrap(gzipWriter.Close(), "flush carve log")
}

func ReadCarveLog(r io.Reader) ([]CarveEvent, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "open carve log")
	}
	defer gzipReader.Close()

	var file carveLogFile
	if _, err := nbt.NewDecoder(gzipReader).Decode(&file); err != nil {
		return nil, errors.Wrap(err, "decode carve log")
	}
	if file.Version != carveLogVersion {
		return nil, errors.Wrapf(ErrCarveLogVersion, "version %d", file.Version)
	}
	return file.Carves, nil
}

func SaveCarveLog(filename string, events []CarveEvent) error {
	outfile, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create carve log")
	}
	if err := WriteCarveLog(outfile, events); err != nil {
		_ = outfile.Close()
		return err
	}
	return errors.Wrap(outfile.Close(), "close carve log")
}

func LoadCarveLog(filename string) ([]CarveEvent, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open carve log")
	}
	defer file.Close()
	return ReadCarveLog(file)
}
