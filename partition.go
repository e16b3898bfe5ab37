package kmerkv

import (
	"errors"
	"io"
	"os"

	"github.com/gofrs/flock"

	"github.com/kmerkv/kmerkv/codec"
	"github.com/kmerkv/kmerkv/fio"
	"github.com/kmerkv/kmerkv/model"
)

// Partitioner shards a text kmer file into per-group binary files under one
// output directory. Each stored record keeps only the in-group part of its
// key; the group id lives in the file name and Merger restores the full key.
//
// The directory is flocked for the lifetime of the partitioner, so two runs
// can never interleave writes into the same group files.
type Partitioner struct {
	dir      string
	codec    codec.Codec
	writers  map[uint64]*BinaryKmerWriter
	fileLock *flock.Flock
	opts     *options
}

func NewPartitioner(dir string, cdc codec.Codec, opts ...Option) (*Partitioner, error) {
	o := newOptions(opts)

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}

	fileLock := fio.NewFlock(dir)
	locked, err := fileLock.TryLock()
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrDirIsUsing
	}

	return &Partitioner{
		dir:      dir,
		codec:    cdc,
		writers:  make(map[uint64]*BinaryKmerWriter),
		fileLock: fileLock,
		opts:     o,
	}, nil
}

// Run streams every record of the text file into its group file and returns
// the number of records moved. A decode or IO failure stops the run at the
// failing record; Close still finishes whatever was written before it.
func (p *Partitioner) Run(input string) (uint64, error) {
	reader, err := NewKmerReader(input, p.codec)
	if err != nil {
		return 0, err
	}
	defer reader.Close()

	var total uint64
	for {
		record, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}

		grp, keyInGroup := p.codec.Split(record.Key)
		writer, err := p.groupWriter(grp)
		if err != nil {
			return total, err
		}
		if err = writer.Write(model.Record{Key: keyInGroup, Value: record.Value}); err != nil {
			return total, err
		}
		total++
	}
}

// Groups lists the ids of the groups that received at least one record.
func (p *Partitioner) Groups() []uint64 {
	groups := make([]uint64, 0, len(p.writers))
	for grp := range p.writers {
		groups = append(groups, grp)
	}
	return groups
}

// Close finishes every group writer and releases the directory lock.
// It runs through all writers even after a failure and reports the first
// error.
func (p *Partitioner) Close() error {
	var firstErr error
	for _, writer := range p.writers {
		if err := writer.Finish(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if err := p.fileLock.Unlock(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// groupWriter lazily opens the writer for grp, so only populated groups
// get a file.
func (p *Partitioner) groupWriter(grp uint64) (*BinaryKmerWriter, error) {
	if writer, ok := p.writers[grp]; ok {
		return writer, nil
	}
	writer, err := newBinaryKmerWriter(model.GroupFileName(p.dir, grp), p.opts)
	if err != nil {
		return nil, err
	}
	p.writers[grp] = writer
	return writer, nil
}
