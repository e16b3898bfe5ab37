package kmerkv

import (
	"errors"
	"io"
	"os"
	"sort"

	"github.com/kmerkv/kmerkv/codec"
	"github.com/kmerkv/kmerkv/model"
)

// Merger folds partitioned group files back into one sorted, counted record
// file. Within a group the totals come out in increasing key order, and
// groups carry the highest key bits, so merging groups in id order yields a
// fully sorted output.
type Merger struct {
	codec codec.Codec
	opts  *options
}

func NewMerger(cdc codec.Codec, opts ...Option) *Merger {
	return &Merger{
		codec: cdc,
		opts:  newOptions(opts),
	}
}

// MergeDir merges every group file under dir into one output file and
// returns the number of distinct keys written.
func (m *Merger) MergeDir(dir, out string) (uint64, error) {
	groups, err := listGroupFiles(dir)
	if err != nil {
		return 0, err
	}

	writer, err := newBinaryKmerWriter(out, m.opts)
	if err != nil {
		return 0, err
	}

	for _, grp := range groups {
		if err = m.MergeGroup(model.GroupFileName(dir, grp), grp, writer); err != nil {
			_ = writer.Finish()
			return 0, err
		}
	}

	if err = writer.Finish(); err != nil {
		return 0, err
	}
	return writer.Count(), nil
}

// MergeGroup reads one group file, sums the values of duplicate keys and
// appends the totals to the writer in increasing key order. grp supplies
// the high bits missing from the stored keys.
func (m *Merger) MergeGroup(path string, grp uint64, writer *BinaryKmerWriter) error {
	if m.opts.countdirCreator == nil {
		return ErrNoCountdir
	}

	reader, err := newBinaryKmerReader(path, m.opts)
	if err != nil {
		return err
	}
	defer reader.Close()

	counts := m.opts.countdirCreator()
	for {
		record, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		counts.Add(m.codec.Combine(grp, record.Key), record.Value)
	}

	var writeErr error
	counts.Ascend(func(key model.Key, count model.Value) bool {
		writeErr = writer.Write(model.Record{Key: key, Value: count})
		return writeErr == nil
	})
	return writeErr
}

// listGroupFiles returns the group ids present under dir in increasing
// order.
func listGroupFiles(dir string) ([]uint64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	groups := make([]uint64, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if grp, ok := model.ParseGroupFileName(entry.Name()); ok {
			groups = append(groups, grp)
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i] < groups[j] })
	return groups, nil
}
