package kmerkv

import (
	"errors"
	"io"

	"github.com/kmerkv/kmerkv/model"
)

// BinaryKmerReader streams fixed-size records from a file through a block
// buffer, refilling it with one bulk read at a time. Records come back in
// exactly the order they were written.
type BinaryKmerReader struct {
	file   *model.DataFile
	buf    []byte // blockCap marshalled records
	curr   int    // cursor into the buffered records
	max    int    // records in the buffer
	offset int64  // next refill position
	size   int64  // file size, fixed at open
}

func NewBinaryKmerReader(path string, opts ...Option) (*BinaryKmerReader, error) {
	return newBinaryKmerReader(path, newOptions(opts))
}

func newBinaryKmerReader(path string, o *options) (*BinaryKmerReader, error) {
	if o.readIOManagerCreator == nil {
		return nil, ErrNoIOManager
	}
	ioManager, err := o.readIOManagerCreator(path)
	if err != nil {
		return nil, err
	}

	file := model.OpenDataFile(path, ioManager)
	size, err := file.Size()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	// a trailing partial record means the stream was cut mid-write
	if size%model.RecordSize != 0 {
		_ = file.Close()
		return nil, ErrDataCorrupted
	}

	return &BinaryKmerReader{
		file: file,
		buf:  make([]byte, o.blockCap*model.RecordSize),
		size: size,
	}, nil
}

// Next returns the following record, or io.EOF after the last one.
func (r *BinaryKmerReader) Next() (model.Record, error) {
	if r.curr == r.max {
		if err := r.refill(); err != nil {
			return model.Record{}, err
		}
	}
	record := model.GetRecord(r.buf[r.curr*model.RecordSize:])
	r.curr++
	return record, nil
}

// Count reports how many records the file holds in total.
func (r *BinaryKmerReader) Count() uint64 {
	return uint64(r.size / model.RecordSize)
}

func (r *BinaryKmerReader) Close() error {
	return r.file.Close()
}

func (r *BinaryKmerReader) refill() error {
	if r.offset >= r.size {
		return io.EOF
	}

	want := int64(len(r.buf))
	if rest := r.size - r.offset; rest < want {
		want = rest
	}

	n, err := r.file.ReadAt(r.buf[:want], r.offset)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if n == 0 {
		return io.EOF
	}
	if n%model.RecordSize != 0 {
		return ErrDataCorrupted
	}

	r.offset += int64(n)
	r.max = n / model.RecordSize
	r.curr = 0
	return nil
}
