package kmerkv

import (
	"github.com/kmerkv/kmerkv/model"
)

// BinaryKmerWriter streams fixed-size records to a file through a block
// buffer, so one bulk write covers up to blockCap records. The owner must
// call Finish on every exit path or the trailing partial block is lost.
type BinaryKmerWriter struct {
	file     *model.DataFile
	buf      []byte // blockCap marshalled records
	curr     int    // records buffered so far
	count    uint64 // records accepted so far
	finished bool
}

func NewBinaryKmerWriter(path string, opts ...Option) (*BinaryKmerWriter, error) {
	return newBinaryKmerWriter(path, newOptions(opts))
}

func newBinaryKmerWriter(path string, o *options) (*BinaryKmerWriter, error) {
	if o.writeIOManagerCreator == nil {
		return nil, ErrNoIOManager
	}
	ioManager, err := o.writeIOManagerCreator(path)
	if err != nil {
		return nil, err
	}
	return &BinaryKmerWriter{
		file: model.OpenDataFile(path, ioManager),
		buf:  make([]byte, o.blockCap*model.RecordSize),
	}, nil
}

// Write buffers one record, flushing the block to disk when it fills.
func (w *BinaryKmerWriter) Write(record model.Record) error {
	if w.finished {
		return ErrWriterFinished
	}

	model.PutRecord(w.buf[w.curr*model.RecordSize:], record)
	w.curr++
	w.count++

	if w.curr*model.RecordSize == len(w.buf) {
		return w.flush()
	}
	return nil
}

// Finish flushes the trailing partial block, syncs and closes the file.
// Calling it again is a no-op; Write after Finish fails.
func (w *BinaryKmerWriter) Finish() error {
	if w.finished {
		return nil
	}
	w.finished = true

	if err := w.flush(); err != nil {
		_ = w.file.Close()
		return err
	}
	if err := w.file.Sync(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}

// Count reports how many records have been accepted.
func (w *BinaryKmerWriter) Count() uint64 {
	return w.count
}

func (w *BinaryKmerWriter) flush() error {
	if w.curr == 0 {
		return nil
	}
	if err := w.file.Write(w.buf[:w.curr*model.RecordSize]); err != nil {
		return err
	}
	w.curr = 0
	return nil
}
