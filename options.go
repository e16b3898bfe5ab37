package kmerkv

import (
	"github.com/kmerkv/kmerkv/countdir"
	"github.com/kmerkv/kmerkv/fio"
)

// DefaultBlockCap is how many records one bulk read or write moves.
const DefaultBlockCap = 1024

type options struct {
	blockCap int

	writeIOManagerCreator func(path string) (fio.IOManager, error)
	readIOManagerCreator  func(path string) (fio.IOManager, error)
	countdirCreator       func() countdir.Countdir
}

type Option func(*options)

func defaultOptions() *options {
	return &options{
		blockCap: DefaultBlockCap,
		writeIOManagerCreator: func(path string) (fio.IOManager, error) {
			return fio.NewFileIO(path)
		},
		readIOManagerCreator: func(path string) (fio.IOManager, error) {
			return fio.NewReadFileIO(path)
		},
		countdirCreator: func() countdir.Countdir {
			return countdir.NewBTree(0)
		},
	}
}

func newOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.blockCap <= 0 {
		o.blockCap = DefaultBlockCap
	}
	return o
}

// WithBlockCap sets the block buffer capacity in records.
func WithBlockCap(blockCap int) Option {
	return func(o *options) {
		o.blockCap = blockCap
	}
}

func WithWriteIOManagerCreator(fn func(path string) (fio.IOManager, error)) Option {
	return func(o *options) {
		o.writeIOManagerCreator = fn
	}
}

func WithReadIOManagerCreator(fn func(path string) (fio.IOManager, error)) Option {
	return func(o *options) {
		o.readIOManagerCreator = fn
	}
}

func WithCountdirCreator(fn func() countdir.Countdir) Option {
	return func(o *options) {
		o.countdirCreator = fn
	}
}
