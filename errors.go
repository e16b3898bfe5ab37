package kmerkv

import (
	"fmt"
)

var (
	ErrDataCorrupted  = addPrefix("binary stream ends inside a record")
	ErrWriterFinished = addPrefix("writer is already finished")
	ErrDirIsUsing     = addPrefix("output directory is used by another process")
	ErrNoIOManager    = addPrefix("no io manager")
	ErrNoCountdir     = addPrefix("no countdir")
)

func addPrefix(errStr string) error {
	return fmt.Errorf("kmerkv err: %s", errStr)
}
