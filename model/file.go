package model

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kmerkv/kmerkv/fio"
)

const (
	DataFileSuffix  = ".kmr"
	groupFilePrefix = "group-"
)

// GroupFileName builds the data file path for one group under dir.
func GroupFileName(dir string, grp uint64) string {
	return filepath.Join(dir, fmt.Sprintf("%s%09d%s", groupFilePrefix, grp, DataFileSuffix))
}

// ParseGroupFileName recovers the group id from a file name produced by
// GroupFileName. The second result is false for any other file.
func ParseGroupFileName(name string) (uint64, bool) {
	name = filepath.Base(name)
	if !strings.HasPrefix(name, groupFilePrefix) || !strings.HasSuffix(name, DataFileSuffix) {
		return 0, false
	}
	digits := strings.TrimSuffix(strings.TrimPrefix(name, groupFilePrefix), DataFileSuffix)
	grp, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return grp, true
}

// DataFile is a record file on top of an IOManager. Writes append,
// reads are positioned.
type DataFile struct {
	Path        string
	WriteOffset int64
	IOManager   fio.IOManager
}

func OpenDataFile(path string, ioManager fio.IOManager) *DataFile {
	return &DataFile{
		Path:      path,
		IOManager: ioManager,
	}
}

// Write appends binary data to the file.
func (df *DataFile) Write(data []byte) error {
	size, err := df.IOManager.Write(data)
	if err != nil {
		return err
	}
	df.WriteOffset += int64(size)
	return nil
}

// ReadAt reads up to len(buf) bytes starting at offset.
func (df *DataFile) ReadAt(buf []byte, offset int64) (int, error) {
	return df.IOManager.Read(buf, offset)
}

func (df *DataFile) Size() (int64, error) {
	return df.IOManager.Size()
}

func (df *DataFile) Sync() error {
	return df.IOManager.Sync()
}

func (df *DataFile) Close() error {
	return df.IOManager.Close()
}
