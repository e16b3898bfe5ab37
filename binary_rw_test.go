package kmerkv

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmerkv/kmerkv/fio"
	"github.com/kmerkv/kmerkv/model"
)

var errWriteFailed = errors.New("write failed")

type brokenIOManager struct{}

func (brokenIOManager) Read([]byte, int64) (int, error) { return 0, io.ErrUnexpectedEOF }
func (brokenIOManager) Write([]byte) (int, error)       { return 0, errWriteFailed }
func (brokenIOManager) Size() (int64, error)            { return 0, nil }
func (brokenIOManager) Sync() error                     { return nil }
func (brokenIOManager) Close() error                    { return nil }

func testRecord(i int) model.Record {
	return model.Record{Key: model.Key(i*i + 1), Value: model.Value(i)}
}

func writeTestRecords(t *testing.T, path string, n, blockCap int) {
	t.Helper()
	writer, err := NewBinaryKmerWriter(path, WithBlockCap(blockCap))
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, writer.Write(testRecord(i)))
	}
	require.NoError(t, writer.Finish())
}

func readAllRecords(t *testing.T, path string, blockCap int) []model.Record {
	t.Helper()
	reader, err := NewBinaryKmerReader(path, WithBlockCap(blockCap))
	require.NoError(t, err)
	defer reader.Close()

	var records []model.Record
	for {
		record, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return records
		}
		require.NoError(t, err)
		records = append(records, record)
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	const blockCap = 8
	for _, n := range []int{0, 1, blockCap - 1, blockCap, blockCap + 1, 2 * blockCap} {
		path := filepath.Join(t.TempDir(), "records.kmr")
		writeTestRecords(t, path, n, blockCap)

		records := readAllRecords(t, path, blockCap)
		assert.Len(t, records, n, "n=%d", n)
		for i, record := range records {
			assert.Equal(t, testRecord(i), record)
		}
	}
}

func TestBinaryRoundTrip_DifferentBlockCaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.kmr")
	writeTestRecords(t, path, 100, 8)

	// the reader's block capacity is independent of the writer's
	records := readAllRecords(t, path, 3)
	assert.Len(t, records, 100)
	for i, record := range records {
		assert.Equal(t, testRecord(i), record)
	}
}

func TestBinaryPartialFinalBlock(t *testing.T) {
	const blockCap = 8
	path := filepath.Join(t.TempDir(), "records.kmr")
	writeTestRecords(t, path, blockCap+3, blockCap)

	records := readAllRecords(t, path, blockCap)
	assert.Len(t, records, blockCap+3)
}

func TestBinaryReader_TruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.kmr")
	writeTestRecords(t, path, 10, 4)

	// cut the file inside the last record
	f, err := os.OpenFile(path, os.O_WRONLY, 0644)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(10*model.RecordSize-5))
	require.NoError(t, f.Close())

	_, err = NewBinaryKmerReader(path)
	assert.ErrorIs(t, err, ErrDataCorrupted)
}

func TestBinaryReader_MissingFile(t *testing.T) {
	_, err := NewBinaryKmerReader(filepath.Join(t.TempDir(), "missing.kmr"))
	assert.Error(t, err)
}

func TestBinaryReader_Count(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.kmr")
	writeTestRecords(t, path, 17, 4)

	reader, err := NewBinaryKmerReader(path)
	require.NoError(t, err)
	defer reader.Close()
	assert.Equal(t, uint64(17), reader.Count())
}

func TestBinaryWriter_Finish(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.kmr")
	writer, err := NewBinaryKmerWriter(path, WithBlockCap(8))
	require.NoError(t, err)

	require.NoError(t, writer.Write(testRecord(0)))
	assert.Equal(t, uint64(1), writer.Count())

	assert.NoError(t, writer.Finish())
	// Finish is safe to repeat, Write is not
	assert.NoError(t, writer.Finish())
	assert.ErrorIs(t, writer.Write(testRecord(1)), ErrWriterFinished)
}

func TestBinaryWriter_WriteErrorPropagates(t *testing.T) {
	writer, err := NewBinaryKmerWriter("ignored", WithBlockCap(1),
		WithWriteIOManagerCreator(func(string) (fio.IOManager, error) {
			return brokenIOManager{}, nil
		}))
	require.NoError(t, err)

	// block capacity 1 flushes on the first record
	assert.ErrorIs(t, writer.Write(testRecord(0)), errWriteFailed)
	// the buffered record is still pending, Finish retries and reports it
	assert.ErrorIs(t, writer.Finish(), errWriteFailed)
}

func TestBinaryWriter_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.kmr")
	writeTestRecords(t, path, 20, 4)
	writeTestRecords(t, path, 3, 4)

	records := readAllRecords(t, path, 4)
	assert.Len(t, records, 3)
}
