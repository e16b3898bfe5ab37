package kmerkv

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/kmerkv/kmerkv/codec"
	"github.com/kmerkv/kmerkv/model"
)

// KmerReader reads a text kmer file one line at a time and decodes every
// line through a codec. The sequence is forward-only; a decode failure is
// reported with its line number and ends the stream.
type KmerReader struct {
	file    *os.File
	scanner *bufio.Scanner
	codec   codec.Codec
	line    int
}

func NewKmerReader(path string, cdc codec.Codec) (*KmerReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(file)
	// lines are unbounded, let the scanner grow up to 1 MiB
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	return &KmerReader{
		file:    file,
		scanner: scanner,
		codec:   cdc,
	}, nil
}

// Next returns the next decoded record, or io.EOF after the last line.
func (kr *KmerReader) Next() (model.Record, error) {
	line, err := kr.nextLine()
	if err != nil {
		return model.Record{}, err
	}
	record, err := kr.codec.DecodeWithValue(line)
	if err != nil {
		return model.Record{}, fmt.Errorf("line %d: %w", kr.line, err)
	}
	return record, nil
}

// NextKey is Next with the value dropped.
func (kr *KmerReader) NextKey() (model.Key, error) {
	line, err := kr.nextLine()
	if err != nil {
		return 0, err
	}
	key, err := kr.codec.DecodeKeyOnly(line)
	if err != nil {
		return 0, fmt.Errorf("line %d: %w", kr.line, err)
	}
	return key, nil
}

func (kr *KmerReader) nextLine() ([]byte, error) {
	if !kr.scanner.Scan() {
		if err := kr.scanner.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	kr.line++
	return kr.scanner.Bytes(), nil
}

func (kr *KmerReader) Close() error {
	return kr.file.Close()
}
