package model

import "encoding/binary"

// Key is a constant-length kmer packed into 64 bits, 2 bits per base with
// the most significant base first. A kmer of length L occupies exactly the
// low 2*L bits.
type Key uint64

// Value is the numeric payload attached to a key, usually an occurrence count.
type Value uint32

// Record is one (key, value) pair.
type Record struct {
	Key   Key
	Value Value
}

// RecordSize is the on-disk size of one record: key then value,
// little-endian, no padding between fields or records.
const RecordSize = 12

// PutRecord marshals a record into buf, which must hold RecordSize bytes.
func PutRecord(buf []byte, record Record) {
	binary.LittleEndian.PutUint64(buf[:8], uint64(record.Key))
	binary.LittleEndian.PutUint32(buf[8:RecordSize], uint32(record.Value))
}

// GetRecord unmarshals a record from buf, which must hold RecordSize bytes.
func GetRecord(buf []byte) Record {
	return Record{
		Key:   Key(binary.LittleEndian.Uint64(buf[:8])),
		Value: Value(binary.LittleEndian.Uint32(buf[8:RecordSize])),
	}
}
