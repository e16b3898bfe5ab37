package codec

import "github.com/kmerkv/kmerkv/model"

// Codec converts between the textual and the packed form of a record and
// partitions keys into groups by their highest bits. Other alphabets or key
// widths only need to implement this interface.
type Codec interface {
	// DecodeWithValue parses one text line into a (key, value) record.
	DecodeWithValue(line []byte) (model.Record, error)

	// DecodeKeyOnly parses one text line and discards the value. The value
	// field must still be present and well-formed.
	DecodeKeyOnly(line []byte) (model.Key, error)

	// Split cuts a key into the group id held in its highest split bits
	// and the remainder of the key within that group.
	Split(key model.Key) (grp uint64, keyInGroup model.Key)

	// Combine is the exact inverse of Split.
	Combine(grp uint64, keyInGroup model.Key) model.Key
}
