package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kmerkv/kmerkv/model"
)

// MaxKmerLength is the longest kmer a 64-bit key can hold at 2 bits per base.
const MaxKmerLength = 32

var (
	ErrKeyOverflow = addPrefix("kmer length exceeds the key width")
	ErrBadSplitBit = addPrefix("split bits outside [0, 2*kmer length]")
	ErrBadLine     = addPrefix("line is not a kmer followed by a count")
	ErrShortKmer   = addPrefix("kmer run shorter than the configured length")
	ErrLongKmer    = addPrefix("kmer run longer than the configured length")
)

func addPrefix(errStr string) error {
	return fmt.Errorf("kmerkv codec err: %s", errStr)
}

// baseBits maps a base to its 2-bit code: A=00, C=01, G=10, T=11.
// The code depends only on the base identity. Everything else is -1.
var baseBits = func() [256]int8 {
	var m [256]int8
	for i := range m {
		m[i] = -1
	}
	m['A'], m['C'], m['G'], m['T'] = 0, 1, 2, 3
	return m
}()

var baseChars = [4]byte{'A', 'C', 'G', 'T'}

// KmerCodec is the Codec for kmers of one constant length. Keys put the
// first base in the highest occupied bit pair, so lexicographic base order
// matches numeric key order.
type KmerCodec struct {
	kmerLength int
	splitBits  int
}

var _ Codec = (*KmerCodec)(nil)

// NewKmerCodec builds a codec for kmers of kmerLength bases, partitioned by
// the highest splitBits bits of the key. kmerLength must fit the key width
// and splitBits must be in [0, 2*kmerLength].
func NewKmerCodec(kmerLength, splitBits int) (*KmerCodec, error) {
	if kmerLength <= 0 || kmerLength > MaxKmerLength {
		return nil, ErrKeyOverflow
	}
	if splitBits < 0 || splitBits > 2*kmerLength {
		return nil, ErrBadSplitBit
	}
	return &KmerCodec{kmerLength: kmerLength, splitBits: splitBits}, nil
}

func (c *KmerCodec) KmerLength() int { return c.kmerLength }

func (c *KmerCodec) SplitBits() int { return c.splitBits }

// DecodeWithValue parses a line of the form "<kmer><count>", where the kmer
// is exactly kmerLength bases of {A,C,G,T} and the count is a decimal
// integer, optionally separated by whitespace.
func (c *KmerCodec) DecodeWithValue(line []byte) (model.Record, error) {
	var key model.Key
	n := 0
	for n < len(line) {
		b := baseBits[line[n]]
		if b < 0 {
			break
		}
		key = key<<2 | model.Key(b)
		n++
	}
	switch {
	case n == 0:
		return model.Record{}, ErrBadLine
	case n < c.kmerLength:
		return model.Record{}, ErrShortKmer
	case n > c.kmerLength:
		return model.Record{}, ErrLongKmer
	}

	value, err := parseValue(line[n:])
	if err != nil {
		return model.Record{}, err
	}
	return model.Record{Key: key, Value: value}, nil
}

// DecodeKeyOnly parses a line like DecodeWithValue and drops the value.
// The trailing count field is still required.
func (c *KmerCodec) DecodeKeyOnly(line []byte) (model.Key, error) {
	record, err := c.DecodeWithValue(line)
	if err != nil {
		return 0, err
	}
	return record.Key, nil
}

// Split returns the highest splitBits bits of key as the group id and the
// remaining low bits as the key within the group.
func (c *KmerCodec) Split(key model.Key) (uint64, model.Key) {
	shift := uint(2*c.kmerLength - c.splitBits)
	// shift may be 64, which Go defines as a zero result for the group
	// and an all-ones mask.
	grp := uint64(key >> shift)
	mask := model.Key(1)<<shift - 1
	return grp, key & mask
}

// Combine rebuilds the original key from a group id and an in-group key.
func (c *KmerCodec) Combine(grp uint64, keyInGroup model.Key) model.Key {
	shift := uint(2*c.kmerLength - c.splitBits)
	return model.Key(grp)<<shift | keyInGroup
}

// EncodeKey renders a key back into its base string.
func (c *KmerCodec) EncodeKey(key model.Key) []byte {
	out := make([]byte, c.kmerLength)
	for i := c.kmerLength - 1; i >= 0; i-- {
		out[i] = baseChars[key&3]
		key >>= 2
	}
	return out
}

func parseValue(rest []byte) (model.Value, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(string(rest)), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadLine, err)
	}
	return model.Value(v), nil
}
