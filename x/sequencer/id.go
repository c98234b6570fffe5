package sequencer

import (
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"time"
)

var (
	// ascending in ASCII so that encoded ids sort like the integers they encode
	encoding = "0123456789abcdefghjkmnpqrstvwxyz"
	encoder  = base32.NewEncoding(encoding).WithPadding(base32.NoPadding)
	decoder  = base32.NewEncoding(encoding).WithPadding(base32.NoPadding)
)

// EncodedLength is the length of ID.String()
const EncodedLength = 13

// ID is a snowflake identifier
type ID uint64

func (id ID) Bytes() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}

func (id ID) String() string {
	return encoder.EncodeToString(id.Bytes())
}

// Time returns the millisecond the id was issued in
func (id ID) Time() time.Time {
	m := int64(id>>timestampShift) + epochMillis
	return time.UnixMilli(m)
}

func (id ID) Datacenter() int64 {
	return int64(id>>datacenterShift) & maxDatacenterID
}

func (id ID) Worker() int64 {
	return int64(id>>workerShift) & maxWorkerID
}

func (id ID) Sequence() int64 {
	return int64(id) & sequenceMask
}

func ParseID(s string) (ID, error) {
	if len(s) != EncodedLength {
		return 0, fmt.Errorf("invalid id length: %d", len(s))
	}

	b, err := decoder.DecodeString(s)
	if err != nil {
		return 0, err
	}

	if len(b) != 8 {
		return 0, fmt.Errorf("invalid id: %s", s)
	}

	return ID(binary.BigEndian.Uint64(b)), nil
}

// IsSeemsID reports whether str decodes as an ID
func IsSeemsID(str string) bool {
	_, err := ParseID(str)
	return err == nil
}
