package main

import (
	"database/sql/driver"
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

const occupancyBytes = len(occupancy{}) * 8

func (occ occupancy) Value() (driver.Value, error) {
	buffer := make([]byte, occupancyBytes)
	for i, mask := range occ {
		binary.BigEndian.PutUint64(buffer[i*8:], mask)
	}
	return hex.EncodeToString(buffer), nil
}

func (occ *occupancy) Scan(cell interface{}) error {
	var src []byte
	switch cell := cell.(type) {
	case string:
		src = []byte(cell)
	case []byte:
		src = cell
	default:
		return fmt.Errorf("invalid format scaning %#v", cell)
	}
	buffer := make([]byte, hex.DecodedLen(len(src)))
	if _, err := hex.Decode(buffer, src); err != nil {
		return err
	}
	if len(buffer) != occupancyBytes {
		return fmt.Errorf("occupancy is not length %d: %d", occupancyBytes, len(buffer))
	}
	for i := range occ {
		occ[i] = binary.BigEndian.Uint64(buffer[i*8:])
	}
	return nil
}
