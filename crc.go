package bmpcat

import (
	"fmt"
	"hash/crc32"
)

// crcBytes formats the CRC-32 of a file's contents the way the
// catalog stores it.
func crcBytes(b []byte) string {
	return fmt.Sprintf("%08X", crc32.ChecksumIEEE(b))
}
