package config

import (
	"encoding/binary"
	"fmt"
	"os"
)

// LoadProgram reads a bytecode program file: a sequence of 32-bit
// little-endian words, word = event<<16 | response, with no header,
// checksum, or versioning. An empty program is invalid.
func LoadProgram(path string) ([]uint32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read program %s: %w", path, err)
	}
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("config: program %s is not a whole number of 32-bit words", path)
	}
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("config: program %s is empty", path)
	}
	return words, nil
}
