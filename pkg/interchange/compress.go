package interchange

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/golang/snappy"

	"github.com/dd0wney/mstviz/pkg/graph"
)

// Compressed session files: a 4-byte magic, a CRC32 of the compressed
// payload, then the snappy block. The checksum catches truncated or
// corrupted files before snappy gets confused by them.
var compressedMagic = []byte("MSTZ")

// EncodeCompressed exports the session state as a compact compressed
// document.
func EncodeCompressed(g graph.Graph, positions map[string]graph.Position) ([]byte, error) {
	plain, err := Export(g, positions)
	if err != nil {
		return nil, err
	}

	compressed := snappy.Encode(nil, plain)

	out := make([]byte, 0, len(compressedMagic)+4+len(compressed))
	out = append(out, compressedMagic...)
	out = binary.BigEndian.AppendUint32(out, crc32.ChecksumIEEE(compressed))
	out = append(out, compressed...)
	return out, nil
}

// DecodeCompressed reverses EncodeCompressed.
func DecodeCompressed(data []byte) (graph.Graph, map[string]graph.Position, error) {
	headerLen := len(compressedMagic) + 4
	if len(data) < headerLen {
		return graph.Graph{}, nil, errors.New("compressed document too short")
	}
	if string(data[:len(compressedMagic)]) != string(compressedMagic) {
		return graph.Graph{}, nil, errors.New("not a compressed session file")
	}

	checksum := binary.BigEndian.Uint32(data[len(compressedMagic):headerLen])
	compressed := data[headerLen:]
	if crc32.ChecksumIEEE(compressed) != checksum {
		return graph.Graph{}, nil, errors.New("compressed document failed checksum, file is corrupted")
	}

	plain, err := snappy.Decode(nil, compressed)
	if err != nil {
		return graph.Graph{}, nil, fmt.Errorf("decompress document: %w", err)
	}

	return Import(plain)
}
