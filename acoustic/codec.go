package acoustic

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Encoding identifies the wire form of a sample array. The tag travels
// with the field that carries the samples; the form is never inferred
// from content.
type Encoding int

const (
	EncodingText   Encoding = iota // whitespace-separated decimal
	EncodingBase64                 // base64 of little-endian IEEE 754
	EncodingHex                    // hex of little-endian IEEE 754
)

func (e Encoding) String() string {
	switch e {
	case EncodingText:
		return "text"
	case EncodingBase64:
		return "base64"
	case EncodingHex:
		return "hex"
	}
	return fmt.Sprintf("Encoding(%d)", int(e))
}

// ParseEncoding converts a tag name back to an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "text":
		return EncodingText, nil
	case "base64":
		return EncodingBase64, nil
	case "hex":
		return EncodingHex, nil
	}
	return 0, fmt.Errorf("unknown sample encoding %q", s)
}

// EncodeSamples renders samples in the given wire form. Encoding followed
// by DecodeSamples reproduces the array bit for bit; the text form uses
// the shortest decimal that parses back to the same float32.
func EncodeSamples(enc Encoding, samples []float32) (string, error) {
	switch enc {
	case EncodingText:
		var sb strings.Builder
		for i, s := range samples {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(float64(s), 'g', -1, 32))
		}
		return sb.String(), nil
	case EncodingBase64:
		return base64.StdEncoding.EncodeToString(packLE(samples)), nil
	case EncodingHex:
		return hex.EncodeToString(packLE(samples)), nil
	}
	return "", fmt.Errorf("encode samples: unknown encoding %d", int(enc))
}

// DecodeSamples parses data in the given wire form back into samples.
func DecodeSamples(enc Encoding, data string) ([]float32, error) {
	switch enc {
	case EncodingText:
		fields := strings.Fields(data)
		out := make([]float32, 0, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 32)
			if err != nil {
				return nil, fmt.Errorf("decode text samples: field %d: %w", i, err)
			}
			out = append(out, float32(v))
		}
		return out, nil
	case EncodingBase64:
		raw, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil, fmt.Errorf("decode base64 samples: %w", err)
		}
		return unpackLE(raw)
	case EncodingHex:
		raw, err := hex.DecodeString(data)
		if err != nil {
			return nil, fmt.Errorf("decode hex samples: %w", err)
		}
		return unpackLE(raw)
	}
	return nil, fmt.Errorf("decode samples: unknown encoding %d", int(enc))
}

func packLE(samples []float32) []byte {
	raw := make([]byte, 4*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(raw[4*i:], math.Float32bits(s))
	}
	return raw
}

func unpackLE(raw []byte) ([]float32, error) {
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("decode samples: %d bytes is not a multiple of 4", len(raw))
	}
	out := make([]float32, len(raw)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[4*i:]))
	}
	return out, nil
}
