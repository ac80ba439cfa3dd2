package sfxforge

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrEncodingOverflow marks a buffer whose data chunk would not fit the
// 32-bit RIFF size fields.
var ErrEncodingOverflow = errors.New("wav data exceeds riff chunk size limit")

const (
	wavHeaderSize = 44
	bytesPerSmp   = 2 // PCM16
)

// EncodeWav serializes a buffer into a canonical RIFF/WAVE/PCM16 container.
//
// Only mono 16-bit output is produced; the catalog never exercises other
// channel counts or bit depths. Every sample is clamped to [-1,1] before
// quantization, so out-of-range values saturate instead of wrapping. There
// is no resampling and no dithering.
func EncodeWav(buf *SampleBuffer) ([]byte, error) {
	if buf.Rate() <= 0 {
		return nil, fmt.Errorf("%w: non-positive sample rate %d", ErrInvalidSpec, buf.Rate())
	}
	dataBytes := uint64(buf.Len()) * bytesPerSmp
	if dataBytes > math.MaxUint32-36 {
		return nil, fmt.Errorf("%w: %d frames", ErrEncodingOverflow, buf.Len())
	}

	out := make([]byte, wavHeaderSize+int(dataBytes))
	le := binary.LittleEndian

	const (
		channels = 1
		bitDepth = 16
	)
	rate := uint32(buf.Rate())

	copy(out[0:4], "RIFF")
	le.PutUint32(out[4:8], 36+uint32(dataBytes))
	copy(out[8:12], "WAVE")
	copy(out[12:16], "fmt ")
	le.PutUint32(out[16:20], 16) // PCM fmt chunk size
	le.PutUint16(out[20:22], 1)  // audio format = PCM
	le.PutUint16(out[22:24], channels)
	le.PutUint32(out[24:28], rate)
	le.PutUint32(out[28:32], rate*channels*bitDepth/8) // byte rate
	le.PutUint16(out[32:34], channels*bitDepth/8)      // block align
	le.PutUint16(out[34:36], bitDepth)
	copy(out[36:40], "data")
	le.PutUint32(out[40:44], uint32(dataBytes))

	for i, s := range buf.Samples() {
		q := int16(math.Round(clamp(s, -1.0, 1.0) * 32767))
		le.PutUint16(out[wavHeaderSize+i*bytesPerSmp:], uint16(q))
	}
	return out, nil
}
