package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/gbmviz/gbm-visualizer/internal/domain"
	"github.com/prometheus/prometheus/tsdb/chunkenc"
)

var (
	ErrInvalidChecksum = errors.New("checksum mismatch: data is corrupted")
	ErrTooSmall        = errors.New("frame too small to be a valid chunk")
	ErrEmptyTrajectory = errors.New("trajectory has no points")
)

var crcTable = crc32.MakeTable(crc32.Castagnoli)

// EncodeTrajectory packs a trajectory's prices into an XOR-compressed chunk
// framed as [encoding byte | chunk bytes | CRC32-Castagnoli]. The sample
// index is used as the chunk timestamp; the time coordinate is implied by
// the step count and reconstructed on decode.
func EncodeTrajectory(tr domain.Trajectory) ([]byte, error) {
	if len(tr) == 0 {
		return nil, ErrEmptyTrajectory
	}

	c := chunkenc.NewXORChunk()
	app, err := c.Appender()
	if err != nil {
		return nil, fmt.Errorf("chunk appender: %w", err)
	}
	for i, pt := range tr {
		app.Append(int64(i), pt.Price)
	}

	raw := c.Bytes()
	frame := make([]byte, 1+len(raw)+4)
	frame[0] = byte(c.Encoding())
	copy(frame[1:], raw)

	checksum := crc32.Checksum(frame[:1+len(raw)], crcTable)
	binary.BigEndian.PutUint32(frame[1+len(raw):], checksum)

	return frame, nil
}

// DecodeTrajectory validates a frame and rebuilds the trajectory. Times are
// reconstructed as i*dt with dt = 1/(points-1), the fixed-horizon layout
// every encoded trajectory has.
func DecodeTrajectory(data []byte) (domain.Trajectory, error) {
	if len(data) < 5 {
		return nil, ErrTooSmall
	}

	payload := data[:len(data)-4]
	want := binary.BigEndian.Uint32(data[len(data)-4:])
	if got := crc32.Checksum(payload, crcTable); got != want {
		return nil, ErrInvalidChecksum
	}

	encoding := chunkenc.Encoding(payload[0])
	if encoding != chunkenc.EncXOR {
		return nil, fmt.Errorf("unsupported encoding type: %d", encoding)
	}

	c := chunkenc.NewXORChunk()
	c.Reset(payload[1:])

	var prices []float64
	it := c.Iterator(nil)
	for it.Next() != chunkenc.ValNone {
		_, v := it.At()
		prices = append(prices, v)
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("chunk iteration: %w", err)
	}
	if len(prices) == 0 {
		return nil, ErrEmptyTrajectory
	}

	dt := 0.0
	if len(prices) > 1 {
		dt = (domain.TimeMax - domain.TimeMin) / float64(len(prices)-1)
	}

	tr := make(domain.Trajectory, len(prices))
	for i, p := range prices {
		tr[i] = domain.Point{Time: float64(i) * dt, Price: p}
	}
	return tr, nil
}
