package store

import (
	"fmt"

	"github.com/brewsearch/brew/core"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MarshalVectors encodes the embedding matrix: a varint (count, dim) header
// followed by count*dim raw float32 values. The fixed-width float encoding
// makes reload a straight scan with no text parsing.
func MarshalVectors(vectors [][]float32) ([]byte, error) {
	count := len(vectors)
	dim := 0
	if count > 0 {
		dim = len(vectors[0])
	}

	size := varint.PositiveInt.Size(count) + varint.PositiveInt.Size(dim)
	size += count * dim * raw.Float32.Size(0)

	buf := make([]byte, size)
	n := varint.PositiveInt.Marshal(count, buf)
	n += varint.PositiveInt.Marshal(dim, buf[n:])

	for i, vec := range vectors {
		if len(vec) != dim {
			return nil, fmt.Errorf("%w: vector %d has length %d, want %d",
				core.ErrDimensionMismatch, i, len(vec), dim)
		}
		for _, v := range vec {
			n += raw.Float32.Marshal(v, buf[n:])
		}
	}

	return buf, nil
}

// UnmarshalVectors decodes an embedding matrix produced by MarshalVectors.
func UnmarshalVectors(data []byte) ([][]float32, error) {
	count, n, err := varint.PositiveInt.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: bad count header: %v", ErrCorruptVectors, err)
	}
	dim, m, err := varint.PositiveInt.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: bad dimension header: %v", ErrCorruptVectors, err)
	}
	n += m

	vectors := make([][]float32, count)
	for i := 0; i < count; i++ {
		vec := make([]float32, dim)
		for j := 0; j < dim; j++ {
			v, m, err := raw.Float32.Unmarshal(data[n:])
			if err != nil {
				return nil, fmt.Errorf("%w: truncated at vector %d: %v", ErrCorruptVectors, i, err)
			}
			vec[j] = v
			n += m
		}
		vectors[i] = vec
	}

	return vectors, nil
}
