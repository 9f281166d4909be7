package search

import (
	"fmt"

	"github.com/brewsearch/brew/core"
	"github.com/brewsearch/brew/store"
)

// Index is an immutable view over one corpus build: profiles and their
// embedding vectors in corpus order. Build it once at startup and share
// it freely across goroutines.
type Index struct {
	profiles []*core.Profile
	vectors  [][]float32
	dim      int
	meta     store.Metadata
}

// NewIndex builds an index from a loaded corpus. Counts and vector
// dimensions must agree; a torn corpus is rejected here rather than
// surfacing as wrong scores later.
func NewIndex(corpus *store.Corpus) (*Index, error) {
	if corpus == nil {
		return nil, ErrIndexRequired
	}
	if len(corpus.Profiles) != len(corpus.Vectors) {
		return nil, fmt.Errorf("%w: %d profiles, %d vectors",
			store.ErrCountMismatch, len(corpus.Profiles), len(corpus.Vectors))
	}

	dim := 0
	if len(corpus.Vectors) > 0 {
		dim = len(corpus.Vectors[0])
	}
	for i, vec := range corpus.Vectors {
		if len(vec) != dim {
			return nil, fmt.Errorf("%w: vector %d has length %d, want %d",
				core.ErrDimensionMismatch, i, len(vec), dim)
		}
	}

	return &Index{
		profiles: corpus.Profiles,
		vectors:  corpus.Vectors,
		dim:      dim,
		meta:     corpus.Meta,
	}, nil
}

// Len returns the number of indexed profiles.
func (ix *Index) Len() int {
	return len(ix.profiles)
}

// Dimension returns the embedding dimension, 0 for an empty index.
func (ix *Index) Dimension() int {
	return ix.dim
}

// Meta returns the build metadata the index was loaded with.
func (ix *Index) Meta() store.Metadata {
	return ix.meta
}

// Profile returns the profile at corpus position i.
func (ix *Index) Profile(i int) (*core.Profile, error) {
	if i < 0 || i >= len(ix.profiles) {
		return nil, fmt.Errorf("%w: position %d of %d", core.ErrProfileNotFound, i, len(ix.profiles))
	}
	return ix.profiles[i], nil
}

// Profiles returns all indexed profiles in corpus order. The returned
// slice is shared; callers must not mutate it.
func (ix *Index) Profiles() []*core.Profile {
	return ix.profiles
}
