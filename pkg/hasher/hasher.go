package hasher

import (
	"context"
	"crypto/md5"
	"crypto/sha256"
	"fmt"
	"hash"
	"io"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/sdejongh/dircmp/pkg/models"
)

// DefaultBufferSize is the read buffer used when none is configured
const DefaultBufferSize = 64 * 1024

// Hasher computes a fixed-length digest over a stream's full content.
// Identical bytes always produce identical digests.
type Hasher interface {
	// Hash reads r to EOF and returns its digest
	Hash(ctx context.Context, r io.Reader) ([]byte, error)

	// Algorithm returns the digest algorithm
	Algorithm() models.HashAlgorithm

	// Size returns the digest length in bytes
	Size() int
}

// New returns the hasher for the given algorithm
func New(algorithm models.HashAlgorithm, bufferSize int) (Hasher, error) {
	switch algorithm {
	case models.HashSHA256, "":
		return NewSHA256(bufferSize), nil
	case models.HashMD5:
		return NewMD5(bufferSize), nil
	case models.HashXXHash:
		return NewXXHash(bufferSize), nil
	default:
		return nil, fmt.Errorf("%w: unsupported algorithm %q (use: sha256, md5, xxhash)", models.ErrHashingUnavailable, algorithm)
	}
}

// StreamHasher hashes readers using pooled buffers
type StreamHasher struct {
	algorithm  models.HashAlgorithm
	newHash    func() hash.Hash
	size       int
	bufferPool *sync.Pool
}

// NewSHA256 creates a SHA-256 hasher
func NewSHA256(bufferSize int) *StreamHasher {
	return newStreamHasher(models.HashSHA256, sha256.New, sha256.Size, bufferSize)
}

// NewMD5 creates an MD5 hasher
func NewMD5(bufferSize int) *StreamHasher {
	return newStreamHasher(models.HashMD5, md5.New, md5.Size, bufferSize)
}

// NewXXHash creates a 64-bit xxHash hasher
func NewXXHash(bufferSize int) *StreamHasher {
	return newStreamHasher(models.HashXXHash, func() hash.Hash { return xxhash.New() }, 8, bufferSize)
}

func newStreamHasher(algorithm models.HashAlgorithm, newHash func() hash.Hash, size, bufferSize int) *StreamHasher {
	if bufferSize < 4096 {
		bufferSize = 4096
	}
	return &StreamHasher{
		algorithm: algorithm,
		newHash:   newHash,
		size:      size,
		bufferPool: &sync.Pool{
			New: func() interface{} {
				buf := make([]byte, bufferSize)
				return &buf
			},
		},
	}
}

// Hash computes the digest of r using streaming reads
func (h *StreamHasher) Hash(ctx context.Context, r io.Reader) ([]byte, error) {
	digest := h.newHash()

	bufPtr := h.bufferPool.Get().(*[]byte)
	buffer := *bufPtr
	defer h.bufferPool.Put(bufPtr)

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		n, err := r.Read(buffer)
		if n > 0 {
			digest.Write(buffer[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read content: %w", err)
		}
	}

	return digest.Sum(nil), nil
}

// Algorithm returns the digest algorithm
func (h *StreamHasher) Algorithm() models.HashAlgorithm {
	return h.algorithm
}

// Size returns the digest length in bytes
func (h *StreamHasher) Size() int {
	return h.size
}
