package cache

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/go-crypt/x/blake2b"

	"github.com/brewsearch/brew/store"
)

const (
	keyPrefix  = "qvec:"
	defaultTTL = 24 * time.Hour
)

// Cache stores query embeddings in BadgerDB with a TTL. All operations
// are best-effort: a broken cache degrades to a cache miss, never to a
// failed search.
type Cache struct {
	db     *badger.DB
	model  string
	ttl    time.Duration
	logger *slog.Logger
}

// Option configures a Cache.
type Option func(*Cache) error

// WithTTL sets the entry lifetime. Default is 24 hours.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) error {
		if ttl <= 0 {
			return fmt.Errorf("%w: %s", ErrInvalidTTL, ttl)
		}
		c.ttl = ttl
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// badgerLoggerAdapter adapts slog.Logger to badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// Open opens a query-embedding cache at dir for the given embedding
// model. An empty dir opens an in-memory cache.
func Open(dir, model string, opts ...Option) (*Cache, error) {
	var badgerOpts badger.Options

	if dir == "" {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		info, err := os.Stat(dir)
		if err != nil {
			if os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return nil, err
				}
				info, err = os.Stat(dir)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", dir)
		}
		badgerOpts = badger.DefaultOptions(dir)
	}

	c := &Cache{
		model:  model,
		ttl:    defaultTTL,
		logger: slog.Default().With("component", "cache"),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	badgerOpts.Logger = &badgerLoggerAdapter{logger: c.logger}
	badgerOpts.Compression = options.None

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, err
	}
	c.db = db

	return c, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached vector for query, or false on a miss. Decode
// and read failures count as misses.
func (c *Cache) Get(query string) ([]float32, bool) {
	var vector []float32

	err := c.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get(c.key(query))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			vectors, err := store.UnmarshalVectors(val)
			if err != nil {
				return err
			}
			if len(vectors) != 1 {
				return fmt.Errorf("expected 1 cached vector, got %d", len(vectors))
			}
			vector = vectors[0]
			return nil
		})
	})
	if err != nil {
		if err != badger.ErrKeyNotFound {
			c.logger.Warn("cache read failed", "err", err)
		}
		return nil, false
	}

	return vector, true
}

// Put stores the vector for query with the configured TTL.
func (c *Cache) Put(query string, vector []float32) {
	data, err := store.MarshalVectors([][]float32{vector})
	if err != nil {
		c.logger.Warn("cache encode failed", "err", err)
		return
	}

	err = c.db.Update(func(tx *badger.Txn) error {
		entry := badger.NewEntry(c.key(query), data).WithTTL(c.ttl)
		return tx.SetEntry(entry)
	})
	if err != nil {
		c.logger.Warn("cache write failed", "err", err)
	}
}

// key derives the storage key for a query. The model identifier is part
// of the digest so switching models invalidates every entry.
func (c *Cache) key(query string) []byte {
	h, _ := blake2b.New(16, nil)
	h.Write([]byte(c.model))
	h.Write([]byte{0})
	h.Write([]byte(query))
	return append([]byte(keyPrefix), h.Sum(nil)...)
}
