package storage

import (
	"context"
	"os"
	"sync"

	"contesthub/internal/models"
	"contesthub/internal/providers"
	"contesthub/internal/storage/interfaces"

	json "github.com/goccy/go-json"
)

// FileStore keeps every bucket in memory and rewrites a compressed snapshot
// on each mutation, so a crash never loses an acknowledged write.
type FileStore struct {
	mu         sync.RWMutex
	path       string
	buckets    map[string]map[string]string
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileStore(path string, compressor interfaces.CompressorInterface, logger providers.Logger) (*FileStore, error) {
	fs := &FileStore{
		path:       path,
		buckets:    make(map[string]map[string]string),
		compressor: compressor,
		logger:     logger,
	}
	if err := fs.loadFromFile(); err != nil {
		return nil, err
	}
	return fs, nil
}

func (fs *FileStore) Get(_ context.Context, bucket, key string) (string, bool, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	v, ok := fs.buckets[bucket][key]
	return v, ok, nil
}

func (fs *FileStore) GetAll(_ context.Context, bucket string) (map[string]string, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	out := make(map[string]string, len(fs.buckets[bucket]))
	for k, v := range fs.buckets[bucket] {
		out[k] = v
	}
	return out, nil
}

func (fs *FileStore) Set(_ context.Context, bucket, key, value string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	b, ok := fs.buckets[bucket]
	if !ok {
		b = make(map[string]string)
		fs.buckets[bucket] = b
	}
	prev, existed := b[key]
	b[key] = value

	if err := fs.saveToFile(); err != nil {
		if existed {
			b[key] = prev
		} else {
			delete(b, key)
		}
		return err
	}
	return nil
}

func (fs *FileStore) Remove(_ context.Context, bucket, key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	prev, ok := fs.buckets[bucket][key]
	if !ok {
		return nil
	}
	delete(fs.buckets[bucket], key)

	if err := fs.saveToFile(); err != nil {
		fs.buckets[bucket][key] = prev
		return err
	}
	return nil
}

func (fs *FileStore) Close() error {
	fs.compressor.Close()
	return nil
}

// saveToFile must be called with mu held.
func (fs *FileStore) saveToFile() error {
	jsonData, err := json.Marshal(models.Storage{
		Version: models.StorageVersion,
		Buckets: fs.buckets,
	})
	if err != nil {
		return err
	}
	data, err := fs.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fs.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fs.path)
}

func (fs *FileStore) loadFromFile() error {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			fs.logger.Infof(providers.TypeApp, "No store file at %s, starting empty", fs.path)
			return nil
		}
		return err
	}

	decompressed, err := fs.compressor.Decompress(data)
	if err != nil {
		return err
	}

	var storage models.Storage
	if err := json.Unmarshal(decompressed, &storage); err == nil && storage.Buckets != nil {
		for name, b := range storage.Buckets {
			if b == nil {
				b = make(map[string]string)
			}
			fs.buckets[name] = b
		}
		fs.logger.Infof(providers.TypeApp, "Loaded store file %s (version %d)", fs.path, storage.Version)
		return nil
	}

	// Older snapshots were a bare contestId -> url map.
	fs.logger.Warnf(providers.TypeApp, "Unversioned store file found, migrating solution links")
	var links map[string]string
	if err := json.Unmarshal(decompressed, &links); err != nil {
		fs.logger.Warnf(providers.TypeApp, "Migration failed")
		return err
	}
	fs.buckets[models.BucketSolutionLinks] = links
	return nil
}
