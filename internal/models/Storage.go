package models

const (
	BucketSolutionLinks = "solution_links"
	BucketSettings      = "settings"
)

const StorageVersion = 1

// Storage is the on-disk snapshot of every bucket of the key-value store.
type Storage struct {
	Version int                          `json:"version"`
	Buckets map[string]map[string]string `json:"buckets"`
}
