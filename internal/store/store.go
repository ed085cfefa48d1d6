package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gbmviz/gbm-visualizer/internal/domain"
)

const (
	RepoDir    = ".gbmviz"
	ObjectsDir = "objects"
)

// Store is a content-addressed object store for encoded trajectory frames:
// sha256-named objects in two-character shard directories. Writes are
// idempotent and fsynced.
type Store struct {
	Root string
}

// New returns a store rooted at projectRoot/.gbmviz.
func New(projectRoot string) *Store {
	return &Store{Root: filepath.Join(projectRoot, RepoDir)}
}

func (s *Store) Init() error {
	if err := os.MkdirAll(filepath.Join(s.Root, ObjectsDir), 0o0755); err != nil {
		return fmt.Errorf("failed to init store at %s: %w", s.Root, err)
	}
	return nil
}

func (s *Store) Exists() bool {
	info, err := os.Stat(s.Root)
	return err == nil && info.IsDir()
}

// Put stores a frame and returns its hash.
func (s *Store) Put(data []byte) (string, error) {
	hash := s.hash(data)
	shard := hash[:2]
	name := hash[2:]

	shardDir := filepath.Join(s.Root, ObjectsDir, shard)
	if err := os.MkdirAll(shardDir, 0o0755); err != nil {
		return "", fmt.Errorf("shard creation failed: %w", err)
	}

	path := filepath.Join(shardDir, name)

	// Idempotency check
	if _, err := os.Stat(path); err == nil {
		return hash, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return "", err
	}

	if err := f.Sync(); err != nil {
		return "", fmt.Errorf("fsync failed: %w", err)
	}

	return hash, nil
}

func (s *Store) Get(hash string) ([]byte, error) {
	if len(hash) < 3 {
		return nil, fmt.Errorf("hash %q too short", hash)
	}
	path := filepath.Join(s.Root, ObjectsDir, hash[:2], hash[2:])
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read object %s: %w", hash, err)
	}
	return data, nil
}

func (s *Store) Delete(hash string) error {
	if len(hash) < 3 {
		return fmt.Errorf("hash %q too short", hash)
	}
	path := filepath.Join(s.Root, ObjectsDir, hash[:2], hash[2:])
	return os.Remove(path)
}

func (s *Store) List() ([]string, error) {
	var hashes []string
	objRoot := filepath.Join(s.Root, ObjectsDir)

	err := filepath.Walk(objRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			shard := filepath.Base(filepath.Dir(path))
			hashes = append(hashes, shard+info.Name())
		}
		return nil
	})

	return hashes, err
}

// SaveRun encodes and stores every trajectory of a run, returning one
// object hash per path in path order.
func (s *Store) SaveRun(result *domain.RunResult) ([]string, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}

	hashes := make([]string, 0, len(result.Trajectories))
	for p, tr := range result.Trajectories {
		frame, err := EncodeTrajectory(tr)
		if err != nil {
			return nil, fmt.Errorf("encode path %d: %w", p, err)
		}
		hash, err := s.Put(frame)
		if err != nil {
			return nil, fmt.Errorf("store path %d: %w", p, err)
		}
		hashes = append(hashes, hash)
	}
	return hashes, nil
}

// LoadTrajectory fetches and decodes a stored trajectory by hash.
func (s *Store) LoadTrajectory(hash string) (domain.Trajectory, error) {
	data, err := s.Get(hash)
	if err != nil {
		return nil, err
	}
	return DecodeTrajectory(data)
}

func (s *Store) hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
