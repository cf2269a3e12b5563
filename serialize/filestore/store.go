package filestore

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/ddt-go/ddt/label"
	"github.com/ddt-go/ddt/messaging"
	"github.com/ddt-go/ddt/point"
	"github.com/ddt-go/ddt/serialize"
	"github.com/ddt-go/ddt/tile"
)

// Store is the default serialize.Serializer: one binary file per tile
// under prefix, plus a JSON index of which tile indices have been
// persisted.
type Store struct {
	prefix string

	mu    sync.Mutex
	index map[label.Index]string
}

var _ serialize.Serializer = (*Store)(nil)

// NewStore returns a Store writing files named prefix+"<index>.bin",
// loading any existing index.json alongside prefix if present.
func NewStore(prefix string) *Store {
	s := &Store{prefix: prefix, index: make(map[label.Index]string)}
	s.loadIndex()
	return s
}

func (s *Store) indexPath() string { return s.prefix + "index.json" }

func (s *Store) tilePath(idx label.Index) string {
	return s.prefix + strconv.Itoa(int(idx)) + ".bin"
}

func (s *Store) loadIndex() {
	f, err := os.Open(s.indexPath())
	if err != nil {
		return
	}
	defer f.Close()
	var raw map[string]string
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return
	}
	for k, v := range raw {
		i, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		s.index[label.Index(i)] = v
	}
}

func (s *Store) persistIndex() error {
	raw := make(map[string]string, len(s.index))
	for k, v := range s.index {
		raw[strconv.Itoa(int(k))] = v
	}
	f, err := os.Create(s.indexPath())
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(raw)
}

// HasTile reports whether idx appears in the persisted index.
func (s *Store) HasTile(idx label.Index) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.index[idx]
	return ok
}

// Save writes t's full vertex stream (point, label per vertex) to its
// tile file and records it in the index. Returns false if t is empty
// (nothing worth persisting).
func (s *Store) Save(t *tile.Triangulation) (bool, error) {
	ids := t.Complex.VertexIDs()
	if len(ids) == 0 {
		return false, nil
	}

	path := s.tilePath(t.ID)
	f, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("filestore: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	dim := t.Complex.Dimension()
	if err := binary.Write(w, binary.LittleEndian, uint64(dim)); err != nil {
		return false, err
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(ids))); err != nil {
		return false, err
	}
	for _, v := range ids {
		p, err := t.Complex.PointOf(v)
		if err != nil {
			return false, err
		}
		for _, c := range p {
			if err := binary.Write(w, binary.LittleEndian, c); err != nil {
				return false, err
			}
		}
		lbl := t.LabelOf(v)
		if err := binary.Write(w, binary.LittleEndian, int64(lbl)); err != nil {
			return false, err
		}
	}
	if err := w.Flush(); err != nil {
		return false, err
	}

	s.mu.Lock()
	s.index[t.ID] = path
	err = s.persistIndex()
	s.mu.Unlock()
	return true, err
}

// Load reads t.ID's persisted vertex stream (if any) and bulk re-inserts
// it into t via InsertMany, in stored order, a lossy-but-sufficient
// reconstruction of the tile's local complex: cell adjacency is rebuilt
// from scratch by re-running Bowyer-Watson rather than restored verbatim.
func (s *Store) Load(t *tile.Triangulation) (bool, error) {
	s.mu.Lock()
	path, ok := s.index[t.ID]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("filestore: open %s: %w", path, err)
	}
	defer f.Close()
	r := bufio.NewReader(f)

	var dim, count uint64
	if err := binary.Read(r, binary.LittleEndian, &dim); err != nil {
		return false, ErrCorruptFile
	}
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return false, ErrCorruptFile
	}
	if int(dim) != t.Complex.Dimension() {
		return false, ErrCorruptFile
	}

	items := make([]messaging.Item, 0, count)
	for i := uint64(0); i < count; i++ {
		p := make(point.Point, dim)
		for d := 0; d < int(dim); d++ {
			if err := binary.Read(r, binary.LittleEndian, &p[d]); err != nil {
				return false, ErrCorruptFile
			}
		}
		var lbl int64
		if err := binary.Read(r, binary.LittleEndian, &lbl); err != nil {
			return false, ErrCorruptFile
		}
		items = append(items, messaging.Item{P: p, Label: label.Index(lbl)})
	}

	if _, _, err := t.InsertMany(items, false); err != nil {
		return false, err
	}
	return true, nil
}

