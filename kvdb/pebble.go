package kvdb

import (
	"github.com/cockroachdb/pebble"
	"github.com/pkg/errors"
)

type pebbleStore struct {
	db  *pebble.DB
	dir string
}

func openPebble(dir string) (*pebbleStore, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "pebble open %s", dir)
	}
	return &pebbleStore{db: db, dir: dir}, nil
}

func (s *pebbleStore) Backend() string { return BackendPebble }

// Put 삭제와 쓰기를 하나의 배치로 커밋한다.
func (s *pebbleStore) Put(name string, data []int) error {
	if err := validName(name); err != nil {
		return err
	}
	prefix := prefixKey(name)

	batch := s.db.NewBatch()
	defer batch.Close()

	if err := batch.DeleteRange(prefix, upperBound(name), nil); err != nil {
		return errors.WithStack(err)
	}
	if err := batch.Set(prefix, encodeValue(len(data)), nil); err != nil {
		return errors.WithStack(err)
	}
	for i, v := range data {
		if err := batch.Set(indexKey(prefix, i), encodeValue(v), nil); err != nil {
			return errors.Wrapf(err, "pebble put %q", name)
		}
	}
	return errors.Wrapf(batch.Commit(pebble.Sync), "pebble commit %q", name)
}

func (s *pebbleStore) count(name string) (int, error) {
	val, closer, err := s.db.Get(prefixKey(name))
	if errors.Is(err, pebble.ErrNotFound) {
		return 0, notFound(name)
	}
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer closer.Close()

	return decodeValue(val)
}

func (s *pebbleStore) Get(name string) ([]int, error) {
	if err := validName(name); err != nil {
		return nil, err
	}

	count, err := s.count(name)
	if err != nil {
		return nil, err
	}
	prefix := prefixKey(name)

	it, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: upperBound(name),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	data := make([]int, 0, count)
	for it.First(); it.Valid(); it.Next() {
		if len(it.Key()) == len(prefix) {
			continue
		}
		n, err := decodeValue(it.Value())
		if err != nil {
			it.Close()
			return nil, err
		}
		data = append(data, n)
	}
	if err := it.Close(); err != nil {
		return nil, errors.WithStack(err)
	}

	if len(data) != count {
		return nil, errors.Errorf("kvdb: %q has %d values, expected %d", name, len(data), count)
	}
	return data, nil
}

func (s *pebbleStore) Delete(name string) error {
	if err := validName(name); err != nil {
		return err
	}
	if _, err := s.count(name); err != nil {
		return err
	}

	return errors.Wrapf(s.db.DeleteRange(prefixKey(name), upperBound(name), pebble.Sync), "pebble delete %q", name)
}

func (s *pebbleStore) Size() (int64, error) {
	return dirSize(s.dir)
}

func (s *pebbleStore) Close() error {
	return errors.WithStack(s.db.Close())
}
