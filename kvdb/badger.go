package kvdb

import (
	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
)

type badgerStore struct {
	db  *badger.DB
	dir string
}

func openBadger(dir string) (*badgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "badger open %s", dir)
	}
	return &badgerStore{db: db, dir: dir}, nil
}

func (s *badgerStore) Backend() string { return BackendBadger }

// Put 기존 데이터셋을 지운 뒤 WriteBatch 로 쓴다. 두 단계는 원자적이지 않다.
func (s *badgerStore) Put(name string, data []int) error {
	if err := validName(name); err != nil {
		return err
	}
	prefix := prefixKey(name)

	if err := s.db.DropPrefix(prefix); err != nil {
		return errors.Wrapf(err, "badger drop %q", name)
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	if err := wb.Set(prefix, encodeValue(len(data))); err != nil {
		return errors.WithStack(err)
	}
	for i, v := range data {
		if err := wb.Set(indexKey(prefix, i), encodeValue(v)); err != nil {
			return errors.Wrapf(err, "badger put %q", name)
		}
	}
	return errors.Wrapf(wb.Flush(), "badger flush %q", name)
}

func (s *badgerStore) Get(name string) ([]int, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	prefix := prefixKey(name)

	var data []int
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(prefix)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return notFound(name)
		}
		if err != nil {
			return errors.WithStack(err)
		}

		var count int
		if err := item.Value(func(v []byte) error {
			count, err = decodeValue(v)
			return err
		}); err != nil {
			return err
		}
		data = make([]int, 0, count)

		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			if len(item.Key()) == len(prefix) {
				continue
			}
			if err := item.Value(func(v []byte) error {
				n, err := decodeValue(v)
				data = append(data, n)
				return err
			}); err != nil {
				return err
			}
		}

		if len(data) != count {
			return errors.Errorf("kvdb: %q has %d values, expected %d", name, len(data), count)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *badgerStore) Delete(name string) error {
	if err := validName(name); err != nil {
		return err
	}
	prefix := prefixKey(name)

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(prefix)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return notFound(name)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrapf(s.db.DropPrefix(prefix), "badger drop %q", name)
}

func (s *badgerStore) Size() (int64, error) {
	return dirSize(s.dir)
}

func (s *badgerStore) Close() error {
	return errors.WithStack(s.db.Close())
}
