package kvdb

import (
	"encoding/binary"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.etcd.io/bbolt"
)

// boltStore 데이터셋 하나당 버킷 하나
type boltStore struct {
	db   *bbolt.DB
	path string
}

func openBolt(path string) (*boltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "bbolt open %s", path)
	}
	return &boltStore{db: db, path: path}, nil
}

func (s *boltStore) Backend() string { return BackendBolt }

func (s *boltStore) Put(name string, data []int) error {
	if err := validName(name); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(name)) != nil {
			if err := tx.DeleteBucket([]byte(name)); err != nil {
				return err
			}
		}

		b, err := tx.CreateBucket([]byte(name))
		if err != nil {
			return err
		}
		// 키가 순차 증가하므로 페이지를 꽉 채운다
		b.FillPercent = 1.0

		for i, v := range data {
			if err := b.Put(indexKey(nil, i), encodeValue(v)); err != nil {
				return err
			}
		}
		return nil
	})
	return errors.Wrapf(err, "bbolt put %q", name)
}

func (s *boltStore) Get(name string) ([]int, error) {
	if err := validName(name); err != nil {
		return nil, err
	}

	var data []int
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(name))
		if b == nil {
			return notFound(name)
		}

		data = make([]int, 0, b.Stats().KeyN)
		return b.ForEach(func(k, v []byte) error {
			if len(k) != 8 || binary.BigEndian.Uint64(k) != uint64(len(data)) {
				return errors.Errorf("kvdb: unexpected key %x in %q", k, name)
			}
			n, err := decodeValue(v)
			if err != nil {
				return err
			}
			data = append(data, n)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *boltStore) Delete(name string) error {
	if err := validName(name); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(name)) == nil {
			return notFound(name)
		}
		return errors.WithStack(tx.DeleteBucket([]byte(name)))
	})
}

func (s *boltStore) Size() (int64, error) {
	fi, err := os.Stat(s.path)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return fi.Size(), nil
}

func (s *boltStore) Close() error {
	return errors.WithStack(s.db.Close())
}
