package kvdb

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// 키 레이아웃 (badger, pebble):
//
//	name 0x00              -> 원소 개수
//	name 0x00 <index:8 BE> -> 원소 값
//
// bbolt 는 데이터셋마다 버킷을 쓰고 버킷 안에 <index:8 BE> 키만 둔다.

func prefixKey(name string) []byte {
	k := make([]byte, 0, len(name)+1)
	k = append(k, name...)
	return append(k, 0)
}

// upperBound prefixKey(name) 로 시작하는 모든 키보다 큰 첫 키
func upperBound(name string) []byte {
	k := make([]byte, 0, len(name)+1)
	k = append(k, name...)
	return append(k, 1)
}

func indexKey(prefix []byte, i int) []byte {
	k := make([]byte, len(prefix)+8)
	copy(k, prefix)
	binary.BigEndian.PutUint64(k[len(prefix):], uint64(i))
	return k
}

func encodeValue(v int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(int64(v)))
	return b
}

func decodeValue(b []byte) (int, error) {
	if len(b) != 8 {
		return 0, errors.Errorf("kvdb: corrupt value of %d bytes", len(b))
	}
	return int(int64(binary.BigEndian.Uint64(b))), nil
}
