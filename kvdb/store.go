// Package kvdb 는 정렬 대상 데이터셋([]int)을 이름으로 저장하고 읽어 오는 저장소다.
//
// 백엔드는 bbolt, BadgerDB, PebbleDB, 그리고 한 줄에 숫자 하나를 쓰는 텍스트 파일이다.
// 같은 이름으로 Put 하면 기존 데이터셋을 통째로 대체한다.
package kvdb

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/convox/logger"
	"github.com/pkg/errors"
)

// 백엔드 이름
const (
	BackendBolt   = "bbolt"
	BackendBadger = "badger"
	BackendPebble = "pebble"
	BackendFile   = "file"
)

var (
	// ErrNotFound 데이터셋이 없음
	ErrNotFound = errors.New("kvdb: dataset not found")

	// ErrUnknownBackend 지원하지 않는 백엔드 이름
	ErrUnknownBackend = errors.New("kvdb: unknown backend")

	// ErrInvalidName 비어 있거나 구분자를 포함한 데이터셋 이름
	ErrInvalidName = errors.New("kvdb: invalid dataset name")
)

// Store 데이터셋 저장소
type Store interface {
	Backend() string
	Put(name string, data []int) error
	Get(name string) ([]int, error)
	Delete(name string) error
	// Size 저장소가 디스크에서 차지하는 바이트 수
	Size() (int64, error)
	Close() error
}

// Backends 지원하는 백엔드 목록
func Backends() []string {
	return []string{BackendBolt, BackendBadger, BackendPebble, BackendFile}
}

// Open 은 dir 아래에 backend 저장소를 열거나 만든다.
func Open(backend, dir string) (Store, error) {
	log := logger.New("ns=kvdb").At("open")

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, log.Error(errors.WithStack(err))
	}

	var (
		s   Store
		err error
	)

	switch backend {
	case BackendBolt:
		s, err = openBolt(filepath.Join(dir, "bbolt.db"))
	case BackendBadger:
		s, err = openBadger(filepath.Join(dir, "badger"))
	case BackendPebble:
		s, err = openPebble(filepath.Join(dir, "pebble"))
	case BackendFile:
		s, err = openFile(filepath.Join(dir, "files"))
	default:
		return nil, errors.Wrapf(ErrUnknownBackend, "%q", backend)
	}
	if err != nil {
		return nil, log.Error(err)
	}

	log.Logf("backend=%s dir=%q", backend, dir)
	return s, nil
}

func validName(name string) error {
	if name == "" || strings.ContainsAny(name, "\x00/\\") || name == "." || name == ".." {
		return errors.Wrapf(ErrInvalidName, "%q", name)
	}
	return nil
}

func notFound(name string) error {
	return errors.Wrapf(ErrNotFound, "%q", name)
}

// dirSize 디렉터리 아래 일반 파일 크기의 합
func dirSize(path string) (int64, error) {
	var size int64
	err := filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	return size, errors.WithStack(err)
}
