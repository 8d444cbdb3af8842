package kvdb

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// fileStore 데이터셋마다 <name>.txt, 한 줄에 숫자 하나
type fileStore struct {
	dir string
}

func openFile(dir string) (*fileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.WithStack(err)
	}
	return &fileStore{dir: dir}, nil
}

func (s *fileStore) Backend() string { return BackendFile }

func (s *fileStore) path(name string) string {
	return filepath.Join(s.dir, name+".txt")
}

// Put 임시 파일에 쓴 뒤 rename 한다.
func (s *fileStore) Put(name string, data []int) error {
	if err := validName(name); err != nil {
		return err
	}

	tmp := s.path(name) + ".tmp"
	if err := writeInts(tmp, data); err != nil {
		os.Remove(tmp)
		return err
	}
	return errors.WithStack(os.Rename(tmp, s.path(name)))
}

func writeInts(filename string, data []int) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 64*1024)
	buf := make([]byte, 0, 24)

	for _, num := range data {
		buf = strconv.AppendInt(buf[:0], int64(num), 10)
		buf = append(buf, '\n')
		if _, err := writer.Write(buf); err != nil {
			return errors.WithStack(err)
		}
	}

	if err := writer.Flush(); err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(file.Close())
}

func (s *fileStore) Get(name string) ([]int, error) {
	if err := validName(name); err != nil {
		return nil, err
	}

	file, err := os.Open(s.path(name))
	if os.IsNotExist(err) {
		return nil, notFound(name)
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	// 대략적인 숫자 개수 추정 (평균 6자리 + 개행)
	var data []int
	if fi, err := file.Stat(); err == nil {
		data = make([]int, 0, fi.Size()/7)
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), bufio.MaxScanTokenSize)

	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		num, err := strconv.Atoi(text)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", s.path(name), line)
		}
		data = append(data, num)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	if data == nil {
		data = []int{}
	}
	return data, nil
}

func (s *fileStore) Delete(name string) error {
	if err := validName(name); err != nil {
		return err
	}

	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return notFound(name)
	}
	return errors.WithStack(err)
}

func (s *fileStore) Size() (int64, error) {
	return dirSize(s.dir)
}

func (s *fileStore) Close() error { return nil }
