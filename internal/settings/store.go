package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nickproject/snipe/internal/logger"
	"github.com/nickproject/snipe/internal/prompt"
)

// ResetQuestion 重置前的确认问题
const ResetQuestion = "Are you sure you want to reset the config?"

// Store 设置文件的读写
type Store struct {
	path string
}

// NewStore 创建 Store, path 为空时使用用户配置目录
func NewStore(path string) (*Store, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, &IOError{Op: "locate config directory for", Path: FileName, Err: err}
		}
		path = filepath.Join(dir, FileName)
	}
	return &Store{path: path}, nil
}

// Path 返回设置文件路径
func (s *Store) Path() string {
	return s.path
}

// EnsureExists 文件不存在时写入默认内容, 返回是否新建
func (s *Store) EnsureExists() (bool, error) {
	_, err := os.Stat(s.path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, &IOError{Op: "stat", Path: s.path, Err: err}
	}

	if err := s.write(DefaultContent()); err != nil {
		return false, err
	}
	logger.Debug("已创建默认设置文件", "path", s.path)
	return true, nil
}

// Load 读取并解析设置文件
func (s *Store) Load() (*File, error) {
	data, err := s.read()
	if err != nil {
		return nil, err
	}
	return ParseFile(s.path, data)
}

// Reset 确认后用默认内容覆盖文件, 返回是否已重置
func (s *Store) Reset(confirm prompt.Confirmer) (bool, error) {
	ok, err := confirm.Confirm(ResetQuestion)
	if err != nil {
		return false, err
	}
	if !ok {
		logger.Debug("用户取消重置", "path", s.path)
		return false, nil
	}

	if err := s.write(DefaultContent()); err != nil {
		return false, err
	}
	logger.Info("设置已重置", "path", s.path)
	return true, nil
}

// Set 只重写 key 占用的行 (多行值包括续行)
func (s *Store) Set(key, value string) error {
	data, err := s.read()
	if err != nil {
		return err
	}
	// 文件不合法时 ParseDocument 返回错误, 不会继续写
	doc, err := ParseDocument(s.path, data)
	if err != nil {
		return err
	}
	if err := doc.Set(key, value); err != nil {
		return err
	}
	if err := s.write(doc.Bytes()); err != nil {
		return err
	}
	logger.Debug("设置已更新", "path", s.path, "key", key)
	return nil
}

func (s *Store) read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: s.path, Err: err}
	}
	return data, nil
}

// write 先写临时文件再重命名
func (s *Store) write(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return &IOError{Op: "create directory", Path: dir, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+FileName+".*")
	if err != nil {
		return &IOError{Op: "write", Path: s.path, Err: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &IOError{Op: "write", Path: s.path, Err: err}
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return &IOError{Op: "write", Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Op: "write", Path: s.path, Err: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return &IOError{Op: "write", Path: s.path, Err: fmt.Errorf("replace file: %w", err)}
	}
	return nil
}
