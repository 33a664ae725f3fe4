// Package localstore は端末ローカルのキー値キャッシュ。
// ブラウザのlocalStorage相当で、カート・下書き・注文履歴のような
// 1ユーザー1端末の利便性データだけを置く。読み取りは壊れていても
// エラーにせずデフォルト値に倒す（重要データはサーバ側にある前提）。
package localstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Read は key の値を v に読み込む。無い・パースできない場合は false を返して v には触れない。
func (s *Store) Read(key string, v any) bool {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false
	}
	return true
}

func (s *Store) Write(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path(key), b, 0o644)
}

// Delete は key を消す。元々無い場合もエラーにしない。
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Merge は読み取り→更新→書き込み。読めなければ def から始める。
func Merge[T any](s *Store, key string, def T, fn func(T) T) (T, error) {
	cur := def
	s.Read(key, &cur)

	next := fn(cur)
	if err := s.Write(key, next); err != nil {
		return next, err
	}
	return next, nil
}
