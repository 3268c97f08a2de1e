// Package store 持久化滑块状态
package store

import (
	"fmt"
	"log"

	"github.com/decker502/xslider/pkg/slider"
	"github.com/quasilyte/gdata/v2"
)

// 存储对象名，每个滑块一个属性
const stateObject = "slider"

// StateStore 滑块状态存储
// 通过 gdata 跨平台保存，每个滑块以 id 区分
type StateStore struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，不持久化）
}

// Open 按应用名打开存储；失败时返回降级模式的存储和错误
func Open(appName string) (*StateStore, error) {
	if err := ensureStorageDir(); err != nil {
		return NewStateStore(nil), err
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewStateStore(nil), fmt.Errorf("failed to open gdata for %s: %w", appName, err)
	}
	return NewStateStore(m), nil
}

// NewStateStore 创建存储；gdataManager 为 nil 时只在内存中工作（什么也不保存）
func NewStateStore(gdataManager *gdata.Manager) *StateStore {
	return &StateStore{gdataManager: gdataManager}
}

// Persistent 是否能真正写盘
func (ss *StateStore) Persistent() bool { return ss.gdataManager != nil }

// Save 保存 id 对应滑块的状态
func (ss *StateStore) Save(id string, st slider.SavedState) error {
	if ss.gdataManager == nil {
		return nil
	}
	if err := validateID(id); err != nil {
		return err
	}

	data, err := slider.EncodeState(st)
	if err != nil {
		return err
	}
	if err := ss.gdataManager.SaveObjectProp(stateObject, id, data); err != nil {
		return fmt.Errorf("failed to save slider state %s: %w", id, err)
	}
	return nil
}

// Load 读取 id 对应的状态；不存在时 ok 为 false
func (ss *StateStore) Load(id string) (st slider.SavedState, ok bool, err error) {
	if ss.gdataManager == nil {
		return slider.SavedState{}, false, nil
	}
	if err := validateID(id); err != nil {
		return slider.SavedState{}, false, err
	}
	if !ss.gdataManager.ObjectPropExists(stateObject, id) {
		return slider.SavedState{}, false, nil
	}

	data, err := ss.gdataManager.LoadObjectProp(stateObject, id)
	if err != nil {
		return slider.SavedState{}, false, fmt.Errorf("failed to load slider state %s: %w", id, err)
	}
	st, err = slider.DecodeState(data)
	if err != nil {
		return slider.SavedState{}, false, fmt.Errorf("slider state %s: %w", id, err)
	}
	return st, true, nil
}

// SaveSlider 保存滑块当前位置，失败只记日志
func (ss *StateStore) SaveSlider(id string, s *slider.Slider) {
	if err := ss.Save(id, s.SaveState()); err != nil {
		log.Printf("[StateStore] Warning: %v", err)
	}
}

// RestoreSlider 恢复滑块位置；没有保存过或读取失败时保持原状
func (ss *StateStore) RestoreSlider(id string, s *slider.Slider) bool {
	st, ok, err := ss.Load(id)
	if err != nil {
		log.Printf("[StateStore] Warning: %v (keeping current position)", err)
		return false
	}
	if !ok {
		return false
	}
	s.RestoreState(st)
	return true
}

// validateID 属性名会成为文件名，只接受小写字母、数字、下划线和连字符
func validateID(id string) error {
	if id == "" {
		return fmt.Errorf("empty slider id")
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return fmt.Errorf("invalid slider id %q", id)
		}
	}
	return nil
}
