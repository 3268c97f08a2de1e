package slider

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// StateVersion 当前保存格式版本
const StateVersion = 1

// SavedState 需要持久化的控件状态：只有归一化位置
type SavedState struct {
	Version  int     `yaml:"version"`
	Position float64 `yaml:"position"`
}

// EncodeState 序列化为 YAML
func EncodeState(st SavedState) ([]byte, error) {
	if st.Version == 0 {
		st.Version = StateVersion
	}
	data, err := yaml.Marshal(&st)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal slider state: %w", err)
	}
	return data, nil
}

// DecodeState 反序列化；不认识的版本返回错误
func DecodeState(data []byte) (SavedState, error) {
	var st SavedState
	if err := yaml.Unmarshal(data, &st); err != nil {
		return SavedState{}, fmt.Errorf("failed to unmarshal slider state: %w", err)
	}
	if st.Version != StateVersion {
		return SavedState{}, fmt.Errorf("unsupported slider state version %d", st.Version)
	}
	if math.IsNaN(st.Position) {
		return SavedState{}, fmt.Errorf("invalid slider state position %v", st.Position)
	}
	return st, nil
}

// SaveState 保存当前位置
func (s *Slider) SaveState() SavedState {
	return SavedState{Version: StateVersion, Position: s.Position()}
}

// RestoreState 恢复位置（无动画），并请求重新布局
func (s *Slider) RestoreState(st SavedState) {
	s.SetPosition(st.Position, false)
	if s.host != nil {
		s.host.RequestLayout()
	}
}
