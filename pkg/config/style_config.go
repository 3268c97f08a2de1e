package config

import (
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/decker502/xslider/pkg/slider"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// StyleConfig 滑块样式的声明式配置（YAML）
//
// 颜色可以写成 "#rrggbb" / "#rgb" 或 CSS 颜色名（如 "teal"）；
// 尺寸单位为 dp，0 表示使用默认值。
type StyleConfig struct {
	Enabled *bool `yaml:"enabled"`

	ProgressColor string `yaml:"progressColor"`
	TrackColor    string `yaml:"trackColor"`
	ThumbColor    string `yaml:"thumbColor"`

	TrackSize float64 `yaml:"trackSize"`

	Value    *int `yaml:"value"`
	MinValue *int `yaml:"minValue"`
	MaxValue *int `yaml:"maxValue"`

	// ThumbType "oval" 或 "rectangle"
	ThumbType   string  `yaml:"thumbType"`
	ThumbRadius float64 `yaml:"thumbRadius"`
	ThumbWidth  float64 `yaml:"thumbWidth"`
	ThumbHeight float64 `yaml:"thumbHeight"`

	TouchSlop         float64 `yaml:"touchSlop"`
	EnlargeTouchRange float64 `yaml:"enlargeTouchRange"`

	// AnimationMs 动画时长（毫秒）
	AnimationMs int `yaml:"animationMs"`

	Padding PaddingConfig `yaml:"padding"`
}

// PaddingConfig 内边距（dp）
type PaddingConfig struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// DefaultStyleConfig 返回默认样式配置
func DefaultStyleConfig() *StyleConfig {
	return &StyleConfig{
		ProgressColor: "black",
		TrackColor:    "black",
		ThumbType:     slider.ThumbOval.String(),
	}
}

// LoadStyleConfig 从文件加载样式配置
func LoadStyleConfig(path string) (*StyleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read style file %s: %w", path, err)
	}
	cfg, err := ParseStyleConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseStyleConfig 解析并校验 YAML 样式配置，未写的字段保留默认值
func ParseStyleConfig(data []byte) (*StyleConfig, error) {
	cfg := DefaultStyleConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse style YAML: %w", err)
	}
	if err := validateStyleConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid style config: %w", err)
	}
	return cfg, nil
}

func validateStyleConfig(cfg *StyleConfig) error {
	if _, err := parseThumbType(cfg.ThumbType); err != nil {
		return err
	}
	for name, v := range map[string]string{
		"progressColor": cfg.ProgressColor,
		"trackColor":    cfg.TrackColor,
		"thumbColor":    cfg.ThumbColor,
	} {
		if v == "" {
			continue
		}
		if _, err := ParseColor(v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if cfg.MinValue != nil && cfg.MaxValue != nil && *cfg.MaxValue < *cfg.MinValue {
		return fmt.Errorf("maxValue %d is less than minValue %d", *cfg.MaxValue, *cfg.MinValue)
	}
	if cfg.AnimationMs < 0 {
		return fmt.Errorf("animationMs cannot be negative, got %d", cfg.AnimationMs)
	}
	sizes := []float64{cfg.TrackSize, cfg.ThumbRadius, cfg.ThumbWidth, cfg.ThumbHeight, cfg.TouchSlop, cfg.EnlargeTouchRange}
	for _, v := range sizes {
		if v < 0 {
			return fmt.Errorf("sizes cannot be negative, got %v", v)
		}
	}
	return nil
}

// ToStyle 按屏幕密度换算为控件配置
func (c *StyleConfig) ToStyle(density float64) slider.Style {
	st := slider.Style{
		Disabled: c.Enabled != nil && !*c.Enabled,
		Value:    c.Value,
		MinValue: c.MinValue,
		MaxValue: c.MaxValue,
		Density:  density,
	}
	st.ThumbShape, _ = parseThumbType(c.ThumbType)

	st.ProgressColor = colorOrNil(c.ProgressColor)
	st.TrackColor = colorOrNil(c.TrackColor)
	st.ThumbColor = colorOrNil(c.ThumbColor)

	st.TrackSize = dpOrZero(st, c.TrackSize)
	st.ThumbRadius = dpOrZero(st, c.ThumbRadius)
	st.ThumbWidth = dpOrZero(st, c.ThumbWidth)
	st.ThumbHeight = dpOrZero(st, c.ThumbHeight)
	st.TouchSlop = dpOrZero(st, c.TouchSlop)
	st.EnlargeTouchRange = dpOrZero(st, c.EnlargeTouchRange)
	st.AnimationDuration = time.Duration(c.AnimationMs) * time.Millisecond

	st.Padding = slider.Padding{
		Left:   dpOrZero(st, c.Padding.Left),
		Top:    dpOrZero(st, c.Padding.Top),
		Right:  dpOrZero(st, c.Padding.Right),
		Bottom: dpOrZero(st, c.Padding.Bottom),
	}
	return st.Normalize()
}

// ParseColor 解析十六进制颜色或 CSS 颜色名
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("bad hex color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown color %q", s)
}

func parseThumbType(s string) (slider.ThumbShape, error) {
	switch strings.ToLower(s) {
	case "", "oval":
		return slider.ThumbOval, nil
	case "rectangle":
		return slider.ThumbRectangle, nil
	default:
		return slider.ThumbOval, fmt.Errorf("unknown thumbType %q", s)
	}
}

// colorOrNil 空串或非法值交给 Normalize 取默认
func colorOrNil(s string) color.Color {
	if s == "" {
		return nil
	}
	c, err := ParseColor(s)
	if err != nil {
		return nil
	}
	return c
}

func dpOrZero(st slider.Style, v float64) int {
	if v <= 0 {
		return 0
	}
	return st.Dp(v)
}
