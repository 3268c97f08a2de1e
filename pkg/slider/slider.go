// Package slider 实现滑动选择器控件的核心逻辑
//
// 用户沿轨道拖动或点击滑块，在 [min, max] 范围内选择一个整数值。
// 值与 [0, 1] 的归一化位置线性对应；位置变化可以带缓动动画，并通知监听者。
//
// 控件不依赖具体的 UI 框架：宿主通过 Host 接收重绘/布局请求，
// 通过 Scheduler 驱动动画，通过 Canvas 完成绘制，并把指针事件交给 HandleEvent。
// 所有方法都必须在宿主的 UI 线程上调用。
package slider

import (
	"image/color"
	"log"
	"math"
)

// Slider 滑动选择器
type Slider struct {
	style Style
	rng   Range

	// position 原始位置，动画进行中为插值结果
	position float64

	enabled bool
	rtl     bool

	geo      geometry
	anim     *ThumbAnimator
	gesture  gestureState
	paths    TrackPaths
	listener PositionChangeListener
	host     Host
}

// New 按配置创建滑块
//
// 范围只有 MinValue 和 MaxValue 同时设置时才生效；未设置初始值时取最小值。
func New(style Style) *Slider {
	style = style.Normalize()
	s := &Slider{
		style:   style,
		rng:     DefaultRange(),
		enabled: !style.Disabled,
	}
	s.anim = newThumbAnimator(s, style.AnimationDuration)

	if style.MinValue != nil && style.MaxValue != nil {
		s.SetValueRange(*style.MinValue, *style.MaxValue, false)
	}
	if style.Value != nil {
		s.SetValue(float64(*style.Value), false)
	} else {
		s.SetValue(float64(s.rng.Min), false)
	}
	return s
}

// Attach 绑定宿主与调度器
//
// sched 为 nil 表示控件尚未挂到可用的界面上，动画请求会退化为同步赋值。
func (s *Slider) Attach(host Host, sched Scheduler) {
	s.host = host
	s.anim.attach(sched)
}

// Detach 解除绑定：停止动画并取消待执行的帧回调
func (s *Slider) Detach() {
	if s.anim.Running() {
		s.anim.Stop()
	}
	s.anim.attach(nil)
	s.host = nil
	s.gesture = gestureState{}
}

// Animator 动画器（用于替换缓动曲线或查询状态）
func (s *Slider) Animator() *ThumbAnimator { return s.anim }

// Style 当前配置（已填充默认值）
func (s *Slider) Style() Style { return s.style }

// MinValue 最小值
func (s *Slider) MinValue() int { return s.rng.Min }

// MaxValue 最大值
func (s *Slider) MaxValue() int { return s.rng.Max }

// Range 当前范围
func (s *Slider) Range() Range { return s.rng }

// SetValueRange 设置可选值范围，保持当前值不变（超出新范围时被限制）
//
// max < min 或范围未变时忽略。若重新映射后位置没变但确切值变了
// （旧值被限制到与原来相同的端点），仍然发出一次通知。
func (s *Slider) SetValueRange(min, max int, animate bool) {
	if max < min {
		log.Printf("[XSlider] ignore invalid range [%d, %d]", min, max)
		return
	}
	if min == s.rng.Min && max == s.rng.Max {
		return
	}

	oldValue := s.ExactValue()
	oldPos := s.Position()
	s.rng = Range{Min: min, Max: max}

	s.SetValue(oldValue, animate)
	if s.listener != nil && oldPos == s.Position() && oldValue != s.ExactValue() {
		s.listener.OnPositionChanged(s, false, oldPos, oldPos, roundHalfUp(oldValue), s.Value())
	}
}

// Value 当前整数值
func (s *Slider) Value() int {
	return roundHalfUp(s.ExactValue())
}

// ExactValue 当前确切值（不取整）
func (s *Slider) ExactValue() float64 {
	return s.rng.PositionToExactValue(s.Position())
}

// Position 当前位置 [0, 1]
//
// 动画进行中返回动画目标，这样通知和查询都能立即反映新的值。
func (s *Slider) Position() float64 {
	if s.anim.Running() {
		return s.anim.Target()
	}
	return s.position
}

// RawPosition 绘制用的原始位置，动画中为插值结果
func (s *Slider) RawPosition() float64 { return s.position }

// SetPosition 设置位置 [0, 1]；NaN 被忽略
func (s *Slider) SetPosition(pos float64, animate bool) {
	if math.IsNaN(pos) {
		log.Printf("[XSlider] ignore NaN position")
		return
	}
	s.applyPosition(clamp01(pos), animate, false)
}

// SetValue 设置当前值，超出范围时限制到边界；NaN 被忽略
func (s *Slider) SetValue(value float64, animate bool) {
	if math.IsNaN(value) {
		log.Printf("[XSlider] ignore NaN value")
		return
	}
	value = s.rng.ClampValue(value)
	s.SetPosition(s.rng.ValueToPosition(value), animate)
}

// applyPosition 修改位置；位置确实变化时先通知再重绘
func (s *Slider) applyPosition(pos float64, animate, fromUser bool) {
	oldPos := s.Position()
	changed := oldPos != pos
	oldValue := s.Value()

	if !animate || !s.anim.Start(pos) {
		// 直接赋值会打断进行中的动画
		s.anim.interrupt()
		s.position = pos
	}

	if !changed {
		return
	}
	if s.listener != nil {
		s.listener.OnPositionChanged(s, fromUser, oldPos, s.Position(), oldValue, s.Value())
	}
	s.invalidate()
}

// SetOnPositionChangeListener 设置监听者，替换之前的；nil 表示清除
func (s *Slider) SetOnPositionChangeListener(l PositionChangeListener) {
	s.listener = l
}

// SetProgressColor 设置已填充段的颜色
func (s *Slider) SetProgressColor(c color.Color) {
	s.style.ProgressColor = c
	s.invalidate()
}

// SetTrackColor 设置轨道颜色
func (s *Slider) SetTrackColor(c color.Color) {
	s.style.TrackColor = c
	s.invalidate()
}

// SetThumbColor 设置滑块颜色
func (s *Slider) SetThumbColor(c color.Color) {
	s.style.ThumbColor = c
	s.invalidate()
}

// Enabled 是否可交互
func (s *Slider) Enabled() bool { return s.enabled }

// SetEnabled 启用或禁用；禁用时忽略手势并用轨道颜色绘制
func (s *Slider) SetEnabled(enabled bool) {
	if s.enabled == enabled {
		return
	}
	s.enabled = enabled
	if !enabled {
		s.gesture = gestureState{}
	}
	s.invalidate()
}

// RTL 是否为镜像（从右到左）布局
func (s *Slider) RTL() bool { return s.rtl }

// SetRTL 切换镜像布局
func (s *Slider) SetRTL(rtl bool) {
	if s.rtl == rtl {
		return
	}
	s.rtl = rtl
	s.invalidate()
}

// SetPadding 设置内边距，需要重新布局
func (s *Slider) SetPadding(p Padding) {
	s.style.Padding = p
	if s.geo.width > 0 || s.geo.height > 0 {
		s.geo.resize(s.geo.width, s.geo.height, &s.style)
	}
	if s.host != nil {
		s.host.RequestLayout()
	}
}

// SetSize 控件尺寸变化，重新计算轨道区域
func (s *Slider) SetSize(w, h int) {
	s.geo.resize(w, h, &s.style)
	s.invalidate()
}

// Size 当前控件尺寸
func (s *Slider) Size() (int, int) { return s.geo.width, s.geo.height }

// DrawRect 滑块中心可达的区域
func (s *Slider) DrawRect() Rect { return s.geo.drawRect }

// ThumbCenter 滑块中心的屏幕坐标（镜像布局已处理）
func (s *Slider) ThumbCenter() (float64, float64) {
	x, y := s.geo.thumbCenter(s.position)
	if s.rtl {
		x = s.geo.mirrorX(x)
	}
	return x, y
}

func (s *Slider) invalidate() {
	if s.host != nil {
		s.host.Invalidate()
	}
}

// animTarget

func (s *Slider) rawPosition() float64 { return s.position }

func (s *Slider) setRawPosition(pos float64) { s.position = pos }
