package slider

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Range 可选值范围
// 不变式：Max >= Min
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// DefaultRange 默认范围 [0, 100]
func DefaultRange() Range {
	return Range{Min: 0, Max: 100}
}

// Valid 范围是否合法（Max >= Min）
func (r Range) Valid() bool {
	return r.Max >= r.Min
}

// Span 范围跨度（Max - Min），按浮点数计算，极端范围不会溢出
func (r Range) Span() float64 {
	return float64(r.Max) - float64(r.Min)
}

// PositionToExactValue 位置 -> 确切值（不取整）
// 公式：min + (max-min)*pos
func (r Range) PositionToExactValue(pos float64) float64 {
	return r.Span()*pos + float64(r.Min)
}

// PositionToValue 位置 -> 整数值（四舍五入）
func (r Range) PositionToValue(pos float64) int {
	return roundHalfUp(r.PositionToExactValue(pos))
}

// ValueToPosition 值 -> 位置，结果限制在 [0, 1]
//
// 退化范围（Min == Max）没有可用的跨度，位置固定为 0。
func (r Range) ValueToPosition(value float64) float64 {
	if r.Max == r.Min {
		return 0
	}
	return mgl64.Clamp((value-float64(r.Min))/r.Span(), 0, 1)
}

// ClampValue 将值限制在 [Min, Max]，NaN 视为 Min
func (r Range) ClampValue(value float64) float64 {
	if math.IsNaN(value) {
		return float64(r.Min)
	}
	return mgl64.Clamp(value, float64(r.Min), float64(r.Max))
}

// roundHalfUp 与 Math.round 一致：x.5 向正无穷取整（-2.5 -> -2）
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// clamp01 NaN 视为 0
func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return mgl64.Clamp(v, 0, 1)
}
