// Package utils 提供滑块控件用到的通用工具函数
package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Interpolator 缓动曲线
//
// 输入进度 t ∈ [0, 1]，返回缓动后的进度；要求 f(0)=0, f(1)=1 且单调。
type Interpolator func(t float64) float64

// EaseLinear 线性（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutQuad 二次方缓出，滑块动画的默认曲线
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseOutCubic 三次方缓出，比 Quad 减速更明显
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Decelerate 返回减速曲线 f(t) = 1 - (1-t)^(2*factor)
//
// factor 为 1 时等价于 EaseOutQuad；factor <= 0 视为 1。
func Decelerate(factor float64) Interpolator {
	if factor <= 0 || factor == 1 {
		return EaseOutQuad
	}
	return func(t float64) float64 {
		return 1 - math.Pow(1-t, 2*factor)
	}
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ParseInterpolator 按名称选择缓动曲线
//
// 支持 linear、quad、cubic 和 decelerate:<factor>；空字符串为 quad。
func ParseInterpolator(name string) (Interpolator, error) {
	switch name {
	case "", "quad":
		return EaseOutQuad, nil
	case "linear":
		return EaseLinear, nil
	case "cubic":
		return EaseOutCubic, nil
	}
	if arg, ok := strings.CutPrefix(name, "decelerate:"); ok {
		factor, err := strconv.ParseFloat(arg, 64)
		if err != nil || factor <= 0 {
			return nil, fmt.Errorf("invalid decelerate factor %q", arg)
		}
		return Decelerate(factor), nil
	}
	return nil, fmt.Errorf("unknown easing %q", name)
}
