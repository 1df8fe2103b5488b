package util

import (
	"strconv"
	"strings"
)

// Coord 绘图坐标
type Coord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sparkline 折线投影结果，Path 为 SVG path 描述
type Sparkline struct {
	Coords []Coord `json:"coords"`
	Path   string  `json:"path"`
}

// ProjectSparkline 将有序数值映射到 width x height 的画布:
// 最小值落在底边、最大值落在顶边（各留 padding），x 按序号等距分布。
// 所有值相同时取值域为 1，空输入返回空结果。
func ProjectSparkline(values []float64, width, height, padding float64) Sparkline {
	if len(values) == 0 {
		return Sparkline{Coords: []Coord{}, Path: ""}
	}

	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	valueRange := maxV - minV
	if valueRange == 0 {
		valueRange = 1
	}

	innerW := width - 2*padding
	innerH := height - 2*padding
	step := 0.0
	if len(values) > 1 {
		step = innerW / float64(len(values)-1)
	}

	coords := make([]Coord, len(values))
	var sb strings.Builder
	for i, v := range values {
		x := padding + float64(i)*step
		y := height - padding - (v-minV)/valueRange*innerH
		coords[i] = Coord{X: x, Y: y}

		if i == 0 {
			sb.WriteString("M")
		} else {
			sb.WriteString(" L")
		}
		sb.WriteString(formatCoord(x))
		sb.WriteByte(',')
		sb.WriteString(formatCoord(y))
	}

	return Sparkline{Coords: coords, Path: sb.String()}
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
