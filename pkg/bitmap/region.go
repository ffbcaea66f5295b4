package bitmap

// Unbounded 区域宽高的哨兵值，表示延伸到图像边缘
const Unbounded = -1

// Region 搜索区域
// 描述模板左上角允许放置的矩形范围，Width/Height 为 -1 时延伸到图像右/下边缘
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// FullRegion 覆盖整幅图像的搜索区域
func FullRegion() Region {
	return Region{X: 0, Y: 0, Width: Unbounded, Height: Unbounded}
}

// resolveBounds 计算有效扫描范围 [startX, endX) × [startY, endY)
// 结果保证模板放在任意候选位置时完整落在主图内;
// startX >= endX 或 startY >= endY 表示搜索空间为空，属于正常的未找到而非错误
func resolveBounds(mainW, mainH, tmplW, tmplH int, r Region) (startX, endX, startY, endY int) {
	startX = max(0, r.X)
	startY = max(0, r.Y)

	rawEndX := mainW
	if r.Width >= 0 {
		rawEndX = r.X + r.Width
	}
	rawEndY := mainH
	if r.Height >= 0 {
		rawEndY = r.Y + r.Height
	}

	endX = min(rawEndX, mainW-tmplW+1)
	endY = min(rawEndY, mainH-tmplH+1)
	return startX, endX, startY, endY
}
