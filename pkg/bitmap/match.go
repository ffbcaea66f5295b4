package bitmap

import "fmt"

// FindFirst 在 main 中查找 tmpl 的第一个匹配位置
//
// 按外层 x、内层 y 的顺序扫描搜索区域，返回首个匹配的模板左上角坐标。
// 扫描顺序是对外契约的一部分：同一输入下 "第一个" 匹配是确定的。
// 未找到时返回 (nil, nil)；仅当遮罩与模板尺寸不一致时返回 *MaskSizeError
func FindFirst(main, tmpl *Image, opts ...Option) (*Point, error) {
	o := applySearchOptions(opts...)

	if err := checkMaskSize(tmpl, o.mask); err != nil {
		return nil, err
	}
	if skipScan(tmpl, o.mask) {
		return nil, nil
	}

	startX, endX, startY, endY := resolveBounds(main.Width, main.Height, tmpl.Width, tmpl.Height, o.region)
	for x := startX; x < endX; x++ {
		for y := startY; y < endY; y++ {
			if matchAt(main, tmpl, o.mask, o.variance, x, y) {
				return &Point{X: x, Y: y}, nil
			}
		}
	}
	return nil, nil
}

// FindAll 在 main 中查找 tmpl 的所有匹配位置
//
// 扫描顺序与 FindFirst 一致，结果按发现顺序排列。
// 设置了 WithMaxMatches(n) 且 n > 0 时，找满 n 个立即停止扫描。
// 永远返回非 nil 切片，未找到时长度为 0
func FindAll(main, tmpl *Image, opts ...Option) ([]Point, error) {
	o := applySearchOptions(opts...)

	results := make([]Point, 0)

	if err := checkMaskSize(tmpl, o.mask); err != nil {
		return nil, err
	}
	if skipScan(tmpl, o.mask) {
		return results, nil
	}

	startX, endX, startY, endY := resolveBounds(main.Width, main.Height, tmpl.Width, tmpl.Height, o.region)
	for x := startX; x < endX; x++ {
		for y := startY; y < endY; y++ {
			if !matchAt(main, tmpl, o.mask, o.variance, x, y) {
				continue
			}
			results = append(results, Point{X: x, Y: y})
			if o.maxMatches > 0 && len(results) >= o.maxMatches {
				return results, nil
			}
		}
	}
	return results, nil
}

// matchAt 判断模板放置在 (offX, offY) 处是否匹配
// 任一参与比较的像素超出容差立即返回 false，不再检查剩余通道和像素
func matchAt(main, tmpl *Image, mask *Mask, variance int, offX, offY int) bool {
	for i := 0; i < tmpl.Height; i++ {
		ti := i * tmpl.Width * 3
		mi := ((offY+i)*main.Width + offX) * 3
		for j := 0; j < tmpl.Width; j++ {
			if mask != nil && !mask.bits[i*mask.Width+j] {
				ti += 3
				mi += 3
				continue
			}
			for k := 0; k < 3; k++ {
				d := int(main.Pix[mi+k]) - int(tmpl.Pix[ti+k])
				if d < 0 {
					d = -d
				}
				if d > variance {
					return false
				}
			}
			ti += 3
			mi += 3
		}
	}
	return true
}

// skipScan 判断是否可以不扫描直接返回未找到
// 空模板没有可比较的像素；全透明遮罩意味着任何位置都不构成有效匹配
func skipScan(tmpl *Image, mask *Mask) bool {
	if tmpl.Width <= 0 || tmpl.Height <= 0 {
		return true
	}
	return mask != nil && mask.Empty()
}

// checkMaskSize 校验遮罩与模板尺寸一致
func checkMaskSize(tmpl *Image, mask *Mask) error {
	if mask == nil {
		return nil
	}
	if mask.Width != tmpl.Width || mask.Height != tmpl.Height {
		return &MaskSizeError{
			MaskSize:     [2]int{mask.Width, mask.Height},
			TemplateSize: [2]int{tmpl.Width, tmpl.Height},
		}
	}
	return nil
}

// MaskSizeError 遮罩与模板尺寸不一致错误
type MaskSizeError struct {
	MaskSize     [2]int
	TemplateSize [2]int
}

func (e *MaskSizeError) Error() string {
	return fmt.Sprintf("遮罩尺寸 %dx%d 与模板尺寸 %dx%d 不一致",
		e.MaskSize[0], e.MaskSize[1], e.TemplateSize[0], e.TemplateSize[1])
}
