// Package bitmap 提供位图查找功能
//
// 在大图中按像素精确比较查找小位图，支持透明遮罩、颜色容差和搜索区域限定。
//
// 基本用法:
//
//	// 在 main 中查找 tmpl 的第一个匹配位置
//	pos, err := bitmap.FindFirst(main, tmpl)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if pos != nil {
//	    fmt.Printf("找到位置: (%d, %d)\n", pos.X, pos.Y)
//	}
//
//	// 查找所有匹配位置（颜色容差 10，最多 5 个）
//	results, err := bitmap.FindAll(main, tmpl,
//	    bitmap.WithVariance(10),
//	    bitmap.WithMaxMatches(5),
//	)
package bitmap

import (
	"image"
	"image/color"
)

// Point 表示二维坐标点
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Image RGB 像素缓冲区
// 行优先存储，每像素 3 个采样 (R, G, B)，查找期间只读
type Image struct {
	Width  int
	Height int
	// Pix 像素数据，长度 = Width * Height * 3
	Pix []uint8
}

// NewImage 创建指定尺寸的空位图（全黑）
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// At 获取 (x, y) 处的 RGB 值
func (m *Image) At(x, y int) (r, g, b uint8) {
	i := (y*m.Width + x) * 3
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2]
}

// SetRGB 设置 (x, y) 处的 RGB 值
func (m *Image) SetRGB(x, y int, r, g, b uint8) {
	i := (y*m.Width + x) * 3
	m.Pix[i], m.Pix[i+1], m.Pix[i+2] = r, g, b
}

// Fill 将整幅位图填充为同一颜色
func (m *Image) Fill(r, g, b uint8) {
	for i := 0; i < len(m.Pix); i += 3 {
		m.Pix[i], m.Pix[i+1], m.Pix[i+2] = r, g, b
	}
}

// Mask 模板包含遮罩
// true 表示该像素参与比较，false 表示忽略（如原图中的透明像素）
// 尺寸必须与模板一致
type Mask struct {
	Width  int
	Height int

	bits     []bool
	included int // 参与比较的像素数量
}

// NewMask 创建指定尺寸的遮罩，所有像素默认不参与比较
func NewMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		bits:   make([]bool, width*height),
	}
}

// At 获取 (x, y) 处的像素是否参与比较
func (k *Mask) At(x, y int) bool {
	return k.bits[y*k.Width+x]
}

// Set 设置 (x, y) 处的像素是否参与比较
func (k *Mask) Set(x, y int, include bool) {
	i := y*k.Width + x
	if k.bits[i] == include {
		return
	}
	k.bits[i] = include
	if include {
		k.included++
	} else {
		k.included--
	}
}

// Included 参与比较的像素数量
func (k *Mask) Included() int {
	return k.included
}

// Empty 是否所有像素都不参与比较（模板完全透明）
func (k *Mask) Empty() bool {
	return k.included == 0
}

// alphaThreshold Alpha 通道阈值，严格大于该值的像素才参与比较
const alphaThreshold = 128

// FromImage 将 image.Image 转换为 RGB 位图
// 带 Alpha 通道的图像会按 Alpha > 128 生成遮罩（非预乘颜色值）;
// 完全不透明的图像返回 nil 遮罩，表示所有像素都参与比较
func FromImage(img image.Image) (*Image, *Mask) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	out := NewImage(w, h)
	mask := NewMask(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// NRGBAModel 取非预乘颜色，避免半透明像素的 RGB 被 Alpha 缩放
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			out.SetRGB(x, y, c.R, c.G, c.B)
			if int(c.A) > alphaThreshold {
				mask.Set(x, y, true)
			}
		}
	}

	// 全部像素不透明时无需遮罩
	if mask.Included() == w*h {
		return out, nil
	}
	return out, mask
}

// ToImage 转换为标准库 image.NRGBA
// mask 不为 nil 时，不参与比较的像素 Alpha 置 0，其余为 255
func (m *Image) ToImage(mask *Mask) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			r, g, b := m.At(x, y)
			a := uint8(255)
			if mask != nil && !mask.At(x, y) {
				a = 0
			}
			out.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
		}
	}
	return out
}
