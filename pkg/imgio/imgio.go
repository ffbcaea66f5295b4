// Package imgio 提供位图的读取与解码
//
// 负责把各种图像输入（文件、字节流、base64 字符串、image.Image）
// 解码并转换为核心查找所需的 RGB 位图和透明遮罩。
// 支持 png/jpeg/gif 以及 bmp/tiff/webp 格式
package imgio

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/existancepy/Bitmap-Searcher/pkg/bitmap"
)

// Read 读取图像文件并转换为 RGB 位图和透明遮罩
// 完全不透明的图像返回 nil 遮罩
func Read(path string) (*bitmap.Image, *bitmap.Mask, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("无法打开图像: %w", err)
	}
	defer f.Close()

	img, mask, err := Decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("读取图像 %s 失败: %w", path, err)
	}
	return img, mask, nil
}

// Decode 从字节流解码图像
func Decode(r io.Reader) (*bitmap.Image, *bitmap.Mask, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, nil, fmt.Errorf("解码图像失败: %w", err)
	}
	img, mask := bitmap.FromImage(src)
	return img, mask, nil
}

// FromBase64 解码 base64 字符串为位图
// 兼容 "data:image/png;base64," 前缀的 Data URI 形式
func FromBase64(s string) (*bitmap.Image, *bitmap.Mask, error) {
	if i := strings.Index(s, "base64,"); i >= 0 {
		s = s[i+len("base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, nil, fmt.Errorf("base64 解码失败: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Load 加载图像输入
// 支持 string (文件路径)、image.Image、*bitmap.Image
func Load(input interface{}) (*bitmap.Image, *bitmap.Mask, error) {
	switch v := input.(type) {
	case string:
		return Read(v)
	case image.Image:
		img, mask := bitmap.FromImage(v)
		return img, mask, nil
	case *bitmap.Image:
		return v, nil, nil
	default:
		return nil, nil, fmt.Errorf("不支持的图像输入类型: %T", input)
	}
}

// ClampVariance 将颜色容差截断到 [0, 255]
func ClampVariance(variance int) int {
	if variance < 0 {
		return 0
	}
	if variance > 255 {
		return 255
	}
	return variance
}
