package imgio

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/existancepy/Bitmap-Searcher/pkg/bitmap"
)

// sampleBase64 5x5 PNG 样例
const sampleBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAUAAAAFCAYAAACNbyblAAAAHElEQVQI12P4//8/w38GIAXDIBKE0DHxgljNBAAO9TXL0Y4OHwAAAABJRU5ErkJggg=="

// encodePNG 将测试图像编码为 PNG 字节
func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("PNG 编码失败: %v", err)
	}
	return buf.Bytes()
}

// newTestNRGBA 创建带透明区域的测试图像
func newTestNRGBA(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := uint8(255)
			if x == 0 {
				a = 0
			}
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 128, A: a})
		}
	}
	return img
}

func TestDecode(t *testing.T) {
	src := newTestNRGBA(4, 3)
	data := encodePNG(t, src)

	img, mask, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if img.Width != 4 || img.Height != 3 {
		t.Errorf("Decode() 尺寸 = %dx%d, want 4x3", img.Width, img.Height)
	}
	if mask == nil {
		t.Fatal("含透明像素的图像应返回遮罩")
	}
	if mask.At(0, 0) || !mask.At(1, 0) {
		t.Error("遮罩未按 Alpha 通道生成")
	}
}

func TestDecodeInvalidData(t *testing.T) {
	_, _, err := Decode(bytes.NewReader([]byte("not an image")))
	if err == nil {
		t.Error("非法数据应返回解码错误")
	}
}

func TestRead(t *testing.T) {
	src := newTestNRGBA(6, 6)
	path := filepath.Join(t.TempDir(), "template.png")
	if err := os.WriteFile(path, encodePNG(t, src), 0644); err != nil {
		t.Fatalf("写入测试文件失败: %v", err)
	}

	img, mask, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if img.Width != 6 || img.Height != 6 {
		t.Errorf("Read() 尺寸 = %dx%d, want 6x6", img.Width, img.Height)
	}
	if mask == nil {
		t.Error("应返回遮罩")
	}

	if _, _, err := Read(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("不存在的文件应返回错误")
	}
}

func TestFromBase64(t *testing.T) {
	img, _, err := FromBase64(sampleBase64)
	if err != nil {
		t.Fatalf("FromBase64() error = %v", err)
	}
	if img.Width != 5 || img.Height != 5 {
		t.Errorf("FromBase64() 尺寸 = %dx%d, want 5x5", img.Width, img.Height)
	}
}

func TestFromBase64DataURI(t *testing.T) {
	data := encodePNG(t, newTestNRGBA(3, 3))
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)

	img, _, err := FromBase64(uri)
	if err != nil {
		t.Fatalf("FromBase64(DataURI) error = %v", err)
	}
	if img.Width != 3 || img.Height != 3 {
		t.Errorf("FromBase64(DataURI) 尺寸 = %dx%d, want 3x3", img.Width, img.Height)
	}
}

func TestFromBase64Invalid(t *testing.T) {
	if _, _, err := FromBase64("!!!not-base64!!!"); err == nil {
		t.Error("非法 base64 应返回错误")
	}
	// 合法 base64 但不是图像数据
	if _, _, err := FromBase64(base64.StdEncoding.EncodeToString([]byte("hello"))); err == nil {
		t.Error("非图像数据应返回解码错误")
	}
}

func TestLoad(t *testing.T) {
	// image.Image 输入
	img, mask, err := Load(newTestNRGBA(4, 4))
	if err != nil {
		t.Fatalf("Load(image.Image) error = %v", err)
	}
	if img.Width != 4 || mask == nil {
		t.Error("Load(image.Image) 转换结果不正确")
	}

	// *bitmap.Image 输入原样返回
	raw := bitmap.NewImage(2, 2)
	got, mask, err := Load(raw)
	if err != nil {
		t.Fatalf("Load(*bitmap.Image) error = %v", err)
	}
	if got != raw || mask != nil {
		t.Error("Load(*bitmap.Image) 应原样返回且无遮罩")
	}

	// 不支持的类型
	if _, _, err := Load(42); err == nil {
		t.Error("不支持的输入类型应返回错误")
	}
}

func TestClampVariance(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-10, 0},
		{0, 0},
		{128, 128},
		{255, 255},
		{1000, 255},
	}
	for _, tt := range tests {
		if got := ClampVariance(tt.in); got != tt.want {
			t.Errorf("ClampVariance(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestToBase64RoundTrip(t *testing.T) {
	src := bitmap.NewImage(3, 2)
	src.SetRGB(0, 0, 10, 20, 30)
	src.SetRGB(2, 1, 40, 50, 60)
	mask := bitmap.NewMask(3, 2)
	mask.Set(0, 0, true)
	mask.Set(2, 1, true)

	uri, err := ToBase64(src, mask, "png", 0)
	if err != nil {
		t.Fatalf("ToBase64() error = %v", err)
	}

	img, decodedMask, err := FromBase64(uri)
	if err != nil {
		t.Fatalf("FromBase64() error = %v", err)
	}
	if img.Width != 3 || img.Height != 2 {
		t.Fatalf("往返后尺寸 = %dx%d, want 3x2", img.Width, img.Height)
	}

	r, g, b := img.At(0, 0)
	if r != 10 || g != 20 || b != 30 {
		t.Errorf("往返后 At(0, 0) = (%d, %d, %d), want (10, 20, 30)", r, g, b)
	}
	if decodedMask == nil {
		t.Fatal("往返后应保留遮罩")
	}
	if decodedMask.Included() != 2 || !decodedMask.At(0, 0) || !decodedMask.At(2, 1) {
		t.Error("往返后遮罩不一致")
	}
}

func TestToBase64InvalidFormat(t *testing.T) {
	if _, err := ToBase64(bitmap.NewImage(1, 1), nil, "tiff", 0); err == nil {
		t.Error("不支持的格式应返回错误")
	}
	if _, err := ToBase64(nil, nil, "png", 0); err == nil {
		t.Error("空位图应返回错误")
	}
}

func TestDecodeThenFind(t *testing.T) {
	// 解码与查找的端到端流程: 主图 (2, 1) 处放置模板
	main := bitmap.NewImage(8, 8)
	tmplSrc := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			tmplSrc.SetNRGBA(x, y, color.NRGBA{R: 200, G: 50, B: 25, A: 255})
			main.SetRGB(2+x, 1+y, 200, 50, 25)
		}
	}

	tmpl, mask, err := Decode(bytes.NewReader(encodePNG(t, tmplSrc)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	pos, err := bitmap.FindFirst(main, tmpl, bitmap.WithMask(mask))
	if err != nil {
		t.Fatalf("FindFirst() error = %v", err)
	}
	if pos == nil || pos.X != 2 || pos.Y != 1 {
		t.Errorf("FindFirst() = %v, want (2, 1)", pos)
	}
}
