package imgio

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/jpeg"
	"image/png"

	"github.com/existancepy/Bitmap-Searcher/pkg/bitmap"
)

// ToBase64 将位图编码为 base64 Data URI
// format: "png" 或 "jpeg"，默认 "png"（保留遮罩的透明信息）
// quality: JPEG 质量 1-100，默认 80，PNG 忽略该参数
func ToBase64(img *bitmap.Image, mask *bitmap.Mask, format string, quality int) (string, error) {
	if img == nil {
		return "", fmt.Errorf("位图为空")
	}

	if format == "" {
		format = "png"
	}
	if quality <= 0 || quality > 100 {
		quality = 80
	}

	src := img.ToImage(mask)
	var buf bytes.Buffer
	var mimeType string

	switch format {
	case "png":
		if err := png.Encode(&buf, src); err != nil {
			return "", fmt.Errorf("PNG 编码失败: %w", err)
		}
		mimeType = "image/png"
	case "jpeg", "jpg":
		// JPEG 无透明通道，遮罩信息会丢失
		if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: quality}); err != nil {
			return "", fmt.Errorf("JPEG 编码失败: %w", err)
		}
		mimeType = "image/jpeg"
	default:
		return "", fmt.Errorf("不支持的图像格式: %s", format)
	}

	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(buf.Bytes())), nil
}
