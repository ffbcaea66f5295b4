package screen

import (
	"fmt"
	"time"

	"github.com/existancepy/Bitmap-Searcher/internal/logger"
	"github.com/existancepy/Bitmap-Searcher/pkg/bitmap"
)

// DefaultPollInterval 默认轮询间隔
const DefaultPollInterval = 200 * time.Millisecond

// FindBitmap 在当前屏幕上查找位图的第一个匹配位置，坐标为屏幕坐标
// 未找到时返回 (nil, nil)，mask 为 nil 表示所有模板像素都参与比较
func FindBitmap(tmpl *bitmap.Image, mask *bitmap.Mask, opts ...bitmap.Option) (*bitmap.Point, error) {
	start := time.Now()

	main, err := captureBitmap()
	if err != nil {
		return nil, err
	}

	pos, err := bitmap.FindFirst(main, tmpl, withMask(mask, opts)...)
	elapsed := float64(time.Since(start).Milliseconds())
	if err != nil {
		logger.LogEvent("FIND", false, elapsed, err.Error())
		return nil, err
	}

	if pos != nil {
		logger.LogEvent("FIND", true, elapsed, fmt.Sprintf("找到位置 (%d, %d)", pos.X, pos.Y))
	} else {
		logger.LogEvent("FIND", true, elapsed, "未找到")
	}
	return pos, nil
}

// FindAllBitmaps 在当前屏幕上查找位图的所有匹配位置
func FindAllBitmaps(tmpl *bitmap.Image, mask *bitmap.Mask, opts ...bitmap.Option) ([]bitmap.Point, error) {
	start := time.Now()

	main, err := captureBitmap()
	if err != nil {
		return nil, err
	}

	results, err := bitmap.FindAll(main, tmpl, withMask(mask, opts)...)
	elapsed := float64(time.Since(start).Milliseconds())
	if err != nil {
		logger.LogEvent("FIND", false, elapsed, err.Error())
		return nil, err
	}

	logger.LogEvent("FIND", true, elapsed, fmt.Sprintf("找到 %d 个匹配", len(results)))
	return results, nil
}

// Exists 检查位图当前是否出现在屏幕上
func Exists(tmpl *bitmap.Image, mask *bitmap.Mask, opts ...bitmap.Option) bool {
	pos, err := FindBitmap(tmpl, mask, opts...)
	return err == nil && pos != nil
}

// WaitFor 循环查找位图直到出现或超时
// timeout 为 0 时只查找一次，轮询间隔为 DefaultPollInterval
func WaitFor(tmpl *bitmap.Image, mask *bitmap.Mask, timeout time.Duration, opts ...bitmap.Option) (*bitmap.Point, error) {
	start := time.Now()
	for {
		pos, err := FindBitmap(tmpl, mask, opts...)
		if err != nil {
			return nil, err
		}
		if pos != nil {
			return pos, nil
		}

		if timeout == 0 || time.Since(start) > timeout {
			return nil, fmt.Errorf("等待位图超时")
		}
		time.Sleep(DefaultPollInterval)
	}
}

// captureBitmap 截取全屏并转换为 RGB 位图（屏幕截图无透明通道，遮罩恒为 nil）
func captureBitmap() (*bitmap.Image, error) {
	img, err := Capture()
	if err != nil {
		return nil, err
	}
	main, _ := bitmap.FromImage(img)
	return main, nil
}

// withMask 将遮罩追加到选项列表
func withMask(mask *bitmap.Mask, opts []bitmap.Option) []bitmap.Option {
	if mask == nil {
		return opts
	}
	return append(opts, bitmap.WithMask(mask))
}
