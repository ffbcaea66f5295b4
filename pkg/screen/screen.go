// Package screen 提供屏幕截图与屏幕位图查找功能
//
// 组合 robotgo 截屏和 bitmap 查找引擎，在当前屏幕内容中定位位图:
//
//	tmpl, mask, err := imgio.Read("button.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pos, err := screen.FindBitmap(tmpl, mask)
//	if pos != nil {
//	    fmt.Printf("按钮位置: (%d, %d)\n", pos.X, pos.Y)
//	}
package screen

import (
	"fmt"
	"image"

	"github.com/go-vgo/robotgo"
)

// Capture 截取全屏
func Capture() (image.Image, error) {
	img, err := robotgo.CaptureImg()
	if err != nil {
		return nil, fmt.Errorf("截屏失败: %w", err)
	}
	return img, nil
}

// CaptureRegion 截取屏幕区域
func CaptureRegion(x, y, width, height int) (image.Image, error) {
	img, err := robotgo.CaptureImg(x, y, width, height)
	if err != nil {
		return nil, fmt.Errorf("截取区域失败: %w", err)
	}
	return img, nil
}

// Size 获取主屏幕尺寸
func Size() (width, height int) {
	return robotgo.GetScreenSize()
}

// DisplayCount 获取显示器数量
func DisplayCount() int {
	return robotgo.DisplaysNum()
}
