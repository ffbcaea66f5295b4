package bitmap

// Option 配置选项函数类型
type Option func(*searchOptions)

// searchOptions 单次查找的配置
type searchOptions struct {
	region     Region
	variance   int
	mask       *Mask
	maxMatches int
}

// defaultSearchOptions 默认配置: 全图搜索、精确匹配、无遮罩、不限匹配数量
func defaultSearchOptions() *searchOptions {
	return &searchOptions{
		region:     FullRegion(),
		variance:   0,
		mask:       nil,
		maxMatches: 0,
	}
}

// applySearchOptions 应用配置选项
func applySearchOptions(opts ...Option) *searchOptions {
	o := defaultSearchOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithRegion 设置搜索区域（模板左上角允许放置的范围）
// width/height 为 -1 表示延伸到图像边缘
func WithRegion(x, y, width, height int) Option {
	return func(o *searchOptions) {
		o.region = Region{X: x, Y: y, Width: width, Height: height}
	}
}

// WithSearchRegion 设置搜索区域
func WithSearchRegion(r Region) Option {
	return func(o *searchOptions) {
		o.region = r
	}
}

// WithVariance 设置每通道允许的颜色容差 (0-255)
// 0 表示要求完全相等，超出范围的值会被截断
func WithVariance(variance int) Option {
	return func(o *searchOptions) {
		if variance < 0 {
			variance = 0
		}
		if variance > 255 {
			variance = 255
		}
		o.variance = variance
	}
}

// WithMask 设置模板包含遮罩，尺寸必须与模板一致
// nil 表示所有模板像素都参与比较
func WithMask(mask *Mask) Option {
	return func(o *searchOptions) {
		o.mask = mask
	}
}

// WithMaxMatches 设置 FindAll 返回的最大匹配数量
// <= 0 表示不限制，对 FindFirst 无效
func WithMaxMatches(n int) Option {
	return func(o *searchOptions) {
		o.maxMatches = n
	}
}
