package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/existancepy/Bitmap-Searcher/internal/logger"
	"github.com/existancepy/Bitmap-Searcher/pkg/bitmap"
	"github.com/existancepy/Bitmap-Searcher/pkg/config"
	"github.com/existancepy/Bitmap-Searcher/pkg/imgio"
)

// 版本信息 (可通过 ldflags 注入)
var (
	Version   = "1.0.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// 命令行参数
	var (
		imagePath    = flag.String("image", "", "被搜索的图像文件")
		bitmapPath   = flag.String("bitmap", "", "要查找的位图文件")
		bitmapBase64 = flag.String("bitmap-base64", "", "要查找的位图 (base64 字符串)")
		regionX      = flag.Int("x", 0, "搜索区域左上角 X 坐标")
		regionY      = flag.Int("y", 0, "搜索区域左上角 Y 坐标")
		regionW      = flag.Int("w", -1, "搜索区域宽度 (-1 表示延伸到图像右边缘)")
		regionH      = flag.Int("h", -1, "搜索区域高度 (-1 表示延伸到图像下边缘)")
		variance     = flag.Int("variance", -1, "每通道颜色容差 0-255 (-1 表示使用配置文件默认值)")
		findAll      = flag.Bool("all", false, "查找所有匹配位置")
		maxMatches   = flag.Int("max", -1, "最大匹配数量, 0 表示不限制 (-1 表示使用配置文件默认值)")
		jsonOutput   = flag.Bool("json", false, "以 JSON 格式输出结果")
		logLevel     = flag.String("log-level", "", "日志级别 (DEBUG/INFO/WARN/ERROR)")
		showVersion  = flag.Bool("version", false, "显示版本信息")
	)

	flag.Parse()

	if *showVersion {
		printVersion()
		return
	}

	// 加载配置，命令行参数优先级高于配置文件
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("[WARN] 加载配置失败: %v\n", err)
	}

	level := cfg.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	logger.Default().SetLevel(logger.ParseLevel(level))
	if cfg.LogFile != "" {
		if err := logger.Default().SetFile(cfg.LogFile); err != nil {
			fmt.Printf("[WARN] 打开日志文件失败: %v\n", err)
		}
	}

	// 验证必要参数
	if *imagePath == "" {
		fatal("缺少被搜索的图像，请使用 -image 参数指定")
	}
	if *bitmapPath == "" && *bitmapBase64 == "" {
		fatal("缺少要查找的位图，请使用 -bitmap 或 -bitmap-base64 参数指定")
	}

	// 主图只保留 RGB 通道，透明信息仅对模板有意义
	mainImg, _, err := imgio.Read(*imagePath)
	if err != nil {
		fatal("加载主图失败: %v", err)
	}

	var tmpl *bitmap.Image
	var mask *bitmap.Mask
	if *bitmapPath != "" {
		tmpl, mask, err = imgio.Read(*bitmapPath)
	} else {
		tmpl, mask, err = imgio.FromBase64(*bitmapBase64)
	}
	if err != nil {
		fatal("加载位图失败: %v", err)
	}

	v := cfg.DefaultVariance
	if *variance >= 0 {
		v = *variance
	}

	opts := []bitmap.Option{
		bitmap.WithRegion(*regionX, *regionY, *regionW, *regionH),
		bitmap.WithVariance(imgio.ClampVariance(v)),
	}
	if mask != nil {
		opts = append(opts, bitmap.WithMask(mask))
	}

	if *findAll {
		mm := cfg.MaxMatches
		if *maxMatches >= 0 {
			mm = *maxMatches
		}
		runFindAll(mainImg, tmpl, append(opts, bitmap.WithMaxMatches(mm)), *jsonOutput)
	} else {
		runFindFirst(mainImg, tmpl, opts, *jsonOutput)
	}
}

// runFindFirst 执行单个匹配查找并输出结果
func runFindFirst(mainImg, tmpl *bitmap.Image, opts []bitmap.Option, jsonOutput bool) {
	pos, err := bitmap.FindFirst(mainImg, tmpl, opts...)
	if err != nil {
		fatal("查找失败: %v", err)
	}
	if pos == nil {
		if jsonOutput {
			fmt.Println("null")
		} else {
			fmt.Println("未找到匹配")
		}
		os.Exit(1)
	}

	if jsonOutput {
		printJSON(pos)
	} else {
		fmt.Printf("%d,%d\n", pos.X, pos.Y)
	}
}

// runFindAll 执行全部匹配查找并输出结果
func runFindAll(mainImg, tmpl *bitmap.Image, opts []bitmap.Option, jsonOutput bool) {
	results, err := bitmap.FindAll(mainImg, tmpl, opts...)
	if err != nil {
		fatal("查找失败: %v", err)
	}

	if jsonOutput {
		printJSON(results)
	} else {
		for _, p := range results {
			fmt.Printf("%d,%d\n", p.X, p.Y)
		}
	}
	if len(results) == 0 {
		os.Exit(1)
	}
}

// printJSON 以 JSON 格式输出结果
func printJSON(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		fatal("序列化结果失败: %v", err)
	}
	fmt.Println(string(data))
}

// fatal 输出错误信息并退出
func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[ERROR] "+format+"\n", args...)
	os.Exit(1)
}

// printVersion 显示版本信息
func printVersion() {
	fmt.Printf("bitmap-searcher %s\n", Version)
	fmt.Printf("  构建时间: %s\n", BuildTime)
	fmt.Printf("  Git 提交: %s\n", GitCommit)
}
