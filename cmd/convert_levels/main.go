// convert_levels 把旧格式关卡文件（niveau<N>.txt）转换为 YAML（level<N>.yaml）
//
// 用法：
//
//	go run ./cmd/convert_levels --in old_levels --out data/levels
//	go run ./cmd/convert_levels --in old_levels --dry-run
package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/decker502/bongallistix/internal/legacylevel"
	"github.com/decker502/bongallistix/pkg/config"
	"github.com/decker502/bongallistix/pkg/game"
)

var (
	// 命令行参数
	inDir   = flag.String("in", ".", "旧格式关卡目录")
	outDir  = flag.String("out", config.DefaultLevelDir, "YAML 输出目录")
	dryRun  = flag.Bool("dry-run", false, "只打印转换结果，不写文件")
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	var sink func(index int, data []byte) error
	if *dryRun {
		sink = func(index int, data []byte) error {
			fmt.Printf("# %s\n%s\n", game.LevelFileName(index), data)
			return nil
		}
	} else {
		if err := os.MkdirAll(*outDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "无法创建输出目录: %v\n", err)
			os.Exit(1)
		}
		sink = func(index int, data []byte) error {
			path := filepath.Join(*outDir, game.LevelFileName(index))
			fmt.Printf("写入 %s\n", path)
			return os.WriteFile(path, data, 0644)
		}
	}

	count, err := convertAll(os.DirFS(*inDir), sink)
	if err != nil {
		fmt.Fprintf(os.Stderr, "转换失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("共转换 %d 个关卡\n", count)
}

// legacyIndex 从文件名 niveau<N>.txt 中取出关卡编号
func legacyIndex(name string) (int, bool) {
	var index int
	if _, err := fmt.Sscanf(name, "niveau%d.txt", &index); err != nil {
		return 0, false
	}
	// Sscanf 不检查尾部，文件名必须完全一致
	if legacylevel.FileName(index) != name {
		return 0, false
	}
	return index, true
}

// convertAll 转换 fsys 根目录下的所有旧格式关卡，按编号顺序交给 sink
// 返回转换的关卡数
func convertAll(fsys fs.FS, sink func(index int, data []byte) error) (int, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return 0, fmt.Errorf("failed to list legacy levels: %w", err)
	}

	var indexes []int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if index, ok := legacyIndex(entry.Name()); ok {
			indexes = append(indexes, index)
		}
	}
	sort.Ints(indexes)

	for _, index := range indexes {
		cfg, err := legacylevel.Load(fsys, legacylevel.FileName(index), strconv.Itoa(index))
		if err != nil {
			return 0, err
		}
		data, err := config.MarshalLevelConfig(cfg)
		if err != nil {
			return 0, err
		}
		if err := sink(index, data); err != nil {
			return 0, fmt.Errorf("level %d: %w", index, err)
		}
		log.Printf("[ConvertLevels] 关卡 %d: %d 面墙", index, cfg.SegmentCount())
	}
	return len(indexes), nil
}
