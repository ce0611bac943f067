package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Horatio-Blackwood/PlainPdf/binding"
	"github.com/Horatio-Blackwood/PlainPdf/font"
	"github.com/Horatio-Blackwood/PlainPdf/layout"
	"github.com/Horatio-Blackwood/PlainPdf/pdf"
	"github.com/Horatio-Blackwood/PlainPdf/renderer"
	canvasrenderer "github.com/Horatio-Blackwood/PlainPdf/renderer/canvas"
	fpdfrenderer "github.com/Horatio-Blackwood/PlainPdf/renderer/fpdf"
)

// options 汇总一次运行的全部命令行参数。
type options struct {
	input      string
	output     string
	font       font.Font
	size       int
	backend    string
	sideMargin float64
	tbMargin   float64
	data       any
	debugPath  string
}

func main() {
	input := flag.String("in", "examples/demo.txt", "输入文本文件路径")
	output := flag.String("out", "output/demo.pdf", "PDF 输出路径")
	fontName := flag.String("font", pdf.DefaultFont.String(), "缺省字体（PostScript 名）")
	size := flag.Int("size", pdf.DefaultSize, "缺省字号（pt）")
	backend := flag.String("backend", "canvas", "输出后端：canvas 或 fpdf")
	sideMargin := flag.String("side-margin", "70pt", "左右边距（如 70pt、25mm）")
	tbMargin := flag.String("tb-margin", "80pt", "上下边距（如 80pt、25mm）")
	dataPath := flag.String("data", "", "模板数据 JSON 文件路径")
	debug := flag.String("debug", "", "布局调试 JSON 输出路径")
	listFonts := flag.Bool("list-fonts", false, "列出可用字体后退出")
	flag.Parse()

	if *listFonts {
		for _, f := range font.All() {
			fmt.Println(f)
		}
		return
	}

	f, err := font.Parse(*fontName)
	if err != nil {
		log.Fatalf("解析字体失败: %v", err)
	}
	side, err := parseMargin(*sideMargin)
	if err != nil {
		log.Fatalf("解析左右边距失败: %v", err)
	}
	tb, err := parseMargin(*tbMargin)
	if err != nil {
		log.Fatalf("解析上下边距失败: %v", err)
	}
	data, err := readData(*dataPath)
	if err != nil {
		log.Fatalf("读取模板数据失败: %v", err)
	}

	o := options{
		input:      *input,
		output:     *output,
		font:       f,
		size:       *size,
		backend:    *backend,
		sideMargin: side,
		tbMargin:   tb,
		data:       data,
		debugPath:  *debug,
	}
	if err := run(o); err != nil {
		log.Fatalf("生成 PDF 失败: %v", err)
	}
	fmt.Printf("已生成 PDF：%s\n", *output)
}

// run 串联读入、排版与写出。
func run(o options) error {
	lines, err := readLines(o.input, o.data)
	if err != nil {
		return err
	}

	sink, metrics, err := newBackend(o.backend)
	if err != nil {
		return err
	}

	geom := layout.Letter()
	geom.SideMargin = o.sideMargin
	geom.TopBottomMargin = o.tbMargin
	popts := pdf.Options{Geometry: geom, Font: o.font, Size: o.size}

	doc, err := renderLines(sink, metrics, popts, lines)
	if err != nil {
		return fmt.Errorf("排版失败: %w", err)
	}

	// 调试重排要在保存前做：保存之后后端的字体度量不再可用
	if o.debugPath != "" {
		if err := writeDebug(metrics, popts, lines, o.debugPath); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(o.output), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := doc.SaveAs(o.output); err != nil {
		return fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return nil
}

// renderLines 把内容逐行喂给排版引擎：空白行空一行，其余整行排版。
func renderLines(sink renderer.Document, metrics layout.Metrics, opts pdf.Options, lines []string) (*pdf.Document, error) {
	doc, err := pdf.New(sink, metrics, opts)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			err = doc.InsertBlankLine()
		} else {
			err = doc.RenderLine(line)
		}
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// readLines 读入全部内容行；data 非空时先做占位符替换。
func readLines(path string, data any) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开输入文件 %s: %w", path, err)
	}
	defer file.Close()

	var lines []string
	sc := bufio.NewScanner(file)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if data != nil {
			resolved, err := binding.Interpolate(line, data)
			if err != nil {
				return nil, fmt.Errorf("第 %d 行: %w", len(lines)+1, err)
			}
			line = resolved
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("读取输入失败: %w", err)
	}
	return lines, nil
}

// newBackend 按名字构造输出后端；两个后端同时充当字体度量来源。
func newBackend(name string) (renderer.Document, layout.Metrics, error) {
	switch name {
	case "canvas":
		doc := canvasrenderer.New()
		return doc, doc, nil
	case "fpdf":
		doc := fpdfrenderer.New()
		return doc, doc, nil
	default:
		return nil, nil, fmt.Errorf("未知后端 %q（可选 canvas、fpdf）", name)
	}
}

// writeDebug 用同一份度量把内容重排进 Recorder，导出每行的落点与字体。
func writeDebug(metrics layout.Metrics, opts pdf.Options, lines []string, path string) error {
	rec := renderer.NewRecorder()
	if _, err := renderLines(rec, metrics, opts, lines); err != nil {
		return fmt.Errorf("重排调试布局失败: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := rec.WriteJSON(path); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}

// parseMargin 接受带单位的长度（缺省 pt），换算成 pt。
func parseMargin(s string) (float64, error) {
	l, err := layout.ParseLength(s)
	if err != nil {
		return 0, err
	}
	return l.ToPT(), nil
}

// readData 读取模板数据 JSON 文件。
func readData(path string) (any, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("解析 JSON 失败: %w", err)
	}
	return data, nil
}
