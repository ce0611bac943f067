package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// 占位符形如 ${invoice.items[0].name}：路径段用 . 分隔，数组下标用 [i]。
var placeholder = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate 把 text 中的 ${path} 占位符替换为 data 里对应的值。
// data 通常是 encoding/json 反序列化出的 map[string]any。
// 任何一个路径找不到都返回错误并点名缺失的路径；
// 写法不完整的占位符（如缺右括号）原样保留，不算错误。
func Interpolate(text string, data any) (string, error) {
	var missing []string
	out := placeholder.ReplaceAllStringFunc(text, func(match string) string {
		path := strings.TrimSpace(match[2 : len(match)-1])
		if path == "" {
			return match
		}
		val, ok := lookup(data, path)
		if !ok {
			missing = append(missing, path)
			return match
		}
		return fmt.Sprint(val)
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("模板数据缺少路径: %s", strings.Join(missing, ", "))
	}
	return out, nil
}

// lookup 沿 path 逐段下落：字段名走 map，[i] 下标走数组。
func lookup(data any, path string) (any, bool) {
	cur := data
	for _, field := range strings.Split(path, ".") {
		name, subs, ok := splitField(field)
		if !ok {
			return nil, false
		}
		if name != "" {
			m, isMap := cur.(map[string]any)
			if !isMap {
				return nil, false
			}
			if cur, ok = m[name]; !ok {
				return nil, false
			}
		}
		for _, idx := range subs {
			arr, isArr := cur.([]any)
			if !isArr || idx < 0 || idx >= len(arr) {
				return nil, false
			}
			cur = arr[idx]
		}
	}
	return cur, true
}

// splitField 把一段路径拆成字段名和任意个 [i] 下标。
func splitField(field string) (string, []int, bool) {
	name, rest, found := strings.Cut(field, "[")
	if !found {
		return name, nil, true
	}
	var subs []int
	for {
		num, tail, ok := strings.Cut(rest, "]")
		if !ok {
			return "", nil, false
		}
		idx, err := strconv.Atoi(strings.TrimSpace(num))
		if err != nil {
			return "", nil, false
		}
		subs = append(subs, idx)
		if tail == "" {
			return name, subs, true
		}
		if !strings.HasPrefix(tail, "[") {
			return "", nil, false
		}
		rest = tail[1:]
	}
}
