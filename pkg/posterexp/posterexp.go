package posterexp

import (
	"regexp"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════
// 指令模式
// ═══════════════════════════════════════════════════════════════════════════

const (
	// space 为 ECMAScript 空白：\s 之外还包含 \v、Unicode Zs、行/段分隔符与 BOM。
	space = `[\s\v\p{Zs}\x{2028}\x{2029}\x{feff}]`
	// lineChar 为 ECMAScript 中 "." 可匹配的字符（除行终止符外）。
	lineChar = `[^\n\r\x{2028}\x{2029}]`
)

var (
	formatPriceRe = regexp.MustCompile(`\{\{formatPrice` + space + `+(\w+)\}\}`)
	ifOpenRe      = regexp.MustCompile(`\{\{#if` + space + `+(\w+)\}\}`)
	// 运算符第二个分支 '!=='? 实际捕获 '!== 或 '!=='，
	// 其中只有不带结尾引号的 '!== 会被识别为不等。
	ifCondOpenRe = regexp.MustCompile(`\{\{#ifCond` + space + `+(\w+)` + space + `+('==='?|'!=='?|'=='|'!=')` +
		space + `+('` + lineChar + `*?'|"` + lineChar + `*?"|\w+)\}\}`)
	variableRe = regexp.MustCompile(`\{\{([^{}]+)\}\}`)
)

const (
	ifClose     = "{{/if}}"
	ifCondClose = "{{/ifCond}}"
)

// block 描述一类成对出现的条件指令。
type block struct {
	open  *regexp.Regexp
	close string
	test  func(groups []string, data Record) bool
}

var (
	ifBlock = block{
		open:  ifOpenRe,
		close: ifClose,
		test: func(groups []string, data Record) bool {
			v, _ := Lookup(data, groups[1])
			return Truthy(v)
		},
	}
	ifCondBlock = block{
		open:  ifCondOpenRe,
		close: ifCondClose,
		test: func(groups []string, data Record) bool {
			return compare(data, groups[1], groups[2], groups[3])
		},
	}
)

// ═══════════════════════════════════════════════════════════════════════════
// 展开
// ═══════════════════════════════════════════════════════════════════════════

// Expand 以 data 展开 template 中的全部指令。
//
// 展开顺序：
//  1. {{formatPrice field}} - 千分位金额，缺失或假值按 0
//  2. {{#if field}}...{{/if}} - 真值时保留并递归展开内容，否则整体移除
//  3. {{#ifCond field 'op' 'value'}}...{{/ifCond}} - 字符串比较，规则同上
//  4. {{field}} - data 中存在的字段替换为其字符串形式，未知字段保留原样
//
// 函数永不失败；未闭合或不合语法的指令原样保留。
// 变量替换只扫描一遍，替换进来的值不会再被当作指令。
func Expand(template string, data Record) string {
	result := expandFormatPrice(template, data)
	result = ifBlock.expand(result, data)
	result = ifCondBlock.expand(result, data)

	return expandVariables(result, data)
}

func expandFormatPrice(text string, data Record) string {
	return replaceSubmatchFunc(formatPriceRe, text, func(_ string, groups []string) string {
		v, _ := Lookup(data, groups[1])
		return FormatPrice(v)
	})
}

func (b block) expand(text string, data Record) string {
	var buf strings.Builder
	rest := text

	for {
		loc := b.open.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		end := b.findClose(rest, loc[1])
		if end < 0 {
			// 之后的开始标签同样没有闭合标签可配对
			break
		}

		buf.WriteString(rest[:loc[0]])
		if b.test(submatches(rest, loc), data) {
			buf.WriteString(Expand(rest[loc[1]:end], data))
		}
		rest = rest[end+len(b.close):]
	}

	buf.WriteString(rest)

	return buf.String()
}

// findClose 返回与 from 之前的开始标签配对的闭合标签位置。
//
// 同类块嵌套时按层级配对；层级不平衡时退回第一个闭合标签。
// 没有任何闭合标签时返回 -1。
func (b block) findClose(text string, from int) int {
	first := strings.Index(text[from:], b.close)
	if first < 0 {
		return -1
	}
	first += from

	depth := 0
	pos := from
	for {
		c := strings.Index(text[pos:], b.close)
		if c < 0 {
			return first
		}
		c += pos

		if o := b.open.FindStringIndex(text[pos:c]); o != nil {
			depth++
			pos += o[1]

			continue
		}
		if depth == 0 {
			return c
		}
		depth--
		pos = c + len(b.close)
	}
}

// compare 计算 {{#ifCond}} 的条件。
//
// 字段值（缺失为 "undefined"）与去掉全部引号的字面量做字符串比较。
// 无法识别的运算符一律为假。
func compare(data Record, field, op, literal string) bool {
	actual := undefined
	if v, ok := Lookup(data, field); ok {
		actual = Stringify(v)
	}
	expected := strings.NewReplacer(`'`, "", `"`, "").Replace(literal)

	switch op {
	case "'=='", "'==='":
		return actual == expected
	case "'!='", "'!==":
		return actual != expected
	}

	return false
}

func expandVariables(text string, data Record) string {
	if len(data) == 0 {
		return text
	}

	return replaceSubmatchFunc(variableRe, text, func(match string, groups []string) string {
		v, ok := Lookup(data, groups[1])
		if !ok {
			return match
		}
		return Stringify(v)
	})
}

// replaceSubmatchFunc 与 ReplaceAllStringFunc 相同，但回调可拿到分组。
func replaceSubmatchFunc(re *regexp.Regexp, text string, fn func(match string, groups []string) string) string {
	locs := re.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return text
	}

	var buf strings.Builder
	buf.Grow(len(text))
	last := 0
	for _, loc := range locs {
		buf.WriteString(text[last:loc[0]])
		buf.WriteString(fn(text[loc[0]:loc[1]], submatches(text, loc)))
		last = loc[1]
	}
	buf.WriteString(text[last:])

	return buf.String()
}

func submatches(text string, loc []int) []string {
	groups := make([]string, len(loc)/2)
	for i := range groups {
		if loc[2*i] >= 0 {
			groups[i] = text[loc[2*i]:loc[2*i+1]]
		}
	}

	return groups
}
