package templexp

import (
	"fmt"
	"os"
	"strings"
)

// Vars 是一次展开使用的变量表。
type Vars map[string]string

// EnvVars 返回当前环境变量快照。
func EnvVars() Vars {
	vars := make(Vars)
	for _, kv := range os.Environ() {
		if name, value, ok := strings.Cut(kv, "="); ok {
			vars[name] = value
		}
	}

	return vars
}

// ExpandTemplate 以环境变量快照展开 text。
//
// 支持语法：
//   - ${VAR} - 变量替换，未设置为空
//   - ${VAR:-default} / ${VAR-default} - 未设置（或为空）时取默认值
//   - ${VAR:+alt} / ${VAR+alt} - 已设置（且非空）时取替代值
//   - ${VAR:?msg} / ${VAR?msg} - 未设置（或为空）时报错
//   - ${VAR:=default} / ${VAR=default} - 同 "-"，并把默认值写入快照
//
// 仅在必填校验失败时返回 error。
func ExpandTemplate(text string) (string, error) {
	return Expand(text, EnvVars())
}

// Expand 以 vars 展开 text，":=" 会写入 vars。
func Expand(text string, vars Vars) (string, error) {
	if !strings.Contains(text, "$") {
		return text, nil
	}

	var buf strings.Builder
	buf.Grow(len(text))

	for i := 0; i < len(text); i++ {
		if text[i] != '$' || i+1 == len(text) {
			buf.WriteByte(text[i])

			continue
		}

		switch text[i+1] {
		case '$':
			buf.WriteByte('$')
			i++

			continue
		case '{':
		default:
			buf.WriteByte('$')

			continue
		}

		end := closingBrace(text, i+2)
		if end < 0 {
			buf.WriteByte('$')

			continue
		}

		out, ok, err := evaluate(text[i+2:end], vars)
		if err != nil {
			return "", err
		}
		if ok {
			buf.WriteString(out)
		} else {
			buf.WriteString(text[i : end+1])
		}
		i = end
	}

	return buf.String(), nil
}

// closingBrace 返回与 start 之前的 "${" 配对的 "}" 位置，找不到时返回 -1。
func closingBrace(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		switch {
		case text[i] == '$' && i+1 < len(text) && text[i+1] == '{':
			depth++
			i++
		case text[i] == '}':
			if depth == 0 {
				return i
			}
			depth--
		}
	}

	return -1
}

// parameter 是拆解后的 ${name op word}。
type parameter struct {
	name string
	// colon 为 true 时空值与未设置同等对待
	colon bool
	op    byte // 0 表示无运算符
	word  string
}

func parse(expr string) (parameter, bool) {
	n := 0
	for n < len(expr) && isNameChar(expr[n], n == 0) {
		n++
	}
	if n == 0 {
		return parameter{}, false
	}

	p := parameter{name: expr[:n]}
	rest := expr[n:]
	if rest == "" {
		return p, true
	}
	if rest[0] == ':' {
		p.colon = true
		rest = rest[1:]
	}
	if rest == "" || !strings.ContainsRune("-+?=", rune(rest[0])) {
		return parameter{}, false
	}
	p.op = rest[0]
	p.word = rest[1:]

	return p, true
}

func evaluate(expr string, vars Vars) (string, bool, error) {
	p, ok := parse(expr)
	if !ok {
		return "", false, nil
	}

	value, set := vars[p.name]
	present := set && (!p.colon || value != "")

	switch p.op {
	case 0:
		return value, true, nil
	case '-', '=':
		if present {
			return value, true, nil
		}
		word, err := Expand(p.word, vars)
		if err != nil {
			return "", false, err
		}
		if p.op == '=' {
			vars[p.name] = word
		}
		return word, true, nil
	case '+':
		if !present {
			return "", true, nil
		}
		word, err := Expand(p.word, vars)
		if err != nil {
			return "", false, err
		}
		return word, true, nil
	case '?':
		if present {
			return value, true, nil
		}
		if p.word == "" {
			return "", false, fmt.Errorf("templexp: %s: parameter null or not set", p.name)
		}
		return "", false, fmt.Errorf("templexp: %s: %s", p.name, p.word)
	}

	return "", false, nil
}

func isNameChar(ch byte, first bool) bool {
	switch {
	case ch == '_', ch >= 'A' && ch <= 'Z', ch >= 'a' && ch <= 'z':
		return true
	case ch >= '0' && ch <= '9':
		return !first
	}

	return false
}
